package queue

import (
	"encoding/json"

	"github.com/husncart/husncart/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderReceiptEmail sends the customer receipt after checkout.
	TaskOrderReceiptEmail = constants.TaskOrderReceiptEmail
	// TaskAdConversion reports a conversion to the configured ad pixel.
	TaskAdConversion = constants.TaskAdConversion
)

// OrderReceiptEmailPayload identifies the order to send a receipt for.
type OrderReceiptEmailPayload struct {
	OrderID uint `json:"order_id"`
}

// AdConversionPayload carries the conversion event.
type AdConversionPayload struct {
	OrderID uint   `json:"order_id"`
	OrderNo string `json:"order_no"`
	Amount  string `json:"amount"`
}

// NewOrderReceiptEmailTask creates the receipt email task.
func NewOrderReceiptEmailTask(payload OrderReceiptEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderReceiptEmail, body), nil
}

// NewAdConversionTask creates the ad conversion task.
func NewAdConversionTask(payload AdConversionPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskAdConversion, body), nil
}

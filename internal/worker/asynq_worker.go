package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/husncart/husncart/internal/logger"
	"github.com/husncart/husncart/internal/provider"
	"github.com/husncart/husncart/internal/queue"
	"github.com/husncart/husncart/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer handles queued side-effect tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register attaches the task handlers.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderReceiptEmail, c.handleOrderReceiptEmail)
	mux.HandleFunc(queue.TaskAdConversion, c.handleAdConversion)
}

func (c *Consumer) handleOrderReceiptEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_receipt_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderReceiptEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_receipt_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_receipt_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_receipt_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_receipt_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	receiverEmail := strings.TrimSpace(order.CustomerEmail)
	if receiverEmail == "" {
		logger.Debugw("worker_order_receipt_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_receipt_skip_email_service_nil", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}

	input := service.OrderReceiptEmailInput{
		OrderNo:        order.OrderNo,
		CustomerName:   order.CustomerName,
		ItemCount:      order.ItemCount,
		TotalAmount:    order.TotalAmount,
		ShippingAmount: order.ShippingAmount,
		GrandTotal:     order.GrandTotal,
		Currency:       order.Currency,
	}
	if err := c.EmailService.SendOrderReceipt(receiverEmail, input); err != nil {
		// Business-level failures are final; do not retry them.
		if errors.Is(err, service.ErrEmailServiceDisabled) ||
			errors.Is(err, service.ErrEmailServiceNotConfigured) ||
			errors.Is(err, service.ErrInvalidEmail) ||
			errors.Is(err, service.ErrEmailRecipientRejected) {
			logger.Warnw("worker_order_receipt_skip_send_failed",
				"order_id", order.ID,
				"order_no", order.OrderNo,
				"error", err,
			)
			return nil
		}
		logger.Warnw("worker_order_receipt_send_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"error", err,
		)
		return err
	}
	logger.Infow("worker_order_receipt_sent", "order_id", order.ID, "order_no", order.OrderNo)
	return nil
}

func (c *Consumer) handleAdConversion(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_ad_conversion_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.AdConversionPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_ad_conversion_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_ad_conversion_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	if c.AdsService == nil {
		logger.Debugw("worker_ad_conversion_skip_ads_service_nil", "order_id", payload.OrderID)
		return nil
	}
	if err := c.AdsService.ReportConversion(ctx, service.AdConversionInput{
		OrderID: payload.OrderID,
		OrderNo: payload.OrderNo,
		Amount:  payload.Amount,
	}); err != nil {
		logger.Warnw("worker_ad_conversion_report_failed",
			"order_id", payload.OrderID,
			"order_no", payload.OrderNo,
			"error", err,
		)
		return err
	}
	return nil
}

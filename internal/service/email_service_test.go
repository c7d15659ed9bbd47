package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/husncart/husncart/internal/config"
)

func TestSendOrderReceiptDisabledService(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{Enabled: false})
	err := svc.SendOrderReceipt("customer@example.com", OrderReceiptEmailInput{OrderNo: "HC1"})
	if !errors.Is(err, ErrEmailServiceDisabled) {
		t.Fatalf("expected ErrEmailServiceDisabled, got %v", err)
	}
}

func TestSendOrderReceiptUnconfiguredService(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{Enabled: true})
	err := svc.SendOrderReceipt("customer@example.com", OrderReceiptEmailInput{OrderNo: "HC1"})
	if !errors.Is(err, ErrEmailServiceNotConfigured) {
		t.Fatalf("expected ErrEmailServiceNotConfigured, got %v", err)
	}
}

func TestSendOrderReceiptInvalidRecipient(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{
		Enabled: true,
		Host:    "smtp.example.com",
		Port:    587,
		From:    "orders@husncart.pk",
	})
	err := svc.SendOrderReceipt("not-an-address", OrderReceiptEmailInput{OrderNo: "HC1"})
	if !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestBuildEmailMessageHeaders(t *testing.T) {
	msg := buildEmailMessage("orders@husncart.pk", "customer@example.com", "Order HC1 confirmed", "Thank you")
	for _, want := range []string{
		"From: orders@husncart.pk\r\n",
		"To: customer@example.com\r\n",
		"Content-Type: text/plain; charset=UTF-8\r\n",
		"\r\n\r\nThank you",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected message to contain %q, got:\n%s", want, msg)
		}
	}
}

func TestBuildFromAddressWithDisplayName(t *testing.T) {
	plain := buildFromAddress("orders@husncart.pk", "")
	if plain != "orders@husncart.pk" {
		t.Fatalf("expected bare address, got %q", plain)
	}
	named := buildFromAddress("orders@husncart.pk", "HusnCart")
	if !strings.Contains(named, "HusnCart") || !strings.Contains(named, "orders@husncart.pk") {
		t.Fatalf("expected named address, got %q", named)
	}
}

func TestNormalizeEmailSendError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"recipient_rejected", errors.New("550 5.1.1 recipient address rejected"), ErrEmailRecipientRejected},
		{"user_unknown", errors.New("user unknown"), ErrEmailRecipientRejected},
		{"550_mailbox", errors.New("550 mailbox unavailable"), ErrEmailRecipientRejected},
		{"transient", fmt.Errorf("dial tcp: connection refused"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeEmailSendError(tt.err)
			if tt.want != nil {
				if !errors.Is(got, tt.want) {
					t.Fatalf("expected %v, got %v", tt.want, got)
				}
				return
			}
			if tt.err == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			// non-recipient failures pass through unchanged
			if got == nil || errors.Is(got, ErrEmailRecipientRejected) {
				t.Fatalf("expected original error, got %v", got)
			}
		})
	}
}

package booking

import (
	"errors"
	"strings"
	"testing"

	"travelease/models"
)

func TestProcessUPIPayment(t *testing.T) {
	p := &PaymentProcessor{}

	receipt, err := p.Process(models.PaymentRequest{
		Amount:  9105,
		Method:  "UPI",
		Details: models.PaymentDetails{UPIID: "rahul@upi"},
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if receipt.Status != "Success" || receipt.Method != "UPI" {
		t.Fatalf("unexpected receipt %+v", receipt)
	}
	if !strings.HasPrefix(receipt.TransactionID, "TXN") {
		t.Fatalf("unexpected transaction id %q", receipt.TransactionID)
	}
	if receipt.Amount != 9105 {
		t.Fatalf("amount mismatch: %d", receipt.Amount)
	}
}

func TestProcessRejectsBadDetails(t *testing.T) {
	p := &PaymentProcessor{}

	cases := []struct {
		name   string
		req    models.PaymentRequest
		reason string
	}{
		{
			"upi without at sign",
			models.PaymentRequest{Method: "UPI", Details: models.PaymentDetails{UPIID: "rahul.upi"}},
			"Invalid UPI ID",
		},
		{
			"short card number",
			models.PaymentRequest{Method: "Card", Details: models.PaymentDetails{CardNumber: "4111 1111"}},
			"Invalid Card Number",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.Process(tc.req)
			var perr *PaymentError
			if !errors.As(err, &perr) {
				t.Fatalf("expected PaymentError got %v", err)
			}
			if perr.Reason != tc.reason {
				t.Fatalf("expected %q got %q", tc.reason, perr.Reason)
			}
		})
	}
}

func TestProcessCardCountsDigitsNotRunes(t *testing.T) {
	p := &PaymentProcessor{}

	// 16 digits with spaces still passes.
	_, err := p.Process(models.PaymentRequest{
		Method:  "Card",
		Details: models.PaymentDetails{CardNumber: "4111 1111 1111 1111"},
	})
	if err != nil {
		t.Fatalf("spaced card number rejected: %v", err)
	}
}

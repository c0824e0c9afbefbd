package booking

import (
	"fmt"
	"strings"
	"time"

	"travelease/models"
	"travelease/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentProcessor validates checkout details and issues a receipt.
// With UseStripe set it creates a real PaymentIntent (stripe.Key must
// be configured); otherwise payment is a local mock.
type PaymentProcessor struct {
	UseStripe bool
}

// Process runs the method-specific validation and returns a receipt.
// UPI ids must contain '@'; card numbers need at least 12 digits.
func (p *PaymentProcessor) Process(req models.PaymentRequest) (*models.PaymentReceipt, error) {
	switch req.Method {
	case "UPI":
		if !strings.Contains(req.Details.UPIID, "@") {
			return nil, &PaymentError{Reason: "Invalid UPI ID"}
		}
	case "Card":
		if digitCount(req.Details.CardNumber) < 12 {
			return nil, &PaymentError{Reason: "Invalid Card Number"}
		}
	}

	txnID := fmt.Sprintf("TXN%d", time.Now().UnixMilli())
	if p.UseStripe {
		params := &stripe.PaymentIntentParams{
			Amount:   stripe.Int64(req.Amount * 100), // paise
			Currency: stripe.String(string(stripe.CurrencyINR)),
		}
		pi, err := paymentintent.New(params)
		if err != nil {
			utils.GetLogger().Error("Stripe payment intent failed", zap.Error(err))
			return nil, &PaymentError{Reason: "Payment could not be processed"}
		}
		txnID = pi.ID
	}

	return &models.PaymentReceipt{
		TransactionID: txnID,
		Amount:        req.Amount,
		Status:        "Success",
		Method:        req.Method,
	}, nil
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

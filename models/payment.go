package models

// PaymentRequest is the checkout payload.
type PaymentRequest struct {
	BookingID string         `json:"bookingId"`
	Amount    int64          `json:"amount"`
	Method    string         `json:"method"` // "UPI" or "Card"
	Details   PaymentDetails `json:"details"`
}

// PaymentDetails holds method-specific fields.
type PaymentDetails struct {
	UPIID      string `json:"upiId,omitempty"`
	CardNumber string `json:"cardNumber,omitempty"`
}

// PaymentReceipt is returned on successful processing.
type PaymentReceipt struct {
	TransactionID string `json:"transactionId"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
	Method        string `json:"method"`
}

// ReminderPayload is the asynq task body for departure reminders.
type ReminderPayload struct {
	BookingID     string `json:"bookingId"`
	UserID        string `json:"userId"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
}

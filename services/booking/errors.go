package booking

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a booking id does not exist.
var ErrNotFound = errors.New("booking not found")

// ValidationError reports a missing or malformed request field. It is
// raised before any pricing or persistence work happens.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("booking validation failed: %s is required", e.Field)
}

// TransitionError reports a status change the lifecycle does not
// allow, e.g. rebooking a cancelled trip.
type TransitionError struct {
	From, To string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("booking transition %s -> %s is not allowed", e.From, e.To)
}

// PaymentError reports a failed mock-payment validation.
type PaymentError struct {
	Reason string
}

func (e *PaymentError) Error() string {
	return e.Reason
}

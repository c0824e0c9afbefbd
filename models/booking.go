package models

import "time"

// Booking status values. A booking transitions Confirmed→Cancelled or
// Confirmed→Rebooked; a rebooked trip may be rebooked again or
// cancelled. Bookings are never hard-deleted.
const (
	BookingConfirmed = "Confirmed"
	BookingCancelled = "Cancelled"
	BookingRebooked  = "Rebooked"
)

// Booking represents a confirmed trip purchase.
type Booking struct {
	ID        string         `bson:"id" json:"id"`
	UserID    string         `bson:"user_id" json:"userId"`
	TripData  TripRequest    `bson:"trip_data" json:"tripData"`
	Breakdown PriceBreakdown `bson:"breakdown" json:"breakdown"`
	PaymentID string         `bson:"payment_id" json:"paymentId"`
	Status    string         `bson:"status" json:"status"`
	CreatedAt time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updatedAt"`
}

// BookingUpdate is the partial-update payload for a rebook.
type BookingUpdate struct {
	TravelDate    string `json:"travelDate"`
	DepartureTime string `json:"departureTime"`
	Status        string `json:"status"`
}

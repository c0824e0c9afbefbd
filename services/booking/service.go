package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "travelease/database/repository/booking"
	"travelease/models"
	"travelease/services/pricing"
	"travelease/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReminderScheduler queues a departure reminder for a new booking.
// Scheduling is best effort; failures are logged, never surfaced.
type ReminderScheduler interface {
	ScheduleDepartureReminder(ctx context.Context, payload models.ReminderPayload) error
}

// Service is the booking lifecycle: create at payment time, list,
// cancel, rebook. Bookings are never deleted.
type Service interface {
	Create(ctx context.Context, userID string, trip models.TripRequest, breakdown models.PriceBreakdown, paymentID string) (*models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	Cancel(ctx context.Context, id string) (*models.Booking, error)
	Rebook(ctx context.Context, id string, update models.BookingUpdate) (*models.Booking, error)
}

// DefaultBookingService persists through the booking repository and
// optionally schedules reminders.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Reminders ReminderScheduler
}

func NewBookingService(repo bookingRepo.BookingRepository, reminders ReminderScheduler) *DefaultBookingService {
	return &DefaultBookingService{Repo: repo, Reminders: reminders}
}

// Create validates and persists a confirmed booking. A persistence
// failure does not fail the purchase: the booking comes back with a
// synthesized local id and the error is only logged.
func (s *DefaultBookingService) Create(ctx context.Context, userID string, trip models.TripRequest, breakdown models.PriceBreakdown, paymentID string) (*models.Booking, error) {
	switch {
	case trip.Source == "":
		return nil, &ValidationError{Field: "source"}
	case trip.Destination == "":
		return nil, &ValidationError{Field: "destination"}
	case trip.DepartureDate == "":
		return nil, &ValidationError{Field: "departureDate"}
	}

	// Re-derive the total so a client-tampered breakdown cannot break
	// the sum invariant.
	breakdown = pricing.Aggregate(breakdown.Flight, breakdown.Hotel, breakdown.Cab)

	now := time.Now().UTC()
	b := models.Booking{
		ID:        uuid.NewString(),
		UserID:    userID,
		TripData:  trip,
		Breakdown: breakdown,
		PaymentID: paymentID,
		Status:    models.BookingConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.Repo.Create(ctx, b); err != nil {
		utils.GetLogger().Error("Booking persistence failed, issuing local id",
			zap.String("userID", userID), zap.Error(err))
		b.ID = "LOCAL-" + uuid.NewString()
	}

	s.scheduleReminder(ctx, b)
	return &b, nil
}

func (s *DefaultBookingService) scheduleReminder(ctx context.Context, b models.Booking) {
	if s.Reminders == nil {
		return
	}
	payload := models.ReminderPayload{
		BookingID:     b.ID,
		UserID:        b.UserID,
		Destination:   b.TripData.Destination,
		DepartureDate: b.TripData.DepartureDate,
	}
	if err := s.Reminders.ScheduleDepartureReminder(ctx, payload); err != nil {
		utils.GetLogger().Warn("Departure reminder not scheduled",
			zap.String("bookingID", b.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return b, err
}

// ListByUser returns the user's bookings newest first.
func (s *DefaultBookingService) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.GetByUserID(ctx, userID)
}

// Cancel marks a booking Cancelled. Cancelled bookings stay on record.
func (s *DefaultBookingService) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	return s.transition(ctx, id, models.BookingCancelled, nil)
}

// Rebook moves a booking to Rebooked, updating only the travel fields
// the caller supplied.
func (s *DefaultBookingService) Rebook(ctx context.Context, id string, update models.BookingUpdate) (*models.Booking, error) {
	fields := make(map[string]interface{})
	if update.TravelDate != "" {
		fields["trip_data.departure_date"] = update.TravelDate
	}
	if update.DepartureTime != "" {
		fields["trip_data.departure_time"] = update.DepartureTime
	}
	return s.transition(ctx, id, models.BookingRebooked, fields)
}

// transition enforces the booking lifecycle before writing: Confirmed
// may become Cancelled or Rebooked, Rebooked may be rebooked again or
// cancelled, Cancelled is terminal.
func (s *DefaultBookingService) transition(ctx context.Context, id, to string, fields map[string]interface{}) (*models.Booking, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !allowedTransition(b.Status, to) {
		return nil, &TransitionError{From: b.Status, To: to}
	}

	if err := s.Repo.UpdateStatus(ctx, id, to, fields); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

func allowedTransition(from, to string) bool {
	switch from {
	case models.BookingConfirmed:
		return to == models.BookingCancelled || to == models.BookingRebooked
	case models.BookingRebooked:
		return to == models.BookingCancelled || to == models.BookingRebooked
	default:
		return false
	}
}

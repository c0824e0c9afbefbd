package booking

import (
	"context"
	"errors"
	"strings"
	"testing"

	bookingRepo "travelease/database/repository/booking"
	"travelease/models"
)

type fakeRepo struct {
	bookings  map[string]models.Booking
	failWrite bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: make(map[string]models.Booking)}
}

func (r *fakeRepo) Create(_ context.Context, b models.Booking) (string, error) {
	if r.failWrite {
		return "", errors.New("write refused")
	}
	r.bookings[b.ID] = b
	return b.ID, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return &b, nil
}

func (r *fakeRepo) GetByUserID(_ context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id, status string, fields map[string]interface{}) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	b.Status = status
	if v, ok := fields["trip_data.departure_date"].(string); ok {
		b.TripData.DepartureDate = v
	}
	if v, ok := fields["trip_data.departure_time"].(string); ok {
		b.TripData.DepartureTime = v
	}
	r.bookings[id] = b
	return nil
}

type recordingScheduler struct {
	payloads []models.ReminderPayload
	err      error
}

func (s *recordingScheduler) ScheduleDepartureReminder(_ context.Context, p models.ReminderPayload) error {
	s.payloads = append(s.payloads, p)
	return s.err
}

func validTrip() models.TripRequest {
	return models.TripRequest{
		Source:        "Delhi",
		Destination:   "Goa",
		TripType:      models.TripOneWay,
		Travelers:     1,
		FlightClass:   models.ClassEconomy,
		DepartureDate: "2026-09-10",
	}
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	svc := NewBookingService(newFakeRepo(), nil)
	ctx := context.Background()

	cases := []struct {
		name  string
		mut   func(*models.TripRequest)
		field string
	}{
		{"missing source", func(tr *models.TripRequest) { tr.Source = "" }, "source"},
		{"missing destination", func(tr *models.TripRequest) { tr.Destination = "" }, "destination"},
		{"missing departure date", func(tr *models.TripRequest) { tr.DepartureDate = "" }, "departureDate"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			trip := validTrip()
			tc.mut(&trip)
			_, err := svc.Create(ctx, "u1", trip, models.PriceBreakdown{}, "pay1")
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("expected field %s got %s", tc.field, verr.Field)
			}
		})
	}
}

func TestCreatePersistsConfirmedBooking(t *testing.T) {
	repo := newFakeRepo()
	sched := &recordingScheduler{}
	svc := NewBookingService(repo, sched)

	b, err := svc.Create(context.Background(), "u1", validTrip(), models.PriceBreakdown{Flight: 9000, Hotel: 4000, Cab: 500}, "pay1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.Status != models.BookingConfirmed {
		t.Fatalf("expected Confirmed got %s", b.Status)
	}
	if b.Breakdown.Total != 13500 {
		t.Fatalf("total not derived from components: %d", b.Breakdown.Total)
	}
	if _, ok := repo.bookings[b.ID]; !ok {
		t.Fatal("booking not persisted")
	}
	if len(sched.payloads) != 1 || sched.payloads[0].BookingID != b.ID {
		t.Fatalf("reminder not scheduled: %+v", sched.payloads)
	}
}

func TestCreateFixesTamperedTotal(t *testing.T) {
	svc := NewBookingService(newFakeRepo(), nil)

	b, err := svc.Create(context.Background(), "u1", validTrip(), models.PriceBreakdown{Flight: 9000, Hotel: 4000, Cab: 500, Total: 1}, "pay1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.Breakdown.Total != 13500 {
		t.Fatalf("tampered total survived: %d", b.Breakdown.Total)
	}
}

func TestCreateFallsBackToLocalIDOnRepoFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.failWrite = true
	svc := NewBookingService(repo, nil)

	b, err := svc.Create(context.Background(), "u1", validTrip(), models.PriceBreakdown{Flight: 9000}, "pay1")
	if err != nil {
		t.Fatalf("repo failure must not fail the purchase: %v", err)
	}
	if !strings.HasPrefix(b.ID, "LOCAL-") {
		t.Fatalf("expected synthesized local id got %q", b.ID)
	}
}

func TestReminderFailureDoesNotFailCreate(t *testing.T) {
	sched := &recordingScheduler{err: errors.New("queue down")}
	svc := NewBookingService(newFakeRepo(), sched)

	if _, err := svc.Create(context.Background(), "u1", validTrip(), models.PriceBreakdown{}, "pay1"); err != nil {
		t.Fatalf("reminder failure leaked: %v", err)
	}
}

func TestCancelAndTransitionGuards(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBookingService(repo, nil)
	ctx := context.Background()

	b, _ := svc.Create(ctx, "u1", validTrip(), models.PriceBreakdown{}, "pay1")

	cancelled, err := svc.Cancel(ctx, b.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != models.BookingCancelled {
		t.Fatalf("expected Cancelled got %s", cancelled.Status)
	}

	// Cancelled is terminal.
	var terr *TransitionError
	if _, err := svc.Cancel(ctx, b.ID); !errors.As(err, &terr) {
		t.Fatalf("expected TransitionError got %v", err)
	}
	if _, err := svc.Rebook(ctx, b.ID, models.BookingUpdate{TravelDate: "2026-10-01"}); !errors.As(err, &terr) {
		t.Fatalf("expected TransitionError got %v", err)
	}

	// Record survives cancellation.
	if _, ok := repo.bookings[b.ID]; !ok {
		t.Fatal("cancelled booking was deleted")
	}
}

func TestRebookUpdatesTravelFields(t *testing.T) {
	svc := NewBookingService(newFakeRepo(), nil)
	ctx := context.Background()

	b, _ := svc.Create(ctx, "u1", validTrip(), models.PriceBreakdown{}, "pay1")

	rebooked, err := svc.Rebook(ctx, b.ID, models.BookingUpdate{TravelDate: "2026-10-01", DepartureTime: "14:30"})
	if err != nil {
		t.Fatalf("rebook: %v", err)
	}
	if rebooked.Status != models.BookingRebooked {
		t.Fatalf("expected Rebooked got %s", rebooked.Status)
	}
	if rebooked.TripData.DepartureDate != "2026-10-01" || rebooked.TripData.DepartureTime != "14:30" {
		t.Fatalf("travel fields not updated: %+v", rebooked.TripData)
	}

	// A rebooked trip may be rebooked again.
	again, err := svc.Rebook(ctx, b.ID, models.BookingUpdate{TravelDate: "2026-10-05"})
	if err != nil {
		t.Fatalf("second rebook: %v", err)
	}
	if again.TripData.DepartureDate != "2026-10-05" {
		t.Fatalf("second rebook date not applied: %+v", again.TripData)
	}
	// And a partial update leaves the untouched field alone.
	if again.TripData.DepartureTime != "14:30" {
		t.Fatalf("partial update clobbered departure time: %q", again.TripData.DepartureTime)
	}

	if _, err := svc.Cancel(ctx, b.ID); err != nil {
		t.Fatalf("rebooked trip should cancel: %v", err)
	}
}

func TestGetUnknownBooking(t *testing.T) {
	svc := NewBookingService(newFakeRepo(), nil)
	if _, err := svc.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

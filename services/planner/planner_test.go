package planner

import (
	"context"
	"testing"

	"travelease/models"
)

type memStore struct {
	sessions map[string]Session
}

func newMemStore() *memStore {
	return &memStore{sessions: make(map[string]Session)}
}

func (s *memStore) Get(_ context.Context, id string) (*Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := sess
	cp.Answers = make(map[string]string, len(sess.Answers))
	for k, v := range sess.Answers {
		cp.Answers[k] = v
	}
	return &cp, nil
}

func (s *memStore) Set(_ context.Context, sess *Session) error {
	s.sessions[sess.ID] = *sess
	return nil
}

func (s *memStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func newTestService() *DefaultPlannerService {
	svc := NewPlannerService(newMemStore())
	svc.Delay = 0
	return svc
}

// runFlow answers every question the service asks from the given value
// map until the session completes.
func runFlow(t *testing.T, svc *DefaultPlannerService, values map[string]string) (*Session, []string) {
	t.Helper()
	ctx := context.Background()

	sess, err := svc.Start(ctx)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	var asked []string
	for i := 0; i < len(Questions())+1; i++ {
		q, ok := CurrentQuestion(sess)
		if !ok {
			return sess, asked
		}
		asked = append(asked, q.Key)
		sess, err = svc.Answer(ctx, sess.ID, q.Key, values[q.Key])
		if err != nil {
			t.Fatalf("answer %s: %v", q.Key, err)
		}
	}
	t.Fatal("flow did not terminate")
	return nil, nil
}

func oneWayAnswers() map[string]string {
	return map[string]string{
		"budget":            "25000",
		"tripType":          models.TripOneWay,
		"source":            "Delhi",
		"destination":       "Mumbai",
		"departureDate":     "2026-09-10",
		"travelers":         "2",
		"specialPassengers": "No",
		"flightClass":       models.ClassEconomy,
		"flightTime":        "Morning",
		"stayInHotel":       "No",
		"pickup":            "Yes",
		"vehicle":           "Sedan",
		"diet":              "Veg",
		"sightseeing":       "No",
		"optimization":      models.OptimizeLuxury,
	}
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

func TestOneWayFlowSkipsConditionalQuestions(t *testing.T) {
	sess, asked := runFlow(t, newTestService(), oneWayAnswers())

	for _, key := range []string{"returnDate", "specialType", "nights", "roomType", "hotelRating"} {
		if contains(asked, key) {
			t.Fatalf("one-way flow without hotel asked %q", key)
		}
	}
	if !contains(asked, "stayInHotel") {
		t.Fatal("one-way flow should ask stayInHotel")
	}
	if len(asked) != 15 {
		t.Fatalf("expected 15 questions asked, got %d: %v", len(asked), asked)
	}
	if sess.Phase != PhaseComplete {
		t.Fatalf("expected phase %s got %s", PhaseComplete, sess.Phase)
	}
}

func TestRoundTripFlowAsksHotelQuestions(t *testing.T) {
	values := oneWayAnswers()
	values["tripType"] = models.TripRoundTrip
	values["returnDate"] = "2026-09-20"
	values["nights"] = "3"
	values["roomType"] = "Deluxe"
	values["hotelRating"] = "4 Star"

	_, asked := runFlow(t, newTestService(), values)

	for _, key := range []string{"returnDate", "nights", "roomType", "hotelRating"} {
		if !contains(asked, key) {
			t.Fatalf("round trip flow missed %q: %v", key, asked)
		}
	}
	if contains(asked, "stayInHotel") {
		t.Fatal("round trip flow should not ask stayInHotel")
	}
}

func TestHotelQuestionsFollowStayInHotelYes(t *testing.T) {
	values := oneWayAnswers()
	values["stayInHotel"] = "Yes"
	values["nights"] = "2"
	values["roomType"] = "Standard"
	values["hotelRating"] = "3 Star"

	_, asked := runFlow(t, newTestService(), values)

	for _, key := range []string{"nights", "roomType", "hotelRating"} {
		if !contains(asked, key) {
			t.Fatalf("stayInHotel=Yes should ask %q: %v", key, asked)
		}
	}
}

func TestCompletedSessionResult(t *testing.T) {
	sess, _ := runFlow(t, newTestService(), oneWayAnswers())

	if sess.Result == nil {
		t.Fatal("completed session has no result")
	}
	// Delhi-Mumbai luxury blend: 8000 * 1.45 * 2.5 = 29000.
	if sess.Result.Total != 29000 {
		t.Fatalf("expected total 29000 got %d", sess.Result.Total)
	}
	if sum := sess.Result.Flight.Price + sess.Result.Hotel.Price + sess.Result.Cab.Price; sum != sess.Result.Total {
		t.Fatalf("component sum %d != total %d", sum, sess.Result.Total)
	}
	if sess.Result.BudgetDiff != 25000-29000 {
		t.Fatalf("expected budget diff -4000 got %d", sess.Result.BudgetDiff)
	}
	if sess.Result.Flight.Details != "Delhi -> Mumbai" {
		t.Fatalf("unexpected flight details %q", sess.Result.Flight.Details)
	}
	if sess.Result.Cab.Name != "Sedan" {
		t.Fatalf("unexpected cab %q", sess.Result.Cab.Name)
	}
}

func TestMalformedNumericAnswersCoerceToZero(t *testing.T) {
	values := oneWayAnswers()
	values["budget"] = "twenty five thousand"
	values["travelers"] = "a few"

	sess, _ := runFlow(t, newTestService(), values)

	if sess.Phase != PhaseComplete {
		t.Fatalf("malformed numerics should not stall the session, phase %s", sess.Phase)
	}
	// Zero budget means the diff is exactly minus the total.
	if sess.Result.BudgetDiff != -sess.Result.Total {
		t.Fatalf("expected diff %d got %d", -sess.Result.Total, sess.Result.BudgetDiff)
	}
}

func TestCompletedSessionRejectsFurtherAnswers(t *testing.T) {
	svc := newTestService()
	sess, _ := runFlow(t, svc, oneWayAnswers())

	if _, err := svc.Answer(context.Background(), sess.ID, "budget", "100"); err != ErrSessionComplete {
		t.Fatalf("expected ErrSessionComplete got %v", err)
	}
}

func TestAbandonedSessionDoesNotLeakIntoNewOne(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.Start(ctx)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.Answer(ctx, first.ID, "budget", "99999"); err != nil {
		t.Fatalf("answer: %v", err)
	}

	// Abandon the first session mid-flow and run a second to the end.
	sess, _ := runFlow(t, svc, oneWayAnswers())
	if sess.Result.BudgetDiff != 25000-sess.Result.Total {
		t.Fatalf("second session saw foreign budget: diff %d", sess.Result.BudgetDiff)
	}

	stale, err := svc.Store.Get(ctx, first.ID)
	if err != nil {
		t.Fatalf("first session lost: %v", err)
	}
	if stale.Phase != PhaseAsking || stale.Answers["budget"] != "99999" {
		t.Fatalf("first session corrupted: %+v", stale)
	}
}

func TestUnknownSession(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Answer(context.Background(), "no-such-session", "budget", "1"); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound got %v", err)
	}
}

package planner

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"travelease/models"
	"travelease/services/pricing"
	"travelease/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("planner session not found")
	ErrSessionComplete = errors.New("planner session already complete")
)

// Service drives the guided trip questionnaire.
type Service interface {
	Start(ctx context.Context) (*Session, error)
	Answer(ctx context.Context, sessionID, key, value string) (*Session, error)
}

// DefaultPlannerService keeps session state in a SessionStore and
// prices completed sessions through the blend estimator.
type DefaultPlannerService struct {
	Store SessionStore
	// Delay simulates the original compute latency before the result
	// is revealed. Zero skips the wait entirely.
	Delay time.Duration
}

func NewPlannerService(store SessionStore) *DefaultPlannerService {
	return &DefaultPlannerService{Store: store, Delay: 2 * time.Second}
}

// Start opens a fresh session positioned at the first question.
func (s *DefaultPlannerService) Start(ctx context.Context) (*Session, error) {
	now := time.Now().UTC()
	sess := &Session{
		ID:        uuid.NewString(),
		Step:      0,
		Phase:     PhaseAsking,
		Answers:   make(map[string]string),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Set(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Answer records one answer and advances the session, skipping any
// questions whose condition no longer holds. When the flow is
// exhausted the session computes its result and completes.
func (s *DefaultPlannerService) Answer(ctx context.Context, sessionID, key, value string) (*Session, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Phase != PhaseAsking {
		return nil, ErrSessionComplete
	}

	sess.Answers[key] = value
	sess.Step = nextStep(sess.Step, sess.Answers)
	sess.UpdatedAt = time.Now().UTC()

	if sess.Step >= len(questions) {
		sess.Phase = PhaseComputing
		if err := s.Store.Set(ctx, sess); err != nil {
			return nil, err
		}
		if s.Delay > 0 {
			select {
			case <-time.After(s.Delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		sess.Result = computePlan(sess.Answers)
		sess.Phase = PhaseComplete
		sess.UpdatedAt = time.Now().UTC()
		utils.GetLogger().Info("Planner session complete",
			zap.String("sessionID", sess.ID),
			zap.Int64("total", sess.Result.Total),
			zap.Int64("budgetDiff", sess.Result.BudgetDiff))
	}

	if err := s.Store.Set(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// CurrentQuestion returns the question a session is waiting on, or
// false once it is past the asking phase.
func CurrentQuestion(sess *Session) (models.QuestionView, bool) {
	if sess.Phase != PhaseAsking || sess.Step >= len(questions) {
		return models.QuestionView{}, false
	}
	return questions[sess.Step].View(), true
}

// computePlan turns the collected answers into a priced plan. Numeric
// answers that fail to parse count as 0 rather than aborting the
// session.
func computePlan(answers map[string]string) *models.PlanResult {
	source := answers["source"]
	destination := answers["destination"]
	blend := pricing.BlendEstimate(source, destination, answers["optimization"])

	budget := coerceInt(answers["budget"])
	nights := coerceInt(answers["nights"])

	return &models.PlanResult{
		Flight: models.PlanItem{
			Name:    "IndiGo",
			Price:   blend.Flight,
			Details: fmt.Sprintf("%s -> %s", source, destination),
		},
		Hotel: models.PlanItem{
			Name:    "Lemon Tree " + destination,
			Price:   blend.Hotel,
			Details: fmt.Sprintf("%d Nights", nights),
		},
		Cab: models.PlanItem{
			Name:    answers["vehicle"],
			Price:   blend.Cab,
			Details: "City Travel",
		},
		Total:      blend.Total,
		BudgetDiff: int64(budget) - blend.Total,
	}
}

func coerceInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

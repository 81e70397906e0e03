package progress

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/config"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/whygo"
)

var (
	ErrOutcomeNotFound = whygo.ErrOutcomeNotFound
	ErrGoalArchived    = errors.New("goal is archived")
)

// RecordActualInput is the already-typed recording request. The boundary is
// responsible for turning the raw actual string into a Value before calling
// the service.
type RecordActualInput struct {
	OutcomeID  string
	Quarter    whygo.Quarter
	Actual     *whygo.Value
	RecordedBy string
	Notes      *string
	Blocker    *string
}

type Service interface {
	// RecordActual runs the full recording sequence: look up the outcome,
	// overwrite the quarter's actual, derive status, update the store,
	// append a log entry, and persist both stores. It succeeds only if both
	// persists succeed. Returns the mutated outcome.
	RecordActual(ctx context.Context, in RecordActualInput) (*whygo.Outcome, error)
	OutcomeHistory(ctx context.Context, outcomeID string) (*OutcomeHistory, error)
}

type service struct {
	goals   whygo.Repository
	updates Repository

	// Serializes the read-modify-write-persist sequence; the individual
	// store operations are not atomic with respect to the files.
	mu  sync.Mutex
	now func() time.Time
}

func NewService(goals whygo.Repository, updates Repository) Service {
	return &service{goals: goals, updates: updates, now: time.Now}
}

func (s *service) RecordActual(ctx context.Context, in RecordActualInput) (*whygo.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"outcome_id": in.OutcomeID,
		"quarter":    in.Quarter,
	})

	outcome, ok := s.goals.GetOutcome(in.OutcomeID)
	if !ok {
		log.Warn("Outcome not found")
		return nil, ErrOutcomeNotFound
	}

	if goalStatus, ok := s.goals.ParentGoalStatus(in.OutcomeID); ok && goalStatus == whygo.GoalStatusArchived {
		log.Warn("Attempt to record progress against an archived goal")
		return nil, ErrGoalArchived
	}

	outcome.SetActual(in.Quarter, in.Actual)
	status := whygo.DeriveStatus(outcome.MetricType, outcome.TargetFor(in.Quarter), in.Actual)
	outcome.SetStatus(in.Quarter, status)

	if !s.goals.UpdateOutcome(outcome) {
		log.Warn("Outcome disappeared during update")
		return nil, ErrOutcomeNotFound
	}

	recordedAt := s.now()
	update := ProgressUpdate{
		ID:          NewUpdateID(in.OutcomeID, in.Quarter, recordedAt),
		OutcomeID:   in.OutcomeID,
		Quarter:     in.Quarter,
		ActualValue: in.Actual,
		Status:      statusPtr(status),
		Notes:       in.Notes,
		Blocker:     in.Blocker,
		RecordedBy:  in.RecordedBy,
		RecordedAt:  recordedAt.Format(time.RFC3339),
	}
	s.updates.Record(update)

	if err := s.goals.SaveAll(); err != nil {
		// The goal store already dropped its pending mutation; drop the log
		// entry too so neither store drifts from disk.
		s.updates.Discard()
		log.WithError(err).Error("Failed to persist outcome update")
		return nil, fmt.Errorf("record actual: %w", err)
	}
	if err := s.updates.SaveAll(); err != nil {
		log.WithError(err).Error("Failed to persist progress update")
		return nil, fmt.Errorf("record actual: %w", err)
	}

	log.WithField("status", string(status)).Info("Progress recorded")
	return outcome, nil
}

func (s *service) OutcomeHistory(ctx context.Context, outcomeID string) (*OutcomeHistory, error) {
	outcome, ok := s.goals.GetOutcome(outcomeID)
	if !ok {
		return nil, ErrOutcomeNotFound
	}

	history := &OutcomeHistory{
		Outcome: *outcome,
		Updates: s.updates.GetUpdatesForOutcome(outcomeID),
	}
	snapshots := [4]*QuarterSnapshot{
		&history.QuarterlyStatus.Q1,
		&history.QuarterlyStatus.Q2,
		&history.QuarterlyStatus.Q3,
		&history.QuarterlyStatus.Q4,
	}
	for i, q := range whygo.AllQuarters {
		*snapshots[i] = QuarterSnapshot{
			Target: outcome.TargetFor(q),
			Actual: outcome.ActualFor(q),
			Status: statusPtr(outcome.StatusFor(q)),
		}
	}
	return history, nil
}

func statusPtr(s whygo.Status) *whygo.Status {
	if s == whygo.StatusNone {
		return nil
	}
	return &s
}

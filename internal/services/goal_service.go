package services

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pocketledger/internal/alerts"
	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/events"
	"pocketledger/internal/models"
)

// goalService handles savings goals.
type goalService struct {
	core *Core
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(core *Core) GoalServicer {
	return &goalService{core: core}
}

// CreateGoal creates a savings goal.
func (s *goalService) CreateGoal(ctx context.Context, name string, target decimal.Decimal, deadline *time.Time) (*models.Goal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
	}
	if !target.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}

	var goal models.Goal
	err := s.core.exclusive(ctx, func() error {
		goals, err := s.core.records.Goals(ctx)
		if err != nil {
			return err
		}

		goal = models.Goal{
			Name:         name,
			TargetAmount: target,
			SavedAmount:  decimal.Zero,
			Deadline:     deadline,
		}
		goal.Init(s.core.now())

		if err := s.core.records.SaveGoals(ctx, append(goals, goal)); err != nil {
			return err
		}
		s.core.publish(events.GoalUpdated, map[string]any{"id": goal.ID})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// ListGoals returns every goal.
func (s *goalService) ListGoals(ctx context.Context) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.core.exclusive(ctx, func() error {
		var err error
		goals, err = s.core.records.Goals(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return goals, nil
}

// ContributeToGoal adds amount to a goal's savings. Reaching a milestone
// above the last one celebrated raises a success notification.
func (s *goalService) ContributeToGoal(ctx context.Context, id string, amount decimal.Decimal) (*models.Goal, error) {
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	var goal models.Goal
	err := s.core.exclusive(ctx, func() error {
		goals, err := s.core.records.Goals(ctx)
		if err != nil {
			return err
		}
		idx := slices.IndexFunc(goals, func(g models.Goal) bool { return g.ID == id })
		if idx < 0 {
			return apperrors.ErrGoalNotFound
		}

		g := &goals[idx]
		now := s.core.now()
		g.SavedAmount = g.SavedAmount.Add(amount)
		g.Touch(now)

		milestone, reached := alerts.ClassifyMilestone(g.Percentage())
		celebrate := reached && milestone > g.LastMilestone
		if celebrate {
			g.LastMilestone = milestone
			if milestone >= 100 && g.CompletedAt == nil {
				completedAt := now
				g.CompletedAt = &completedAt
			}
		}

		if err := s.core.records.SaveGoals(ctx, goals); err != nil {
			return err
		}
		goal = *g

		if celebrate {
			if err := s.core.notify(ctx, models.Notification{
				Title:    g.Name,
				Message:  alerts.GoalMessage(milestone, g),
				Severity: models.SeveritySuccess,
				Data:     map[string]any{"goal_id": g.ID, "milestone": milestone},
			}); err != nil {
				return err
			}
		}

		s.core.publish(events.GoalUpdated, map[string]any{"id": g.ID})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// DeleteGoal removes a goal.
func (s *goalService) DeleteGoal(ctx context.Context, id string) error {
	return s.core.exclusive(ctx, func() error {
		goals, err := s.core.records.Goals(ctx)
		if err != nil {
			return err
		}
		idx := slices.IndexFunc(goals, func(g models.Goal) bool { return g.ID == id })
		if idx < 0 {
			return apperrors.ErrGoalNotFound
		}
		if err := s.core.records.SaveGoals(ctx, slices.Delete(goals, idx, idx+1)); err != nil {
			return err
		}
		s.core.publish(events.GoalUpdated, map[string]any{"id": id, "deleted": true})
		return nil
	})
}

package services

import "context"

// taskService runs the passes driven by an external tick.
type taskService struct {
	core *Core
}

// NewTaskService creates a new TaskServicer.
func NewTaskService(core *Core) TaskServicer {
	return &taskService{core: core}
}

// ProcessScheduledTasks runs the autopay pass and then the budget period
// pass as one command, so no user mutation lands between them.
func (s *taskService) ProcessScheduledTasks(ctx context.Context) (*TaskResult, error) {
	result := &TaskResult{}
	err := s.core.exclusive(ctx, func() error {
		now := s.core.now()
		result.RanAt = now

		autopays, err := s.core.processAutopays(ctx, now)
		result.Autopays = autopays
		if err != nil {
			return err
		}

		budgets, err := s.core.processExpiredBudgets(ctx, now)
		result.Budgets = budgets
		return err
	})
	if err != nil {
		s.core.log.Errorw("scheduled tasks failed", "error", err)
		return nil, err
	}
	return result, nil
}

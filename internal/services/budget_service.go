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
	"pocketledger/internal/schedule"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	core *Core
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(core *Core) BudgetServicer {
	return &budgetService{core: core}
}

// SaveBudget creates a budget for an expense category. The first window
// starts at the given date (start of today when unset) and spent is computed
// from the existing history.
func (s *budgetService) SaveBudget(ctx context.Context, draft BudgetDraft) (*models.Budget, error) {
	if !draft.Amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if !draft.Period.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "period must be one of daily, weekly, monthly, quarterly, yearly")
	}

	var budget *models.Budget
	err := s.core.exclusive(ctx, func() error {
		cat, err := s.core.findCategory(ctx, draft.CategoryID)
		if err != nil {
			return err
		}
		if cat.Type != models.CategoryTypeExpense {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "budgets can only track expense categories")
		}

		budgets, err := s.core.records.Budgets(ctx)
		if err != nil {
			return err
		}
		if hasActiveBudget(budgets, draft.CategoryID, draft.Period, "") {
			return apperrors.ErrDuplicateBudget
		}

		now := s.core.now()
		start := draft.StartDate
		if start.IsZero() {
			start = schedule.StartOfDay(now)
		}
		expiry := schedule.AddPeriod(start, draft.Period)

		name := strings.TrimSpace(draft.Name)
		if name == "" {
			name = cat.Name
		}

		b := models.Budget{
			CategoryID: draft.CategoryID,
			Name:       name,
			Amount:     draft.Amount,
			Period:     draft.Period,
			StartDate:  start,
			ExpiryDate: &expiry,
			IsActive:   true,
			AutoReset:  draft.AutoReset,
		}
		b.Init(now)

		if err := s.core.records.SaveBudgets(ctx, append(budgets, b)); err != nil {
			return err
		}
		if _, err := s.core.recomputeSummary(ctx); err != nil {
			return err
		}

		budget, err = s.core.findBudget(ctx, b.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return budget, nil
}

func hasActiveBudget(budgets []models.Budget, categoryID string, period models.BudgetPeriod, exceptID string) bool {
	for _, b := range budgets {
		if b.ID != exceptID && b.IsActive && b.CategoryID == categoryID && b.Period == period {
			return true
		}
	}
	return false
}

// UpdateBudget edits a budget. Changing the period moves the expiry date;
// reactivating an inactive budget starts a fresh window today.
func (s *budgetService) UpdateBudget(ctx context.Context, id string, fields BudgetUpdateFields) (*models.Budget, error) {
	if fields.Name != nil && strings.TrimSpace(*fields.Name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name cannot be empty")
	}
	if fields.Amount != nil && !fields.Amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if fields.Period != nil && !fields.Period.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "period must be one of daily, weekly, monthly, quarterly, yearly")
	}

	var budget *models.Budget
	err := s.core.exclusive(ctx, func() error {
		budgets, err := s.core.records.Budgets(ctx)
		if err != nil {
			return err
		}
		idx := slices.IndexFunc(budgets, func(b models.Budget) bool { return b.ID == id })
		if idx < 0 {
			return apperrors.ErrBudgetNotFound
		}
		b := &budgets[idx]
		now := s.core.now()

		if fields.Name != nil {
			b.Name = strings.TrimSpace(*fields.Name)
		}
		if fields.Amount != nil {
			b.Amount = *fields.Amount
		}
		if fields.AutoReset != nil {
			b.AutoReset = *fields.AutoReset
		}
		if fields.Period != nil && *fields.Period != b.Period {
			b.Period = *fields.Period
			if !b.IsLegacy() {
				expiry := schedule.AddPeriod(b.StartDate, b.Period)
				b.ExpiryDate = &expiry
			}
		}
		if fields.IsActive != nil && *fields.IsActive != b.IsActive {
			b.IsActive = *fields.IsActive
			if b.IsActive {
				restartWindow(b, schedule.StartOfDay(now))
				b.ExpiredAt = nil
			}
		}

		if b.IsActive && hasActiveBudget(budgets, b.CategoryID, b.Period, b.ID) {
			return apperrors.ErrDuplicateBudget
		}
		b.Touch(now)

		if err := s.core.records.SaveBudgets(ctx, budgets); err != nil {
			return err
		}
		if _, err := s.core.recomputeSummary(ctx); err != nil {
			return err
		}

		budget, err = s.core.findBudget(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return budget, nil
}

// DeleteBudget removes a budget. Historical transactions are untouched.
func (s *budgetService) DeleteBudget(ctx context.Context, id string) error {
	return s.core.exclusive(ctx, func() error {
		budgets, err := s.core.records.Budgets(ctx)
		if err != nil {
			return err
		}
		idx := slices.IndexFunc(budgets, func(b models.Budget) bool { return b.ID == id })
		if idx < 0 {
			return apperrors.ErrBudgetNotFound
		}

		if err := s.core.records.SaveBudgets(ctx, slices.Delete(budgets, idx, idx+1)); err != nil {
			return err
		}
		_, err = s.core.recomputeSummary(ctx)
		return err
	})
}

// ResetBudget restarts the budget's period now, zeroing spent. Legacy
// budgets gain a window as a side effect.
func (s *budgetService) ResetBudget(ctx context.Context, id string) (*models.Budget, error) {
	var budget *models.Budget
	err := s.core.exclusive(ctx, func() error {
		budgets, err := s.core.records.Budgets(ctx)
		if err != nil {
			return err
		}
		idx := slices.IndexFunc(budgets, func(b models.Budget) bool { return b.ID == id })
		if idx < 0 {
			return apperrors.ErrBudgetNotFound
		}
		b := &budgets[idx]
		now := s.core.now()

		if !b.IsActive && hasActiveBudget(budgets, b.CategoryID, b.Period, b.ID) {
			return apperrors.ErrDuplicateBudget
		}

		restartWindow(b, now)
		b.IsActive = true
		b.ExpiredAt = nil
		b.ResetCount++
		b.LastResetAt = &now
		b.Touch(now)

		if err := s.core.records.SaveBudgets(ctx, budgets); err != nil {
			return err
		}
		if _, err := s.core.recomputeSummary(ctx); err != nil {
			return err
		}

		budget, err = s.core.findBudget(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return budget, nil
}

// restartWindow begins a new period at start with nothing spent.
func restartWindow(b *models.Budget, start time.Time) {
	expiry := schedule.AddPeriod(start, b.Period)
	b.StartDate = start
	b.ExpiryDate = &expiry
	b.Spent = decimal.Zero
	b.LastAlert = models.SeverityNone
}

// GetBudgetByID returns a budget with its status annotated.
func (s *budgetService) GetBudgetByID(ctx context.Context, id string) (*models.Budget, error) {
	var budget *models.Budget
	err := s.core.exclusive(ctx, func() error {
		var err error
		budget, err = s.core.findBudget(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return budget, nil
}

// FetchBudgets returns every budget with its status annotated, optionally
// filtered on IsActive.
func (s *budgetService) FetchBudgets(ctx context.Context, isActive *bool) ([]models.Budget, error) {
	var result []models.Budget
	err := s.core.exclusive(ctx, func() error {
		budgets, err := s.core.records.Budgets(ctx)
		if err != nil {
			return err
		}
		now := s.core.now()
		result = make([]models.Budget, 0, len(budgets))
		for _, b := range budgets {
			if isActive != nil && b.IsActive != *isActive {
				continue
			}
			b.Status = budgetStatus(&b, now)
			result = append(result, b)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FetchBudgetSummary returns the stored summary, or nil when no budgets exist.
func (s *budgetService) FetchBudgetSummary(ctx context.Context) (*models.BudgetSummary, error) {
	var summary *models.BudgetSummary
	err := s.core.exclusive(ctx, func() error {
		var err error
		summary, err = s.core.records.BudgetSummary(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// RecomputeSummary forces a full rescan of the transaction history.
func (s *budgetService) RecomputeSummary(ctx context.Context) (*models.BudgetSummary, error) {
	var summary *models.BudgetSummary
	err := s.core.exclusive(ctx, func() error {
		var err error
		summary, err = s.core.recomputeSummary(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (c *Core) findBudget(ctx context.Context, id string) (*models.Budget, error) {
	budgets, err := c.records.Budgets(ctx)
	if err != nil {
		return nil, err
	}
	for i := range budgets {
		if budgets[i].ID == id {
			b := budgets[i]
			b.Status = budgetStatus(&b, c.now())
			return &b, nil
		}
	}
	return nil, apperrors.ErrBudgetNotFound
}

// onTransactionApplied folds tx into the matching budgets, sign being +1 for
// an added transaction and -1 for a removed one, then rebuilds the summary.
func (c *Core) onTransactionApplied(ctx context.Context, tx *models.Transaction, sign int64) error {
	if err := c.adjustBudgets(ctx, tx, sign); err != nil {
		return err
	}
	_, err := c.recomputeSummary(ctx)
	return err
}

// adjustBudgets moves spent on every active budget of tx's category whose
// window contains tx.Date.
func (c *Core) adjustBudgets(ctx context.Context, tx *models.Transaction, sign int64) error {
	if !tx.IsExpense() || tx.CategoryID == "" {
		return nil
	}

	budgets, err := c.records.Budgets(ctx)
	if err != nil {
		return err
	}

	delta := tx.Amount.Mul(decimal.NewFromInt(sign))
	now := c.now()
	changed := false
	for i := range budgets {
		b := &budgets[i]
		if !b.IsActive || b.CategoryID != tx.CategoryID || !b.InWindow(tx.Date) {
			continue
		}
		b.Spent = b.Spent.Add(delta)
		if b.Spent.IsNegative() {
			b.Spent = decimal.Zero
		}
		b.Touch(now)
		changed = true
	}
	if !changed {
		return nil
	}
	return c.records.SaveBudgets(ctx, budgets)
}

// recomputeSummary rebuilds every active budget's spent from the full
// transaction history, persists budgets and summary, and then raises a
// threshold notification per budget at or above the info band. It returns
// nil when there are no budgets.
func (c *Core) recomputeSummary(ctx context.Context) (*models.BudgetSummary, error) {
	budgets, err := c.records.Budgets(ctx)
	if err != nil {
		return nil, err
	}
	if len(budgets) == 0 {
		return nil, c.records.DeleteBudgetSummary(ctx)
	}

	txs, err := c.records.Transactions(ctx)
	if err != nil {
		return nil, err
	}

	now := c.now()
	for i := range budgets {
		b := &budgets[i]
		if !b.IsActive {
			continue
		}
		spent := decimal.Zero
		for _, tx := range txs {
			if tx.IsExpense() && tx.CategoryID == b.CategoryID && b.InWindow(tx.Date) {
				spent = spent.Add(tx.Amount)
			}
		}
		if !spent.Equal(b.Spent) {
			b.Spent = spent
			b.Touch(now)
		}
	}

	pending := c.budgetAlerts(budgets)
	summary := c.buildSummary(ctx, budgets, now)

	if err := c.records.SaveBudgets(ctx, budgets); err != nil {
		return nil, err
	}
	if err := c.records.SaveBudgetSummary(ctx, summary); err != nil {
		return nil, err
	}
	c.publish(events.BudgetUpdated, map[string]any{
		"total": summary.Total.String(),
		"spent": summary.Spent.String(),
	})

	for _, n := range pending {
		if err := c.notify(ctx, n); err != nil {
			return nil, err
		}
	}
	return summary, nil
}

// budgetAlerts classifies every active budget and returns the notifications
// to raise. With de-duplication on, a band is only raised when it is higher
// than the last band raised this period.
func (c *Core) budgetAlerts(budgets []models.Budget) []models.Notification {
	var pending []models.Notification
	for i := range budgets {
		b := &budgets[i]
		if !b.IsActive || !b.Amount.IsPositive() {
			continue
		}
		pct := b.Percentage()
		severity := alerts.Classify(pct)

		if c.opts.DedupeBudgetAlerts {
			raise := severity != models.SeverityNone && severity.Rank() > b.LastAlert.Rank()
			b.LastAlert = severity
			if !raise {
				continue
			}
		} else if severity == models.SeverityNone {
			continue
		}

		pending = append(pending, models.Notification{
			Title:    alerts.BudgetTitle(severity, b.Name),
			Message:  alerts.BudgetMessage(severity, b),
			Severity: severity,
			Data: map[string]any{
				"budget_id":   b.ID,
				"category_id": b.CategoryID,
				"percentage":  pct,
				"reset_count": b.ResetCount,
			},
		})
	}
	return pending
}

func (c *Core) buildSummary(ctx context.Context, budgets []models.Budget, now time.Time) *models.BudgetSummary {
	summary := &models.BudgetSummary{
		Total:      decimal.Zero,
		Spent:      decimal.Zero,
		Categories: []models.CategorySpend{},
		UpdatedAt:  now,
	}
	for _, b := range budgets {
		if !b.IsActive {
			continue
		}
		name := b.Name
		if name == "" {
			name = c.categoryName(ctx, b.CategoryID)
		}
		summary.Total = summary.Total.Add(b.Amount)
		summary.Spent = summary.Spent.Add(b.Spent)
		summary.Categories = append(summary.Categories, models.CategorySpend{
			CategoryID: b.CategoryID,
			BudgetID:   b.ID,
			Name:       name,
			Allocated:  b.Amount,
			Spent:      b.Spent,
			Remaining:  b.Amount.Sub(b.Spent),
			Percentage: b.Percentage(),
		})
	}
	summary.Remaining = summary.Total.Sub(summary.Spent)
	if summary.Total.IsPositive() {
		summary.Percentage = summary.Spent.Div(summary.Total).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}
	return summary
}

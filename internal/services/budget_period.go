package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"pocketledger/internal/events"
	"pocketledger/internal/models"
	"pocketledger/internal/schedule"
)

// expiringSoonWindow caps how early a budget is flagged as expiring soon.
// Shorter periods use a quarter of their length instead.
const expiringSoonWindow = 3 * 24 * time.Hour

func budgetStatus(b *models.Budget, now time.Time) models.BudgetStatus {
	if b.IsLegacy() {
		return models.BudgetStatusLegacy
	}
	if !b.IsActive || !b.ExpiryDate.After(now) {
		return models.BudgetStatusExpired
	}

	window := schedule.PeriodLength(b.StartDate, b.Period) / 4
	if window > expiringSoonWindow {
		window = expiringSoonWindow
	}
	if b.ExpiryDate.Sub(now) <= window {
		return models.BudgetStatusExpiringSoon
	}
	return models.BudgetStatusActive
}

// ProcessExpiredBudgets rolls over or expires every active budget whose
// period has ended.
func (s *budgetService) ProcessExpiredBudgets(ctx context.Context) (*BudgetRunResult, error) {
	var result BudgetRunResult
	err := s.core.exclusive(ctx, func() error {
		var err error
		result, err = s.core.processExpiredBudgets(ctx, s.core.now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// processExpiredBudgets handles each active budget with expiryDate <= now.
// Auto-reset budgets start their next window at the old expiry date with
// spent zeroed; the rest are deactivated. Without catch-up a budget moves
// forward one period per pass.
func (c *Core) processExpiredBudgets(ctx context.Context, now time.Time) (BudgetRunResult, error) {
	var result BudgetRunResult

	budgets, err := c.records.Budgets(ctx)
	if err != nil {
		return result, err
	}

	for i := range budgets {
		b := &budgets[i]
		if !b.IsActive || b.IsLegacy() || b.ExpiryDate.After(now) {
			continue
		}

		if !b.AutoReset {
			expiredAt := now
			b.IsActive = false
			b.ExpiredAt = &expiredAt
			b.Touch(now)
			result.Expired++
			continue
		}

		for {
			start := *b.ExpiryDate
			expiry := schedule.AddPeriod(start, b.Period)
			b.StartDate = start
			b.ExpiryDate = &expiry
			b.ResetCount++
			if !c.opts.CatchUp || expiry.After(now) || !expiry.After(start) {
				break
			}
		}
		resetAt := now
		b.Spent = decimal.Zero
		b.LastAlert = models.SeverityNone
		b.LastResetAt = &resetAt
		b.Touch(now)
		result.Reset++
	}

	if result.Reset == 0 && result.Expired == 0 {
		return result, nil
	}

	if err := c.records.SaveBudgets(ctx, budgets); err != nil {
		return result, err
	}
	c.log.Infow("budget periods processed", "reset", result.Reset, "expired", result.Expired)

	if _, err := c.recomputeSummary(ctx); err != nil {
		return result, err
	}

	if err := c.notify(ctx, models.Notification{
		Title:    periodTitle(result),
		Message:  fmt.Sprintf("%d budget(s) renewed, %d budget(s) expired.", result.Reset, result.Expired),
		Severity: models.SeverityInfo,
		Data:     map[string]any{"reset": result.Reset, "expired": result.Expired},
	}); err != nil {
		return result, err
	}

	c.publish(events.BudgetsReset, map[string]any{"reset": result.Reset, "expired": result.Expired})
	return result, nil
}

func periodTitle(r BudgetRunResult) string {
	switch {
	case r.Expired == 0:
		return "Budgets renewed"
	case r.Reset == 0:
		return "Budgets expired"
	}
	return "Budget periods updated"
}

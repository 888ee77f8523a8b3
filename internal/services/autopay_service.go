package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/events"
	"pocketledger/internal/models"
	"pocketledger/internal/schedule"
)

// autopayService handles recurring transaction definitions.
type autopayService struct {
	core *Core
}

// NewAutopayService creates a new AutopayServicer.
func NewAutopayService(core *Core) AutopayServicer {
	return &autopayService{core: core}
}

// SaveAutopayTransaction creates an active definition whose first execution
// is due at its start date (now when unset).
func (s *autopayService) SaveAutopayTransaction(ctx context.Context, draft AutopayDraft) (*models.AutopayDefinition, error) {
	if !draft.Type.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if !draft.Amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if !draft.Amount.Equal(draft.Amount.Round(2)) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must have at most two decimal places")
	}
	if !draft.Frequency.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "frequency must be one of daily, weekly, monthly")
	}
	if !draft.PaymentMode.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("unknown payment mode %q", draft.PaymentMode))
	}
	if draft.MaxCount != nil && *draft.MaxCount < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "max count must be at least 1")
	}

	var def models.AutopayDefinition
	err := s.core.exclusive(ctx, func() error {
		if draft.CategoryID != "" {
			cat, err := s.core.findCategory(ctx, draft.CategoryID)
			if err != nil {
				if errors.Is(err, apperrors.ErrCategoryNotFound) {
					return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown category")
				}
				return err
			}
			if string(cat.Type) != string(draft.Type) {
				return apperrors.WithMessage(apperrors.ErrInvalidInput,
					fmt.Sprintf("category %q cannot be used for %s transactions", cat.Name, draft.Type))
			}
		}

		now := s.core.now()
		start := draft.StartDate
		if start.IsZero() {
			start = now
		}
		// Materialized transactions must pass the transaction date window.
		if start.Before(now.AddDate(-maxHistoryYears, 0, 0)) {
			return apperrors.WithMessage(apperrors.ErrInvalidInput,
				fmt.Sprintf("start date cannot be more than %d years in the past", maxHistoryYears))
		}
		if draft.EndDate != nil && draft.EndDate.Before(start) {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "end date must not be before start date")
		}

		description := strings.TrimSpace(draft.Description)
		if description == "" {
			description = fmt.Sprintf("%s autopay", draft.Frequency)
		}

		def = models.AutopayDefinition{
			Description:       description,
			Amount:            draft.Amount,
			Type:              draft.Type,
			CategoryID:        draft.CategoryID,
			PaymentMode:       draft.PaymentMode,
			Frequency:         draft.Frequency,
			StartDate:         start,
			EndDate:           draft.EndDate,
			MaxCount:          draft.MaxCount,
			IsActive:          true,
			NextExecutionDate: start,
		}
		def.Init(now)

		defs, err := s.core.records.Autopays(ctx)
		if err != nil {
			return err
		}
		if err := s.core.records.SaveAutopays(ctx, append(defs, def)); err != nil {
			return err
		}

		s.core.publish(events.AutopayCreated, map[string]any{"id": def.ID})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// DisableAutopay stops a definition. Disabling an inactive one is a no-op.
func (s *autopayService) DisableAutopay(ctx context.Context, id string) (*models.AutopayDefinition, error) {
	var def models.AutopayDefinition
	err := s.core.exclusive(ctx, func() error {
		defs, err := s.core.records.Autopays(ctx)
		if err != nil {
			return err
		}
		idx := slices.IndexFunc(defs, func(d models.AutopayDefinition) bool { return d.ID == id })
		if idx < 0 {
			return apperrors.ErrAutopayNotFound
		}

		d := &defs[idx]
		if d.IsActive {
			s.core.deactivateAutopay(d, s.core.now(), "disabled")
			if err := s.core.records.SaveAutopays(ctx, defs); err != nil {
				return err
			}
		}
		def = *d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// GetAutopayByID retrieves a definition by ID
func (s *autopayService) GetAutopayByID(ctx context.Context, id string) (*models.AutopayDefinition, error) {
	var def models.AutopayDefinition
	err := s.core.exclusive(ctx, func() error {
		defs, err := s.core.records.Autopays(ctx)
		if err != nil {
			return err
		}
		for _, d := range defs {
			if d.ID == id {
				def = d
				return nil
			}
		}
		return apperrors.ErrAutopayNotFound
	})
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// GetAutopayTransactions returns every definition, including inactive ones.
func (s *autopayService) GetAutopayTransactions(ctx context.Context) ([]models.AutopayDefinition, error) {
	var defs []models.AutopayDefinition
	err := s.core.exclusive(ctx, func() error {
		var err error
		defs, err = s.core.records.Autopays(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return defs, nil
}

// ProcessAutopays materializes every due execution.
func (s *autopayService) ProcessAutopays(ctx context.Context) (*AutopayRunResult, error) {
	var result AutopayRunResult
	err := s.core.exclusive(ctx, func() error {
		var err error
		result, err = s.core.processAutopays(ctx, s.core.now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// processAutopays runs every active definition whose next execution is due.
// A definition that fails to save is left where it is and retried on the
// next pass; storage errors abort the pass.
func (c *Core) processAutopays(ctx context.Context, now time.Time) (AutopayRunResult, error) {
	result := AutopayRunResult{TransactionIDs: []string{}}

	defs, err := c.records.Autopays(ctx)
	if err != nil {
		return result, err
	}

	for i := range defs {
		d := &defs[i]
		if !d.IsActive || d.NextExecutionDate.After(now) {
			continue
		}
		result.Processed++
		if err := c.runAutopay(ctx, defs, d, now, &result); err != nil {
			return result, err
		}
	}

	if result.Processed > 0 {
		c.log.Infow("autopays processed",
			"processed", result.Processed,
			"executed", result.Executed,
			"deactivated", result.Deactivated,
			"failed", result.Failed,
		)
	}
	return result, nil
}

// runAutopay executes d once, or until it is no longer due in catch-up mode.
// defs is persisted after every step so a crash never replays an execution
// the definition already counted.
func (c *Core) runAutopay(ctx context.Context, defs []models.AutopayDefinition, d *models.AutopayDefinition, now time.Time, result *AutopayRunResult) error {
	for {
		if d.Exhausted() {
			c.deactivateAutopay(d, now, "completed")
			result.Deactivated++
			return c.records.SaveAutopays(ctx, defs)
		}

		tx, err := c.materialize(ctx, d)
		if err != nil {
			if errors.Is(err, apperrors.ErrStorage) {
				return err
			}
			return c.recordAutopayFailure(ctx, defs, d, now, err, result)
		}

		executedAt := now
		d.ExecutionCount++
		d.LastExecutedAt = &executedAt
		d.LastError = ""
		d.NextExecutionDate = schedule.NextExecution(d.NextExecutionDate, d.Frequency)
		d.Touch(now)
		result.Executed++
		result.TransactionIDs = append(result.TransactionIDs, tx.ID)

		if d.Exhausted() {
			c.deactivateAutopay(d, now, "completed")
			result.Deactivated++
		}
		if err := c.records.SaveAutopays(ctx, defs); err != nil {
			return err
		}

		if !d.IsActive || !c.opts.CatchUp || d.NextExecutionDate.After(now) {
			return nil
		}
	}
}

// materialize saves the transaction for d's next execution. If a previous
// pass already saved it but died before advancing d, that transaction is
// returned instead of a duplicate.
func (c *Core) materialize(ctx context.Context, d *models.AutopayDefinition) (*models.Transaction, error) {
	txs, err := c.records.Transactions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range txs {
		if txs[i].AutopayID == d.ID && txs[i].Date.Equal(d.NextExecutionDate) {
			return &txs[i], nil
		}
	}

	return c.saveTransaction(ctx, TransactionDraft{
		Type:        d.Type,
		Amount:      d.Amount,
		CategoryID:  d.CategoryID,
		Description: d.Description,
		PaymentMode: d.PaymentMode,
		Date:        d.NextExecutionDate,
		autopayID:   d.ID,
	})
}

func (c *Core) recordAutopayFailure(ctx context.Context, defs []models.AutopayDefinition, d *models.AutopayDefinition, now time.Time, cause error, result *AutopayRunResult) error {
	c.log.Warnw("autopay execution failed",
		"autopay_id", d.ID,
		"due", d.NextExecutionDate,
		"error", cause,
	)

	d.LastError = cause.Error()
	d.Touch(now)
	result.Failed++
	if err := c.records.SaveAutopays(ctx, defs); err != nil {
		return err
	}

	return c.notify(ctx, models.Notification{
		Title:    "Autopay failed",
		Message:  fmt.Sprintf("%s (%s) could not be processed: %s", d.Description, d.Amount.StringFixed(2), cause.Error()),
		Severity: models.SeverityAlert,
		Data: map[string]any{
			"autopay_id": d.ID,
			"due":        d.NextExecutionDate,
		},
	})
}

func (c *Core) deactivateAutopay(d *models.AutopayDefinition, now time.Time, reason string) {
	disabledAt := now
	d.IsActive = false
	d.DisabledAt = &disabledAt
	d.Touch(now)
	c.publish(events.AutopayDisabled, map[string]any{"id": d.ID, "reason": reason})
}

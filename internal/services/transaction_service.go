package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/events"
	"pocketledger/internal/ledger"
	"pocketledger/internal/models"
	"pocketledger/internal/pagination"
)

// Accepted transaction date window relative to now.
const (
	maxFutureSkew      = 24 * time.Hour
	maxHistoryYears    = 5
	maxDescriptionSize = 255
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	core *Core
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(core *Core) TransactionServicer {
	return &transactionService{core: core}
}

// SaveTransaction validates and records a new transaction, then updates the
// balance and any budgets covering its category.
func (s *transactionService) SaveTransaction(ctx context.Context, draft TransactionDraft) (*models.Transaction, error) {
	var tx *models.Transaction
	err := s.core.exclusive(ctx, func() error {
		var err error
		tx, err = s.core.saveTransaction(ctx, draft)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (c *Core) saveTransaction(ctx context.Context, draft TransactionDraft) (*models.Transaction, error) {
	tx := models.Transaction{
		Type:               draft.Type,
		Amount:             draft.Amount,
		CategoryID:         draft.CategoryID,
		Description:        strings.TrimSpace(draft.Description),
		PaymentMode:        draft.PaymentMode,
		Date:               draft.Date,
		IsAutopayGenerated: draft.autopayID != "",
		AutopayID:          draft.autopayID,
	}
	if err := c.validateTransaction(ctx, &tx); err != nil {
		return nil, err
	}
	tx.Init(c.now())

	if _, err := c.applyToBalance(ctx, applyStep(&tx)); err != nil {
		return nil, err
	}

	txs, err := c.records.Transactions(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.records.SaveTransactions(ctx, append(txs, tx)); err != nil {
		return nil, err
	}

	if err := c.onTransactionApplied(ctx, &tx, 1); err != nil {
		return nil, err
	}

	c.publish(events.TransactionAdded, map[string]any{
		"id":     tx.ID,
		"type":   tx.Type,
		"amount": tx.Amount.String(),
	})
	return &tx, nil
}

// validateTransaction checks tx before any write. A zero date defaults to now.
func (c *Core) validateTransaction(ctx context.Context, tx *models.Transaction) error {
	if err := c.validateDate(tx); err != nil {
		return err
	}
	return c.validateFields(ctx, tx)
}

// validateDate keeps tx.Date inside the accepted window around now.
func (c *Core) validateDate(tx *models.Transaction) error {
	now := c.now()
	if tx.Date.IsZero() {
		tx.Date = now
	}
	if tx.Date.After(now.Add(maxFutureSkew)) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "date cannot be more than one day in the future")
	}
	if tx.Date.Before(now.AddDate(-maxHistoryYears, 0, 0)) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("date cannot be more than %d years in the past", maxHistoryYears))
	}
	return nil
}

// validateFields checks everything about tx except its date.
func (c *Core) validateFields(ctx context.Context, tx *models.Transaction) error {
	if !tx.Type.Valid() {
		return apperrors.ErrInvalidTransactionType
	}
	if !tx.Amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if !tx.Amount.Equal(tx.Amount.Round(2)) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must have at most two decimal places")
	}
	if !tx.PaymentMode.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("unknown payment mode %q", tx.PaymentMode))
	}
	if len(tx.Description) > maxDescriptionSize {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("description must be at most %d characters", maxDescriptionSize))
	}

	if tx.CategoryID != "" {
		cat, err := c.findCategory(ctx, tx.CategoryID)
		if err != nil {
			if errors.Is(err, apperrors.ErrCategoryNotFound) {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown category")
			}
			return err
		}
		if string(cat.Type) != string(tx.Type) {
			return apperrors.WithMessage(apperrors.ErrInvalidInput,
				fmt.Sprintf("category %q cannot be used for %s transactions", cat.Name, tx.Type))
		}
	}
	return nil
}

// UpdateTransaction edits a transaction. The balance moves by the difference
// between the old and new effect, and budgets are adjusted for both.
func (s *transactionService) UpdateTransaction(ctx context.Context, id string, fields TransactionUpdateFields) (*models.Transaction, error) {
	var updated models.Transaction
	err := s.core.exclusive(ctx, func() error {
		txs, err := s.core.records.Transactions(ctx)
		if err != nil {
			return err
		}
		idx := slices.IndexFunc(txs, func(t models.Transaction) bool { return t.ID == id })
		if idx < 0 {
			return apperrors.ErrTransactionNotFound
		}
		old := txs[idx]

		updated = old
		if fields.Type != nil {
			updated.Type = *fields.Type
		}
		if fields.Amount != nil {
			updated.Amount = *fields.Amount
		}
		if fields.CategoryID != nil {
			updated.CategoryID = *fields.CategoryID
		}
		if fields.Description != nil {
			updated.Description = strings.TrimSpace(*fields.Description)
		}
		if fields.PaymentMode != nil {
			updated.PaymentMode = *fields.PaymentMode
		}
		// A stored date is only re-checked when the edit moves it.
		if fields.Date != nil {
			updated.Date = *fields.Date
			if err := s.core.validateDate(&updated); err != nil {
				return err
			}
		}
		if err := s.core.validateFields(ctx, &updated); err != nil {
			return err
		}
		updated.Touch(s.core.now())

		if _, err := s.core.applyToBalance(ctx, replaceStep(&old, &updated)); err != nil {
			return err
		}

		txs[idx] = updated
		if err := s.core.records.SaveTransactions(ctx, txs); err != nil {
			return err
		}

		if err := s.core.adjustBudgets(ctx, &old, -1); err != nil {
			return err
		}
		if err := s.core.adjustBudgets(ctx, &updated, 1); err != nil {
			return err
		}
		if _, err := s.core.recomputeSummary(ctx); err != nil {
			return err
		}

		s.core.publish(events.TransactionUpdated, map[string]any{"id": id})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTransaction removes a transaction and reverses its effect.
func (s *transactionService) DeleteTransaction(ctx context.Context, id string) error {
	return s.core.exclusive(ctx, func() error {
		txs, err := s.core.records.Transactions(ctx)
		if err != nil {
			return err
		}
		idx := slices.IndexFunc(txs, func(t models.Transaction) bool { return t.ID == id })
		if idx < 0 {
			return apperrors.ErrTransactionNotFound
		}
		tx := txs[idx]

		if _, err := s.core.applyToBalance(ctx, reverseStep(&tx)); err != nil {
			return err
		}

		txs = slices.Delete(txs, idx, idx+1)
		if err := s.core.records.SaveTransactions(ctx, txs); err != nil {
			return err
		}

		if err := s.core.onTransactionApplied(ctx, &tx, -1); err != nil {
			return err
		}

		s.core.publish(events.TransactionDeleted, map[string]any{"id": id})
		return nil
	})
}

// GetTransactionByID retrieves a transaction by ID
func (s *transactionService) GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error) {
	var tx models.Transaction
	err := s.core.exclusive(ctx, func() error {
		txs, err := s.core.records.Transactions(ctx)
		if err != nil {
			return err
		}
		for _, t := range txs {
			if t.ID == id {
				tx = t
				return nil
			}
		}
		return apperrors.ErrTransactionNotFound
	})
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// ListTransactions returns a filtered page of transactions, newest first.
func (s *transactionService) ListTransactions(ctx context.Context, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	var txs []models.Transaction
	err := s.core.exclusive(ctx, func() error {
		var err error
		txs, err = s.core.records.Transactions(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	matched := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if filter.matches(&tx) {
			matched = append(matched, tx)
		}
	}
	slices.SortStableFunc(matched, func(a, b models.Transaction) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	result := pagination.Slice(matched, page)
	return &result, nil
}

func (f TransactionFilter) matches(tx *models.Transaction) bool {
	if f.FromDate != nil && tx.Date.Before(*f.FromDate) {
		return false
	}
	if f.ToDate != nil && tx.Date.After(*f.ToDate) {
		return false
	}
	if f.Type != nil && tx.Type != *f.Type {
		return false
	}
	if f.CategoryID != nil && tx.CategoryID != *f.CategoryID {
		return false
	}
	if f.AutopayGenerated != nil && tx.IsAutopayGenerated != *f.AutopayGenerated {
		return false
	}
	return true
}

// ValidateTransaction reports whether draft would be accepted right now,
// including the balance check for expenses. Only storage failures are
// returned as errors.
func (s *transactionService) ValidateTransaction(ctx context.Context, draft TransactionDraft) (*ValidationResult, error) {
	result := &ValidationResult{IsValid: true}
	err := s.core.exclusive(ctx, func() error {
		tx := models.Transaction{
			Type:        draft.Type,
			Amount:      draft.Amount,
			CategoryID:  draft.CategoryID,
			Description: strings.TrimSpace(draft.Description),
			PaymentMode: draft.PaymentMode,
			Date:        draft.Date,
		}
		err := s.core.validateTransaction(ctx, &tx)
		if err == nil {
			var state models.AccountState
			state, err = s.core.records.AccountState(ctx)
			if err != nil {
				return err
			}
			_, err = ledger.Apply(state, &tx)
		}
		if err == nil {
			return nil
		}
		if errors.Is(err, apperrors.ErrStorage) {
			return err
		}
		result.IsValid = false
		result.Message = err.Error()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

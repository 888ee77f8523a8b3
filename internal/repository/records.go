// Package repository maps the ledger's logical collections onto record store
// keys. Each collection is one serialized value; reading or writing it is a
// single store round trip.
package repository

import (
	"context"
	"encoding/json"
	"errors"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/store"
)

// Collection names under the configured key prefix.
const (
	KeyTransactions  = "transactions"
	KeyBudgets       = "budgets"
	KeyBudgetSummary = "budget_summary"
	KeyCategories    = "categories"
	KeyAccountState  = "account_state"
	KeyAutopays      = "autopay_definitions"
	KeyNotifications = "notification_history"
	KeyGoals         = "goals"
)

// Records gives typed access to every collection of one ledger.
type Records struct {
	store  store.Store
	prefix string
}

// New creates a Records view over s. Keys are namespaced as "<prefix>:<collection>".
func New(s store.Store, prefix string) *Records {
	return &Records{store: s, prefix: prefix}
}

// Key returns the fully qualified store key for a collection.
func (r *Records) Key(collection string) string {
	if r.prefix == "" {
		return collection
	}
	return r.prefix + ":" + collection
}

// load decodes the collection into out. found is false when the key is absent.
func load[T any](ctx context.Context, r *Records, collection string, out *T) (bool, error) {
	data, err := r.store.Get(ctx, r.Key(collection))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, apperrors.Storage(err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, apperrors.Storage(err)
	}
	return true, nil
}

func save[T any](ctx context.Context, r *Records, collection string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return apperrors.Storage(err)
	}
	return apperrors.Storage(r.store.Set(ctx, r.Key(collection), data))
}

func loadList[T any](ctx context.Context, r *Records, collection string) ([]T, error) {
	var items []T
	if _, err := load(ctx, r, collection, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Transactions returns the full transaction history in stored order.
func (r *Records) Transactions(ctx context.Context) ([]models.Transaction, error) {
	return loadList[models.Transaction](ctx, r, KeyTransactions)
}

// SaveTransactions replaces the transaction history.
func (r *Records) SaveTransactions(ctx context.Context, txs []models.Transaction) error {
	return save(ctx, r, KeyTransactions, txs)
}

// Budgets returns every budget, active or not.
func (r *Records) Budgets(ctx context.Context) ([]models.Budget, error) {
	return loadList[models.Budget](ctx, r, KeyBudgets)
}

// SaveBudgets replaces the budget list.
func (r *Records) SaveBudgets(ctx context.Context, budgets []models.Budget) error {
	return save(ctx, r, KeyBudgets, budgets)
}

// BudgetSummary returns the stored summary, or nil when none has been written.
func (r *Records) BudgetSummary(ctx context.Context) (*models.BudgetSummary, error) {
	var summary models.BudgetSummary
	found, err := load(ctx, r, KeyBudgetSummary, &summary)
	if err != nil || !found {
		return nil, err
	}
	return &summary, nil
}

// SaveBudgetSummary replaces the summary record.
func (r *Records) SaveBudgetSummary(ctx context.Context, summary *models.BudgetSummary) error {
	return save(ctx, r, KeyBudgetSummary, summary)
}

// DeleteBudgetSummary removes the summary record.
func (r *Records) DeleteBudgetSummary(ctx context.Context) error {
	return apperrors.Storage(r.store.Delete(ctx, r.Key(KeyBudgetSummary)))
}

// Categories returns the category list. seeded is false when the collection
// has never been written.
func (r *Records) Categories(ctx context.Context) (categories []models.Category, seeded bool, err error) {
	seeded, err = load(ctx, r, KeyCategories, &categories)
	if err != nil {
		return nil, false, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, seeded, nil
}

// SaveCategories replaces the category list.
func (r *Records) SaveCategories(ctx context.Context, categories []models.Category) error {
	return save(ctx, r, KeyCategories, categories)
}

// AccountState returns the balance record; a fresh ledger starts at zero.
func (r *Records) AccountState(ctx context.Context) (models.AccountState, error) {
	var state models.AccountState
	if _, err := load(ctx, r, KeyAccountState, &state); err != nil {
		return models.AccountState{}, err
	}
	return state, nil
}

// SaveAccountState replaces the balance record.
func (r *Records) SaveAccountState(ctx context.Context, state models.AccountState) error {
	return save(ctx, r, KeyAccountState, state)
}

// Autopays returns every autopay definition, including inactive ones.
func (r *Records) Autopays(ctx context.Context) ([]models.AutopayDefinition, error) {
	return loadList[models.AutopayDefinition](ctx, r, KeyAutopays)
}

// SaveAutopays replaces the autopay definitions.
func (r *Records) SaveAutopays(ctx context.Context, autopays []models.AutopayDefinition) error {
	return save(ctx, r, KeyAutopays, autopays)
}

// Notifications returns the notification history, newest first.
func (r *Records) Notifications(ctx context.Context) ([]models.Notification, error) {
	return loadList[models.Notification](ctx, r, KeyNotifications)
}

// SaveNotifications replaces the notification history.
func (r *Records) SaveNotifications(ctx context.Context, notifications []models.Notification) error {
	return save(ctx, r, KeyNotifications, notifications)
}

// Goals returns every savings goal.
func (r *Records) Goals(ctx context.Context) ([]models.Goal, error) {
	return loadList[models.Goal](ctx, r, KeyGoals)
}

// SaveGoals replaces the goal list.
func (r *Records) SaveGoals(ctx context.Context, goals []models.Goal) error {
	return save(ctx, r, KeyGoals, goals)
}

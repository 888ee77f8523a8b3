package testutil

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"pocketledger/internal/models"
	"pocketledger/internal/repository"
	"pocketledger/internal/schedule"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Dec parses a decimal literal, failing loudly on typos in test tables.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Clock is a manually driven time source for services under test.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock returns a clock stopped at now.
func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

// Now returns the current fake time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set moves the clock to t.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// SeedBalance writes an account state holding amount as balance and income.
func SeedBalance(t *testing.T, r *repository.Records, amount decimal.Decimal) models.AccountState {
	t.Helper()

	state := models.AccountState{
		Balance:       amount,
		MonthlyIncome: amount,
		UpdatedAt:     time.Now(),
	}
	if err := r.SaveAccountState(context.Background(), state); err != nil {
		t.Fatalf("failed to seed balance: %v", err)
	}
	return state
}

// CreateTestCategory appends a category of the given type.
func CreateTestCategory(t *testing.T, r *repository.Records, categoryType models.CategoryType) *models.Category {
	t.Helper()
	ctx := context.Background()

	categories, _, err := r.Categories(ctx)
	if err != nil {
		t.Fatalf("failed to load categories: %v", err)
	}

	category := models.Category{
		Name: fmt.Sprintf("Test Category %d", nextID()),
		Type: categoryType,
	}
	category.Init(time.Now())

	if err := r.SaveCategories(ctx, append(categories, category)); err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return &category
}

// CreateTestTransaction appends a raw transaction record without touching the
// balance or budgets. Useful for setting up history that a rescan must find.
func CreateTestTransaction(t *testing.T, r *repository.Records, txType models.TransactionType, categoryID string, amount decimal.Decimal, date time.Time) *models.Transaction {
	t.Helper()
	ctx := context.Background()

	txs, err := r.Transactions(ctx)
	if err != nil {
		t.Fatalf("failed to load transactions: %v", err)
	}

	tx := models.Transaction{
		Type:        txType,
		Amount:      amount,
		CategoryID:  categoryID,
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Date:        date,
	}
	tx.Init(date)

	if err := r.SaveTransactions(ctx, append(txs, tx)); err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return &tx
}

// CreateTestBudget appends an active monthly budget of 100.00 whose window
// starts at start.
func CreateTestBudget(t *testing.T, r *repository.Records, categoryID string, start time.Time) *models.Budget {
	t.Helper()
	ctx := context.Background()

	budgets, err := r.Budgets(ctx)
	if err != nil {
		t.Fatalf("failed to load budgets: %v", err)
	}

	expiry := schedule.AddPeriod(start, models.BudgetPeriodMonthly)
	budget := models.Budget{
		CategoryID: categoryID,
		Name:       fmt.Sprintf("Test Budget %d", nextID()),
		Amount:     decimal.NewFromInt(100),
		Period:     models.BudgetPeriodMonthly,
		StartDate:  start,
		ExpiryDate: &expiry,
		IsActive:   true,
	}
	budget.Init(start)

	if err := r.SaveBudgets(ctx, append(budgets, budget)); err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return &budget
}

// UpdateTestBudget rewrites one stored budget through fn.
func UpdateTestBudget(t *testing.T, r *repository.Records, id string, fn func(b *models.Budget)) {
	t.Helper()
	ctx := context.Background()

	budgets, err := r.Budgets(ctx)
	if err != nil {
		t.Fatalf("failed to load budgets: %v", err)
	}
	for i := range budgets {
		if budgets[i].ID == id {
			fn(&budgets[i])
			if err := r.SaveBudgets(ctx, budgets); err != nil {
				t.Fatalf("failed to update test budget: %v", err)
			}
			return
		}
	}
	t.Fatalf("budget %s not found", id)
}

// GetTestBudget loads one stored budget.
func GetTestBudget(t *testing.T, r *repository.Records, id string) models.Budget {
	t.Helper()

	budgets, err := r.Budgets(context.Background())
	if err != nil {
		t.Fatalf("failed to load budgets: %v", err)
	}
	for _, b := range budgets {
		if b.ID == id {
			return b
		}
	}
	t.Fatalf("budget %s not found", id)
	return models.Budget{}
}

// GetAccountState loads the stored account state.
func GetAccountState(t *testing.T, r *repository.Records) models.AccountState {
	t.Helper()

	state, err := r.AccountState(context.Background())
	if err != nil {
		t.Fatalf("failed to load account state: %v", err)
	}
	return state
}

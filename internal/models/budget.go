package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the period type for a budget
type BudgetPeriod string

const (
	BudgetPeriodDaily     BudgetPeriod = "daily"
	BudgetPeriodWeekly    BudgetPeriod = "weekly"
	BudgetPeriodMonthly   BudgetPeriod = "monthly"
	BudgetPeriodQuarterly BudgetPeriod = "quarterly"
	BudgetPeriodYearly    BudgetPeriod = "yearly"
)

// Valid reports whether p is a known budget period.
func (p BudgetPeriod) Valid() bool {
	switch p {
	case BudgetPeriodDaily, BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodQuarterly, BudgetPeriodYearly:
		return true
	}
	return false
}

// BudgetStatus is the derived lifecycle state attached to fetched budgets.
type BudgetStatus string

const (
	BudgetStatusActive       BudgetStatus = "active"
	BudgetStatusExpiringSoon BudgetStatus = "expiring_soon"
	BudgetStatusExpired      BudgetStatus = "expired"
	BudgetStatusLegacy       BudgetStatus = "legacy"
)

// Budget caps spending for one category over a recurring period.
//
// Spent is a cache of the sum of expense transactions for the category inside
// the current window. Only the summary rebuild is trusted to produce it.
type Budget struct {
	Base
	CategoryID  string          `json:"category_id"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Spent       decimal.Decimal `json:"spent"`
	Period      BudgetPeriod    `json:"period"`
	StartDate   time.Time       `json:"start_date"`
	ExpiryDate  *time.Time      `json:"expiry_date,omitempty"`
	IsActive    bool            `json:"is_active"`
	AutoReset   bool            `json:"auto_reset"`
	ResetCount  int             `json:"reset_count"`
	LastResetAt *time.Time      `json:"last_reset_at,omitempty"`
	ExpiredAt   *time.Time      `json:"expired_at,omitempty"`

	// LastAlert remembers the last threshold band notified in the current
	// period. Only consulted when alert de-duplication is enabled.
	LastAlert Severity `json:"last_alert,omitempty"`

	Status BudgetStatus `json:"status,omitempty"`
}

// IsLegacy reports whether the budget predates period tracking.
func (b *Budget) IsLegacy() bool {
	return b.ExpiryDate == nil
}

// InWindow reports whether t falls inside the budget's current period.
// Legacy budgets have no window and accept every date.
func (b *Budget) InWindow(t time.Time) bool {
	if b.IsLegacy() {
		return true
	}
	return !t.Before(b.StartDate) && t.Before(*b.ExpiryDate)
}

// Percentage returns spent as a percentage of the allocated amount.
func (b *Budget) Percentage() float64 {
	if !b.Amount.IsPositive() {
		return 0
	}
	return b.Spent.Div(b.Amount).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// CategorySpend is one row of the budget summary breakdown.
type CategorySpend struct {
	CategoryID string          `json:"category_id"`
	BudgetID   string          `json:"budget_id"`
	Name       string          `json:"name"`
	Allocated  decimal.Decimal `json:"allocated"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage float64         `json:"percentage"`
}

// BudgetSummary is the materialized roll-up of all active budgets. It is
// rebuilt from scratch on every change and never patched in place.
type BudgetSummary struct {
	Total      decimal.Decimal `json:"total"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage float64         `json:"percentage"`
	Categories []CategorySpend `json:"categories"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

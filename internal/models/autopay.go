package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is the cadence of an autopay definition.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Valid reports whether f is a known autopay frequency.
func (f Frequency) Valid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly || f == FrequencyMonthly
}

// AutopayDefinition is a recurring transaction template. The scheduler is the
// only writer of NextExecutionDate and ExecutionCount.
type AutopayDefinition struct {
	Base
	Description       string          `json:"description"`
	Amount            decimal.Decimal `json:"amount"`
	Type              TransactionType `json:"type"`
	CategoryID        string          `json:"category_id,omitempty"`
	PaymentMode       PaymentMode     `json:"payment_mode,omitempty"`
	Frequency         Frequency       `json:"frequency"`
	StartDate         time.Time       `json:"start_date"`
	EndDate           *time.Time      `json:"end_date,omitempty"`
	MaxCount          *int            `json:"max_count,omitempty"`
	IsActive          bool            `json:"is_active"`
	NextExecutionDate time.Time       `json:"next_execution_date"`
	ExecutionCount    int             `json:"execution_count"`
	LastExecutedAt    *time.Time      `json:"last_executed_at,omitempty"`
	LastError         string          `json:"last_error,omitempty"`
	DisabledAt        *time.Time      `json:"disabled_at,omitempty"`
}

// Exhausted reports whether the definition has no executions left: either
// the cap is reached or the next occurrence falls after the end date.
func (a *AutopayDefinition) Exhausted() bool {
	if a.MaxCount != nil && a.ExecutionCount >= *a.MaxCount {
		return true
	}
	if a.EndDate != nil && a.NextExecutionDate.After(*a.EndDate) {
		return true
	}
	return false
}

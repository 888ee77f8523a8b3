package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountState is the singleton balance record owned by the balance ledger.
// MonthlyIncome and MonthlyExpenses are cumulative over the lifetime of the
// data set; they are not rolled over at month boundaries.
type AccountState struct {
	Balance         decimal.Decimal `json:"balance"`
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

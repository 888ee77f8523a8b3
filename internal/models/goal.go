package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target tracked outside the ledger balance.
type Goal struct {
	Base
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	SavedAmount   decimal.Decimal `json:"saved_amount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	LastMilestone int             `json:"last_milestone"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
}

// Percentage returns saved as a percentage of the target.
func (g *Goal) Percentage() float64 {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	return g.SavedAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

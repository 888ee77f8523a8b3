// Package ledger applies and reverses the balance effect of one transaction
// at a time. Functions take and return values; persistence is the caller's job,
// so a rejected operation never leaves a partial write behind.
package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
)

// Apply adds the effect of tx to state. Expenses are rejected with
// ErrInsufficientBalance when they would take the balance below zero.
func Apply(state models.AccountState, tx *models.Transaction) (models.AccountState, error) {
	if !tx.Amount.IsPositive() {
		return state, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	switch tx.Type {
	case models.TransactionTypeIncome:
		state.Balance = state.Balance.Add(tx.Amount)
		state.MonthlyIncome = state.MonthlyIncome.Add(tx.Amount)
	case models.TransactionTypeExpense:
		if tx.Amount.GreaterThan(state.Balance) {
			return state, insufficient(state.Balance, tx.Amount)
		}
		state.Balance = floor(state.Balance.Sub(tx.Amount))
		state.MonthlyExpenses = state.MonthlyExpenses.Add(tx.Amount)
	default:
		return state, apperrors.ErrInvalidTransactionType
	}
	return state, nil
}

// Reverse removes the effect of a previously applied tx. The monthly counters
// are floored at zero to absorb drift left by earlier partial failures.
// Reversing an income that has already been spent is rejected, since it would
// take the balance below zero.
func Reverse(state models.AccountState, tx *models.Transaction) (models.AccountState, error) {
	next, err := reverse(state, tx)
	if err != nil {
		return state, err
	}
	if next.Balance.IsNegative() {
		return state, insufficient(state.Balance, tx.Amount)
	}
	return next, nil
}

// Replace swaps the effect of old for updated as Reverse(old) followed by
// Apply(updated). Only the final balance has to be non-negative: an edit that
// shrinks an already spent income is fine as long as the new amount still
// covers what was spent.
func Replace(state models.AccountState, old, updated *models.Transaction) (models.AccountState, error) {
	reversed, err := reverse(state, old)
	if err != nil {
		return state, err
	}

	if updated.Type == models.TransactionTypeExpense && reversed.Balance.IsNegative() {
		return state, insufficient(state.Balance, updated.Amount)
	}
	applied, err := Apply(reversed, updated)
	if err != nil {
		return state, err
	}
	if applied.Balance.IsNegative() {
		return state, insufficient(state.Balance, old.Amount.Sub(updated.Amount))
	}
	return applied, nil
}

// reverse computes the inverse without the non-negative balance check.
func reverse(state models.AccountState, tx *models.Transaction) (models.AccountState, error) {
	switch tx.Type {
	case models.TransactionTypeIncome:
		state.Balance = state.Balance.Sub(tx.Amount)
		state.MonthlyIncome = floor(state.MonthlyIncome.Sub(tx.Amount))
	case models.TransactionTypeExpense:
		state.Balance = state.Balance.Add(tx.Amount)
		state.MonthlyExpenses = floor(state.MonthlyExpenses.Sub(tx.Amount))
	default:
		return state, apperrors.ErrInvalidTransactionType
	}
	return state, nil
}

func insufficient(balance, amount decimal.Decimal) error {
	return apperrors.WithMessage(apperrors.ErrInsufficientBalance,
		fmt.Sprintf("insufficient balance: available %s, required %s", balance.StringFixed(2), amount.StringFixed(2)))
}

// floor keeps a value at or above zero.
func floor(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

package services

import (
	"context"

	"github.com/shopspring/decimal"

	"pocketledger/internal/events"
	"pocketledger/internal/ledger"
	"pocketledger/internal/models"
)

// accountService exposes the balance ledger.
type accountService struct {
	core *Core
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(core *Core) AccountServicer {
	return &accountService{core: core}
}

// GetCurrentBalance returns the current account balance.
func (s *accountService) GetCurrentBalance(ctx context.Context) (decimal.Decimal, error) {
	state, err := s.GetAccountState(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return state.Balance, nil
}

// GetAccountState returns the balance with its income and expense counters.
func (s *accountService) GetAccountState(ctx context.Context) (*models.AccountState, error) {
	var state models.AccountState
	err := s.core.exclusive(ctx, func() error {
		var err error
		state, err = s.core.records.AccountState(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// balanceStep computes a new account state from the stored one.
type balanceStep func(models.AccountState) (models.AccountState, error)

// applyToBalance runs step against the stored state and writes the result.
// A rejected step leaves the store untouched.
func (c *Core) applyToBalance(ctx context.Context, step balanceStep) (models.AccountState, error) {
	state, err := c.records.AccountState(ctx)
	if err != nil {
		return state, err
	}

	next, err := step(state)
	if err != nil {
		return state, err
	}
	next.UpdatedAt = c.now()

	if err := c.records.SaveAccountState(ctx, next); err != nil {
		return state, err
	}

	c.publish(events.BalanceChanged, map[string]any{"balance": next.Balance.String()})
	return next, nil
}

func applyStep(tx *models.Transaction) balanceStep {
	return func(s models.AccountState) (models.AccountState, error) {
		return ledger.Apply(s, tx)
	}
}

func reverseStep(tx *models.Transaction) balanceStep {
	return func(s models.AccountState) (models.AccountState, error) {
		return ledger.Reverse(s, tx)
	}
}

func replaceStep(old, updated *models.Transaction) balanceStep {
	return func(s models.AccountState) (models.AccountState, error) {
		return ledger.Replace(s, old, updated)
	}
}

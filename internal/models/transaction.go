package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// PaymentMode records how a transaction was paid.
type PaymentMode string

const (
	PaymentModeCash         PaymentMode = "cash"
	PaymentModeCard         PaymentMode = "card"
	PaymentModeUPI          PaymentMode = "upi"
	PaymentModeBankTransfer PaymentMode = "bank_transfer"
	PaymentModeOther        PaymentMode = "other"
)

// Valid reports whether m is a known payment mode. The empty mode is valid.
func (m PaymentMode) Valid() bool {
	switch m {
	case "", PaymentModeCash, PaymentModeCard, PaymentModeUPI, PaymentModeBankTransfer, PaymentModeOther:
		return true
	}
	return false
}

// Transaction is a single income or expense entry in the ledger.
type Transaction struct {
	Base
	Type               TransactionType `json:"type"`
	Amount             decimal.Decimal `json:"amount"`
	CategoryID         string          `json:"category_id,omitempty"`
	Description        string          `json:"description"`
	PaymentMode        PaymentMode     `json:"payment_mode,omitempty"`
	Date               time.Time       `json:"date"`
	IsAutopayGenerated bool            `json:"is_autopay_generated"`
	AutopayID          string          `json:"autopay_id,omitempty"`
}

// IsExpense reports whether the transaction debits the balance.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

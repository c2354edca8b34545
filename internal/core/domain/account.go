package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies a bank account.
type AccountType string

const (
	Savings    AccountType = "Savings"
	Current    AccountType = "Current"
	CreditCard AccountType = "Credit Card"
)

// Account represents a bank account owned by the user.
// Balance is signed: credit card accounts carry a negative balance when money is owed.
type Account struct {
	ID            int              `json:"id"`            // Unique integer id, assigned at seed time
	Name          string           `json:"name"`          // Display name (e.g., "HDFC Savings")
	AccountNumber string           `json:"accountNumber"` // Masked, last four digits only
	Type          AccountType      `json:"type"`
	Balance       decimal.Decimal  `json:"balance"`
	Bank          string           `json:"bank"`
	CreditLimit   *decimal.Decimal `json:"creditLimit,omitempty"` // Credit Card accounts only
}

// CountsTowardBankBalance reports whether the account's balance is part of the
// user's total bank balance. Credit card balances are liabilities and excluded.
func (a Account) CountsTowardBankBalance() bool {
	return a.Type != CreditCard
}

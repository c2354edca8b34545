package domain

import (
	"github.com/shopspring/decimal"
)

// TransactionType indicates how a transaction moves money.
type TransactionType string

const (
	Income     TransactionType = "income"
	Expense    TransactionType = "expense"
	Investment TransactionType = "investment"
)

// DateLayout is the calendar-date format used throughout the persisted data.
const DateLayout = "2006-01-02"

// Transaction is a single money movement against an account.
// Amount is always positive; Type carries the sign.
type Transaction struct {
	ID          int             `json:"id"`     // Unique, assigned as max existing + 1
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"` // Positive
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`      // ISO calendar date, YYYY-MM-DD
	AccountID   int             `json:"accountId"` // FK -> Account.ID
	IsRecurring bool            `json:"isRecurring,omitempty"`
	StockSymbol string          `json:"stockSymbol,omitempty"` // Investment transactions only
}

// AffectsBalance reports whether the transaction moves the owning account's
// balance. Investments are tracked but leave bank balances untouched.
func (t Transaction) AffectsBalance() bool {
	return t.Type == Income || t.Type == Expense
}

// SignedAmount returns the amount with the sign implied by the transaction type:
// positive for income, negative for expense, zero for investment.
func (t Transaction) SignedAmount() decimal.Decimal {
	switch t.Type {
	case Income:
		return t.Amount
	case Expense:
		return t.Amount.Neg()
	default:
		return decimal.Zero
	}
}

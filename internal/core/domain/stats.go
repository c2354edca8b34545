package domain

import (
	"github.com/shopspring/decimal"
)

// MonthlyStats aggregates all transactions of one calendar month.
type MonthlyStats struct {
	Month            string          `json:"month"` // YYYY-MM
	Income           decimal.Decimal `json:"income"`
	Expenses         decimal.Decimal `json:"expenses"`
	Investments      decimal.Decimal `json:"investments"`
	Savings          decimal.Decimal `json:"savings"`   // Income - Expenses
	NetAmount        decimal.Decimal `json:"netAmount"` // Income - Expenses - Investments
	TransactionCount int             `json:"transactionCount"`
}

// PortfolioGainLoss is the portfolio's performance versus its cost basis.
// Percentage is zero when the invested cost is zero.
type PortfolioGainLoss struct {
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

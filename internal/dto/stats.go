package dto

import (
	"github.com/finwise/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyStatsParams defines query parameters for the monthly stats endpoint.
// An empty month means the current calendar month.
type MonthlyStatsParams struct {
	Month string `form:"month" binding:"omitempty,yearmonth"`
}

// MonthlyStatsResponse defines the aggregates returned for one month.
type MonthlyStatsResponse struct {
	Month            string          `json:"month"`
	Income           decimal.Decimal `json:"income"`
	Expenses         decimal.Decimal `json:"expenses"`
	Investments      decimal.Decimal `json:"investments"`
	Savings          decimal.Decimal `json:"savings"`
	NetAmount        decimal.Decimal `json:"netAmount"`
	TransactionCount int             `json:"transactionCount"`
}

// ToMonthlyStatsResponse converts domain.MonthlyStats to its response DTO.
func ToMonthlyStatsResponse(s domain.MonthlyStats) MonthlyStatsResponse {
	return MonthlyStatsResponse{
		Month:            s.Month,
		Income:           s.Income,
		Expenses:         s.Expenses,
		Investments:      s.Investments,
		Savings:          s.Savings,
		NetAmount:        s.NetAmount,
		TransactionCount: s.TransactionCount,
	}
}

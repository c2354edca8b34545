package domain

import (
	"github.com/shopspring/decimal"
)

// StockHolding is one position in the user's stock portfolio.
// Prices are static snapshots; there is no live feed behind them.
type StockHolding struct {
	ID           int             `json:"id"`
	Symbol       string          `json:"symbol"`
	CompanyName  string          `json:"companyName"`
	Quantity     int64           `json:"quantity"` // Whole shares
	AvgPrice     decimal.Decimal `json:"avgPrice"` // Average acquisition price per share
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	Sector       string          `json:"sector"`
}

// MarketValue returns quantity times the current price.
func (h StockHolding) MarketValue() decimal.Decimal {
	return h.CurrentPrice.Mul(decimal.NewFromInt(h.Quantity))
}

// CostBasis returns quantity times the average acquisition price.
func (h StockHolding) CostBasis() decimal.Decimal {
	return h.AvgPrice.Mul(decimal.NewFromInt(h.Quantity))
}

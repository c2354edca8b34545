package dto

import (
	"github.com/finwise/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StockHoldingResponse defines the data returned for one portfolio position.
type StockHoldingResponse struct {
	ID           int             `json:"id"`
	Symbol       string          `json:"symbol"`
	CompanyName  string          `json:"companyName"`
	Quantity     int64           `json:"quantity"`
	AvgPrice     decimal.Decimal `json:"avgPrice"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	Sector       string          `json:"sector"`
	MarketValue  decimal.Decimal `json:"marketValue"`
}

// ToStockHoldingResponse converts a domain.StockHolding to its response DTO.
func ToStockHoldingResponse(h *domain.StockHolding) StockHoldingResponse {
	return StockHoldingResponse{
		ID:           h.ID,
		Symbol:       h.Symbol,
		CompanyName:  h.CompanyName,
		Quantity:     h.Quantity,
		AvgPrice:     h.AvgPrice,
		CurrentPrice: h.CurrentPrice,
		Sector:       h.Sector,
		MarketValue:  h.MarketValue(),
	}
}

// ListPortfolioResponse wraps the portfolio holdings.
type ListPortfolioResponse struct {
	Holdings []StockHoldingResponse `json:"holdings"`
}

// ToListPortfolioResponse converts holdings to their response DTOs.
func ToListPortfolioResponse(holdings []domain.StockHolding) ListPortfolioResponse {
	res := ListPortfolioResponse{Holdings: make([]StockHoldingResponse, len(holdings))}
	for i := range holdings {
		res.Holdings[i] = ToStockHoldingResponse(&holdings[i])
	}
	return res
}

// PortfolioValueResponse carries the portfolio's current market value.
type PortfolioValueResponse struct {
	Value decimal.Decimal `json:"value"`
}

// PortfolioGainLossResponse carries performance versus cost basis.
type PortfolioGainLossResponse struct {
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ToPortfolioGainLossResponse converts the domain figures to a response DTO.
func ToPortfolioGainLossResponse(gl domain.PortfolioGainLoss) PortfolioGainLossResponse {
	return PortfolioGainLossResponse{Amount: gl.Amount, Percentage: gl.Percentage}
}

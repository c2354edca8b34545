package dto

import (
	"github.com/finwise/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a new transaction.
// The id is assigned by the service, never by the caller.
type CreateTransactionRequest struct {
	Type        domain.TransactionType `json:"type" binding:"required,oneof=income expense investment"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Category    string                 `json:"category" binding:"required"`
	Description string                 `json:"description"`
	Date        string                 `json:"date" binding:"required,datetime=2006-01-02"`
	AccountID   int                    `json:"accountId" binding:"required"`
	IsRecurring bool                   `json:"isRecurring"`
	StockSymbol string                 `json:"stockSymbol"`
}

// ToTransaction converts the request into a domain transaction without an id.
func (r CreateTransactionRequest) ToTransaction() domain.Transaction {
	return domain.Transaction{
		Type:        r.Type,
		Amount:      r.Amount,
		Category:    r.Category,
		Description: r.Description,
		Date:        r.Date,
		AccountID:   r.AccountID,
		IsRecurring: r.IsRecurring,
		StockSymbol: r.StockSymbol,
	}
}

// UpdateTransactionRequest defines the fields allowed in a partial update.
// Pointers distinguish "not provided" from zero-value updates; fields left nil
// are preserved on the stored record.
type UpdateTransactionRequest struct {
	Type        *domain.TransactionType `json:"type" binding:"omitempty,oneof=income expense investment"`
	Amount      *decimal.Decimal        `json:"amount"`
	Category    *string                 `json:"category"`
	Description *string                 `json:"description"`
	Date        *string                 `json:"date" binding:"omitempty,datetime=2006-01-02"`
	AccountID   *int                    `json:"accountId"`
	IsRecurring *bool                   `json:"isRecurring"`
	StockSymbol *string                 `json:"stockSymbol"`
}

// ApplyTo merges the set fields of the request over t.
func (r UpdateTransactionRequest) ApplyTo(t *domain.Transaction) {
	if r.Type != nil {
		t.Type = *r.Type
	}
	if r.Amount != nil {
		t.Amount = *r.Amount
	}
	if r.Category != nil {
		t.Category = *r.Category
	}
	if r.Description != nil {
		t.Description = *r.Description
	}
	if r.Date != nil {
		t.Date = *r.Date
	}
	if r.AccountID != nil {
		t.AccountID = *r.AccountID
	}
	if r.IsRecurring != nil {
		t.IsRecurring = *r.IsRecurring
	}
	if r.StockSymbol != nil {
		t.StockSymbol = *r.StockSymbol
	}
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID          int                    `json:"id"`
	Type        domain.TransactionType `json:"type"`
	Amount      decimal.Decimal        `json:"amount"`
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
	Date        string                 `json:"date"`
	AccountID   int                    `json:"accountId"`
	IsRecurring bool                   `json:"isRecurring"`
	StockSymbol string                 `json:"stockSymbol,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Type:        t.Type,
		Amount:      t.Amount,
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date,
		AccountID:   t.AccountID,
		IsRecurring: t.IsRecurring,
		StockSymbol: t.StockSymbol,
	}
}

// ToListTransactionResponse converts a slice of transactions to response DTOs.
func ToListTransactionResponse(transactions []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		res[i] = ToTransactionResponse(&transactions[i])
	}
	return res
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// RecentTransactionsParams defines query parameters for the recent listing.
type RecentTransactionsParams struct {
	Limit int `form:"limit,default=5"`
}

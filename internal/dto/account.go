package dto

import (
	"github.com/finwise/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountResponse defines the data returned for a bank account.
type AccountResponse struct {
	ID            int                `json:"id"`
	Name          string             `json:"name"`
	AccountNumber string             `json:"accountNumber"`
	Type          domain.AccountType `json:"type"`
	Balance       decimal.Decimal    `json:"balance"`
	Bank          string             `json:"bank"`
	CreditLimit   *decimal.Decimal   `json:"creditLimit,omitempty"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:            a.ID,
		Name:          a.Name,
		AccountNumber: a.AccountNumber,
		Type:          a.Type,
		Balance:       a.Balance,
		Bank:          a.Bank,
		CreditLimit:   a.CreditLimit,
	}
}

// ToListAccountResponse converts a slice of accounts to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// TotalBalanceResponse carries the aggregated bank balance
// (credit card accounts excluded).
type TotalBalanceResponse struct {
	TotalBalance decimal.Decimal `json:"totalBalance"`
}

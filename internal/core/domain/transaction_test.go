package domain_test

import (
	"testing"

	"github.com/finwise/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_SignedAmount(t *testing.T) {
	tests := []struct {
		name        string
		transaction domain.Transaction
		want        decimal.Decimal
	}{
		{
			name:        "income is positive",
			transaction: domain.Transaction{Type: domain.Income, Amount: decimal.NewFromInt(5000)},
			want:        decimal.NewFromInt(5000),
		},
		{
			name:        "expense is negative",
			transaction: domain.Transaction{Type: domain.Expense, Amount: decimal.NewFromInt(1200)},
			want:        decimal.NewFromInt(-1200),
		},
		{
			name:        "investment is neutral",
			transaction: domain.Transaction{Type: domain.Investment, Amount: decimal.NewFromInt(15000)},
			want:        decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(tt.transaction.SignedAmount()), "got %s", tt.transaction.SignedAmount())
		})
	}
}

func TestTransaction_AffectsBalance(t *testing.T) {
	assert.True(t, domain.Transaction{Type: domain.Income}.AffectsBalance())
	assert.True(t, domain.Transaction{Type: domain.Expense}.AffectsBalance())
	assert.False(t, domain.Transaction{Type: domain.Investment}.AffectsBalance())
}

func TestCategoryTaxonomy_ByType(t *testing.T) {
	taxonomy := domain.SeedDataset().Categories

	assert.Len(t, taxonomy.ByType("income"), 4)
	assert.Len(t, taxonomy.ByType("expense"), 9)
	assert.Empty(t, taxonomy.ByType("investment"))
	assert.Empty(t, taxonomy.ByType(""))
}

func TestAccount_CountsTowardBankBalance(t *testing.T) {
	assert.True(t, domain.Account{Type: domain.Savings}.CountsTowardBankBalance())
	assert.True(t, domain.Account{Type: domain.Current}.CountsTowardBankBalance())
	assert.False(t, domain.Account{Type: domain.CreditCard}.CountsTowardBankBalance())
}

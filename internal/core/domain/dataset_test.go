package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/finwise/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataset_AccountByID(t *testing.T) {
	ds := domain.SeedDataset()

	acc := ds.AccountByID(1)
	require.NotNil(t, acc)
	assert.Equal(t, "HDFC Savings", acc.Name)
	assert.True(t, decimal.NewFromInt(45000).Equal(acc.Balance))

	assert.Nil(t, ds.AccountByID(42))

	// The pointer aliases the dataset so balance mutations stick.
	acc.Balance = acc.Balance.Sub(decimal.NewFromInt(500))
	assert.True(t, decimal.NewFromInt(44500).Equal(ds.AccountByID(1).Balance))
}

func TestDataset_MaxTransactionID(t *testing.T) {
	ds := domain.SeedDataset()
	assert.Equal(t, 10, ds.MaxTransactionID())

	empty := &domain.Dataset{}
	assert.Equal(t, 0, empty.MaxTransactionID())
}

func TestSeedDataset_IsFreshCopy(t *testing.T) {
	a := domain.SeedDataset()
	a.Transactions[0].Description = "mutated"
	a.BankAccounts[0].Balance = decimal.Zero

	b := domain.SeedDataset()
	assert.Equal(t, "Monthly Salary", b.Transactions[0].Description)
	assert.True(t, decimal.NewFromInt(45000).Equal(b.BankAccounts[0].Balance))
}

func TestDataset_JSONRoundTrip(t *testing.T) {
	ds := domain.SeedDataset()

	blob, err := json.Marshal(ds)
	require.NoError(t, err)

	var decoded domain.Dataset
	require.NoError(t, json.Unmarshal(blob, &decoded))

	assert.Equal(t, ds.User, decoded.User)
	assert.Equal(t, len(ds.Transactions), len(decoded.Transactions))
	assert.True(t, ds.Transactions[4].Amount.Equal(decoded.Transactions[4].Amount))
	assert.Equal(t, "RELIANCE", decoded.Transactions[4].StockSymbol)
	require.NotNil(t, decoded.BankAccounts[2].CreditLimit)
	assert.True(t, ds.BankAccounts[2].CreditLimit.Equal(*decoded.BankAccounts[2].CreditLimit))
	assert.Equal(t, ds.Categories, decoded.Categories)
}

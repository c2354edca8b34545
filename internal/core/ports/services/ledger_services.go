package services

import (
	"context"

	"github.com/finwise/finance_tracker_app/internal/core/domain"
	"github.com/finwise/finance_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ChangeType labels a ledger change delivered to subscribers.
type ChangeType string

const (
	TransactionAdded   ChangeType = "transaction_added"
	TransactionUpdated ChangeType = "transaction_updated"
	TransactionDeleted ChangeType = "transaction_deleted"
	AccountUpdated     ChangeType = "account_updated"
	DataReset          ChangeType = "data_reset"
)

// Event is one change notification: the kind of change plus the affected
// entity (a domain.Transaction, domain.Account, or nil for DataReset).
type Event struct {
	Type    ChangeType
	Payload any
}

// SubscriberFunc receives change events. Dispatch is synchronous and in
// registration order.
type SubscriberFunc func(Event)

// Subscription is a disposable registration handle returned by Subscribe.
type Subscription interface {
	// Cancel deregisters the subscriber. Safe to call more than once.
	Cancel()
}

// LedgerReaderSvc defines read operations over the ledger dataset.
type LedgerReaderSvc interface {
	// AllTransactions returns every transaction ordered by date descending.
	AllTransactions(ctx context.Context) []domain.Transaction

	// RecentTransactions returns the first limit transactions of the
	// date-descending ordering. Non-positive limits fall back to the default.
	RecentTransactions(ctx context.Context, limit int) []domain.Transaction

	// AllAccounts returns every bank account.
	AllAccounts(ctx context.Context) []domain.Account

	// AccountByID retrieves one account; apperrors.ErrNotFound when unknown.
	AccountByID(ctx context.Context, id int) (*domain.Account, error)

	// Categories returns the full category taxonomy.
	Categories(ctx context.Context) domain.CategoryTaxonomy

	// CategoriesByType returns one taxonomy group; unknown types yield an
	// empty slice, never an error.
	CategoriesByType(ctx context.Context, kind string) []domain.Category

	// StockPortfolio returns the user's stock holdings.
	StockPortfolio(ctx context.Context) []domain.StockHolding
}

// LedgerWriterSvc defines mutations over the ledger dataset.
type LedgerWriterSvc interface {
	// AddTransaction creates a transaction from the request, assigns its id
	// and applies its balance effect to the owning account.
	AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction merges the set fields of req over the stored record.
	// Balances are not re-adjusted; see RecomputeBalances.
	UpdateTransaction(ctx context.Context, id int, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction and reverses its balance effect.
	DeleteTransaction(ctx context.Context, id int) error

	// ResetData discards the persisted snapshot and reloads the seed dataset.
	ResetData(ctx context.Context) error

	// RecomputeBalances rebuilds every account balance from its opening
	// balance plus the net effect of the current transactions.
	RecomputeBalances(ctx context.Context) error
}

// LedgerStatsSvc defines derived-statistics queries.
type LedgerStatsSvc interface {
	// MonthlyStats aggregates the given YYYY-MM month; an empty month means
	// the current calendar month. Malformed months fail with ErrValidation.
	MonthlyStats(ctx context.Context, month string) (domain.MonthlyStats, error)

	// TotalBankBalance sums balances over all non-credit-card accounts.
	TotalBankBalance(ctx context.Context) decimal.Decimal

	// PortfolioValue returns the market value of all holdings.
	PortfolioValue(ctx context.Context) decimal.Decimal

	// PortfolioGainLoss returns portfolio performance versus cost basis.
	PortfolioGainLoss(ctx context.Context) domain.PortfolioGainLoss
}

// LedgerNotifierSvc exposes change subscription.
type LedgerNotifierSvc interface {
	Subscribe(fn SubscriberFunc) Subscription
}

// LedgerSvcFacade combines all ledger service interfaces.
// This is the facade handlers and the composition root depend on.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
	LedgerStatsSvc
	LedgerNotifierSvc
}

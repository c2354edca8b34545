package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/finwise/finance_tracker_app/internal/apperrors"
	"github.com/finwise/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/finwise/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/finwise/finance_tracker_app/internal/core/ports/services"
	"github.com/finwise/finance_tracker_app/internal/dto"
	"github.com/finwise/finance_tracker_app/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SnapshotKey is the well-known storage key the aggregate is persisted under.
const SnapshotKey = "financeTracker_data"

const defaultRecentLimit = 5

// LoadSource reports which initialization path the service took.
type LoadSource string

const (
	LoadedFromSnapshot LoadSource = "snapshot"
	LoadedFromSeed     LoadSource = "seed"
)

type subscriber struct {
	id string
	fn portssvc.SubscriberFunc
}

// LedgerService is the single authoritative holder of the financial dataset.
// It enforces the balance rules, persists a snapshot after every mutation and
// notifies subscribers of changes. Persistence is best-effort: storage
// failures are logged and never surface to mutation callers.
//
// Every operation runs to completion under the aggregate mutex; subscribers
// are invoked synchronously inside the mutating operation and must not call
// back into the service.
type LedgerService struct {
	mu   sync.RWMutex
	repo portsrepo.SnapshotRepository
	data *domain.Dataset

	// Opening balance per account, captured at load time. Balance minus the
	// net effect of the transactions present at load, so RecomputeBalances
	// stays exact no matter what happens afterwards.
	opening map[int]decimal.Decimal

	subMu sync.Mutex
	subs  []subscriber
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// NewLedgerService loads the persisted snapshot, falling back to the seed
// dataset when the snapshot is absent or undecodable, and persists the result
// so storage and memory agree from the start. The returned LoadSource tells
// the caller which path was taken.
func NewLedgerService(ctx context.Context, repo portsrepo.SnapshotRepository) (*LedgerService, LoadSource) {
	logger := middleware.GetLoggerFromCtx(ctx)

	source := LoadedFromSnapshot
	var data *domain.Dataset

	blob, err := repo.LoadSnapshot(ctx, SnapshotKey)
	switch {
	case err == nil:
		var ds domain.Dataset
		if jsonErr := json.Unmarshal(blob, &ds); jsonErr != nil {
			logger.Warn("Persisted snapshot is unreadable, falling back to seed data", slog.String("error", jsonErr.Error()))
		} else {
			data = &ds
		}
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Info("No persisted snapshot found, using seed data")
	default:
		logger.Error("Failed to load snapshot, using seed data", slog.String("error", err.Error()))
	}

	if data == nil {
		data = domain.SeedDataset()
		source = LoadedFromSeed
	}

	s := &LedgerService{
		repo:    repo,
		data:    data,
		opening: make(map[int]decimal.Decimal),
	}
	s.captureOpeningBalances()
	s.persist(ctx)

	logger.Info("Ledger store initialized",
		slog.String("source", string(source)),
		slog.Int("accounts", len(data.BankAccounts)),
		slog.Int("transactions", len(data.Transactions)),
	)
	return s, source
}

// captureOpeningBalances derives each account's opening balance as the current
// balance minus the net effect of the transactions loaded with it.
func (s *LedgerService) captureOpeningBalances() {
	net := make(map[int]decimal.Decimal, len(s.data.BankAccounts))
	for _, t := range s.data.Transactions {
		net[t.AccountID] = net[t.AccountID].Add(t.SignedAmount())
	}
	for _, a := range s.data.BankAccounts {
		s.opening[a.ID] = a.Balance.Sub(net[a.ID])
	}
}

// persist writes the aggregate to storage. Failures are logged and swallowed;
// the store keeps operating on the in-memory state.
func (s *LedgerService) persist(ctx context.Context) {
	logger := middleware.GetLoggerFromCtx(ctx)

	blob, err := json.Marshal(s.data)
	if err != nil {
		logger.Error("Failed to encode dataset for persistence", slog.String("error", err.Error()))
		return
	}
	if err := s.repo.SaveSnapshot(ctx, SnapshotKey, blob); err != nil {
		logger.Error("Failed to persist snapshot", slog.String("error", err.Error()))
	}
}

// notify dispatches the event to all subscribers in registration order.
// A panicking subscriber is recovered so it cannot starve later subscribers
// or the snapshot write.
func (s *LedgerService) notify(ctx context.Context, evt portssvc.Event) {
	s.subMu.Lock()
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	logger := middleware.GetLoggerFromCtx(ctx)
	for _, sub := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Subscriber panicked during notification",
						slog.String("change_type", string(evt.Type)),
						slog.Any("panic", r),
					)
				}
			}()
			sub.fn(evt)
		}()
	}
}

// Subscribe registers an observer for ledger changes and returns a disposable
// handle that deregisters it.
func (s *LedgerService) Subscribe(fn portssvc.SubscriberFunc) portssvc.Subscription {
	sub := subscriber{id: uuid.NewString(), fn: fn}

	s.subMu.Lock()
	s.subs = append(s.subs, sub)
	s.subMu.Unlock()

	return &subscription{svc: s, id: sub.id}
}

type subscription struct {
	svc  *LedgerService
	id   string
	once sync.Once
}

func (h *subscription) Cancel() {
	h.once.Do(func() {
		h.svc.subMu.Lock()
		defer h.svc.subMu.Unlock()
		for i, sub := range h.svc.subs {
			if sub.id == h.id {
				h.svc.subs = append(h.svc.subs[:i], h.svc.subs[i+1:]...)
				break
			}
		}
	})
}

// AllTransactions returns every transaction ordered by date descending.
// Equal dates keep their insertion order (newest insert first, since new
// transactions are prepended).
func (s *LedgerService) AllTransactions(ctx context.Context) []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedTransactionsLocked()
}

func (s *LedgerService) sortedTransactionsLocked() []domain.Transaction {
	out := make([]domain.Transaction, len(s.data.Transactions))
	copy(out, s.data.Transactions)
	// ISO dates compare correctly as strings.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// RecentTransactions returns the first limit transactions of the
// date-descending ordering. Non-positive limits fall back to the default of 5.
func (s *LedgerService) RecentTransactions(ctx context.Context, limit int) []domain.Transaction {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.sortedTransactionsLocked()
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// AddTransaction assigns the next id, prepends the record and applies its
// balance effect when the owning account exists. Investment transactions
// never move balances.
func (s *LedgerService) AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := req.ToTransaction()
	tx.ID = s.data.MaxTransactionID() + 1
	s.data.Transactions = append([]domain.Transaction{tx}, s.data.Transactions...)

	if tx.AffectsBalance() {
		s.applyBalance(ctx, tx.AccountID, tx.Type, tx.Amount)
	}

	s.notify(ctx, portssvc.Event{Type: portssvc.TransactionAdded, Payload: tx})
	s.persist(ctx)

	logger.Info("Transaction added",
		slog.Int("transaction_id", tx.ID),
		slog.String("type", string(tx.Type)),
		slog.Int("account_id", tx.AccountID),
	)
	created := tx
	return &created, nil
}

// UpdateTransaction merges the set fields of req over the stored record.
//
// Known limitation, kept from the shipped behavior: balances are NOT
// re-adjusted even when the patch changes amount, type or account, unlike
// add/delete. Callers that change financial fields should follow up with
// RecomputeBalances to restore the balance invariant.
func (s *LedgerService) UpdateTransaction(ctx context.Context, id int, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount != nil && !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Transactions {
		if s.data.Transactions[i].ID != id {
			continue
		}
		req.ApplyTo(&s.data.Transactions[i])
		updated := s.data.Transactions[i]

		s.notify(ctx, portssvc.Event{Type: portssvc.TransactionUpdated, Payload: updated})
		s.persist(ctx)

		middleware.GetLoggerFromCtx(ctx).Info("Transaction updated", slog.Int("transaction_id", id))
		return &updated, nil
	}
	return nil, apperrors.ErrNotFound
}

// DeleteTransaction removes the record and reverses its balance effect:
// deleting an income subtracts the amount, deleting an expense adds it back,
// deleting an investment leaves balances untouched.
func (s *LedgerService) DeleteTransaction(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Transactions {
		if s.data.Transactions[i].ID != id {
			continue
		}
		removed := s.data.Transactions[i]
		s.data.Transactions = append(s.data.Transactions[:i], s.data.Transactions[i+1:]...)

		if removed.AffectsBalance() {
			reverse := domain.Income
			if removed.Type == domain.Income {
				reverse = domain.Expense
			}
			s.applyBalance(ctx, removed.AccountID, reverse, removed.Amount)
		}

		s.notify(ctx, portssvc.Event{Type: portssvc.TransactionDeleted, Payload: removed})
		s.persist(ctx)

		middleware.GetLoggerFromCtx(ctx).Info("Transaction deleted", slog.Int("transaction_id", id))
		return nil
	}
	return apperrors.ErrNotFound
}

// applyBalance is the package-private balance primitive used by add/delete.
// Unknown accounts are ignored; income adds, expense subtracts, anything else
// leaves the balance alone. Callers hold the write lock.
func (s *LedgerService) applyBalance(ctx context.Context, accountID int, txType domain.TransactionType, amount decimal.Decimal) {
	account := s.data.AccountByID(accountID)
	if account == nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Balance update skipped for unknown account", slog.Int("account_id", accountID))
		return
	}

	switch txType {
	case domain.Income:
		account.Balance = account.Balance.Add(amount)
	case domain.Expense:
		account.Balance = account.Balance.Sub(amount)
	default:
		return
	}

	s.notify(ctx, portssvc.Event{Type: portssvc.AccountUpdated, Payload: *account})
}

// AllAccounts returns a copy of every bank account.
func (s *LedgerService) AllAccounts(ctx context.Context) []domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Account, len(s.data.BankAccounts))
	copy(out, s.data.BankAccounts)
	return out
}

// AccountByID retrieves one account; apperrors.ErrNotFound when unknown.
func (s *LedgerService) AccountByID(ctx context.Context, id int) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account := s.data.AccountByID(id)
	if account == nil {
		return nil, apperrors.ErrNotFound
	}
	copied := *account
	return &copied, nil
}

// Categories returns the full taxonomy.
func (s *LedgerService) Categories(ctx context.Context) domain.CategoryTaxonomy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Categories
}

// CategoriesByType returns one taxonomy group; unknown types yield an empty
// slice, never an error.
func (s *LedgerService) CategoriesByType(ctx context.Context, kind string) []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Categories.ByType(kind)
}

// StockPortfolio returns a copy of the user's holdings.
func (s *LedgerService) StockPortfolio(ctx context.Context) []domain.StockHolding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.StockHolding, len(s.data.StockPortfolio))
	copy(out, s.data.StockPortfolio)
	return out
}

// MonthlyStats aggregates the transactions of one YYYY-MM month. An empty
// month means the current calendar month; malformed months fail with
// ErrValidation.
func (s *LedgerService) MonthlyStats(ctx context.Context, month string) (domain.MonthlyStats, error) {
	if month == "" {
		month = time.Now().Format("2006-01")
	} else if _, err := time.Parse("2006-01", month); err != nil {
		return domain.MonthlyStats{}, fmt.Errorf("%w: month must be YYYY-MM", apperrors.ErrValidation)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.MonthlyStats{Month: month}
	for _, t := range s.data.Transactions {
		if !strings.HasPrefix(t.Date, month) {
			continue
		}
		stats.TransactionCount++
		switch t.Type {
		case domain.Income:
			stats.Income = stats.Income.Add(t.Amount)
		case domain.Expense:
			stats.Expenses = stats.Expenses.Add(t.Amount)
		case domain.Investment:
			stats.Investments = stats.Investments.Add(t.Amount)
		}
	}
	stats.Savings = stats.Income.Sub(stats.Expenses)
	stats.NetAmount = stats.Savings.Sub(stats.Investments)
	return stats, nil
}

// TotalBankBalance sums balances over all non-credit-card accounts.
func (s *LedgerService) TotalBankBalance(ctx context.Context) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, a := range s.data.BankAccounts {
		if a.CountsTowardBankBalance() {
			total = total.Add(a.Balance)
		}
	}
	return total
}

// PortfolioValue returns the market value of all holdings.
func (s *LedgerService) PortfolioValue(ctx context.Context) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.portfolioValueLocked()
}

func (s *LedgerService) portfolioValueLocked() decimal.Decimal {
	value := decimal.Zero
	for _, h := range s.data.StockPortfolio {
		value = value.Add(h.MarketValue())
	}
	return value
}

// PortfolioGainLoss returns the absolute and percentage gain/loss versus the
// total invested cost. Percentage is zero when the cost is zero.
func (s *LedgerService) PortfolioGainLoss(ctx context.Context) domain.PortfolioGainLoss {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cost := decimal.Zero
	for _, h := range s.data.StockPortfolio {
		cost = cost.Add(h.CostBasis())
	}
	amount := s.portfolioValueLocked().Sub(cost)

	percentage := decimal.Zero
	if cost.IsPositive() {
		percentage = amount.Div(cost).Mul(decimal.NewFromInt(100))
	}
	return domain.PortfolioGainLoss{Amount: amount, Percentage: percentage}
}

// ResetData discards the persisted snapshot, reloads the seed dataset in
// place and persists it again.
func (s *LedgerService) ResetData(ctx context.Context) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.DeleteSnapshot(ctx, SnapshotKey); err != nil {
		logger.Error("Failed to delete snapshot during reset", slog.String("error", err.Error()))
	}

	s.data = domain.SeedDataset()
	s.opening = make(map[int]decimal.Decimal)
	s.captureOpeningBalances()
	s.persist(ctx)

	s.notify(ctx, portssvc.Event{Type: portssvc.DataReset})
	logger.Info("Ledger store reset to seed data")
	return nil
}

// RecomputeBalances rebuilds every account balance from its opening balance
// plus the net effect of the current income/expense transactions. This is the
// follow-up operation for updates that changed financial fields.
func (s *LedgerService) RecomputeBalances(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	net := make(map[int]decimal.Decimal, len(s.data.BankAccounts))
	for _, t := range s.data.Transactions {
		net[t.AccountID] = net[t.AccountID].Add(t.SignedAmount())
	}

	changed := 0
	for i := range s.data.BankAccounts {
		account := &s.data.BankAccounts[i]
		want := s.opening[account.ID].Add(net[account.ID])
		if account.Balance.Equal(want) {
			continue
		}
		account.Balance = want
		changed++
		s.notify(ctx, portssvc.Event{Type: portssvc.AccountUpdated, Payload: *account})
	}
	s.persist(ctx)

	middleware.GetLoggerFromCtx(ctx).Info("Account balances recomputed", slog.Int("accounts_changed", changed))
	return nil
}

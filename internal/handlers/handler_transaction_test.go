package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finwise/finance_tracker_app/internal/apperrors"
	"github.com/finwise/finance_tracker_app/internal/core/domain"
	portssvc "github.com/finwise/finance_tracker_app/internal/core/ports/services"
	"github.com/finwise/finance_tracker_app/internal/dto"
	"github.com/finwise/finance_tracker_app/internal/handlers"
	"github.com/finwise/finance_tracker_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) AllTransactions(ctx context.Context) []domain.Transaction {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Transaction)
}

func (m *MockLedgerService) RecentTransactions(ctx context.Context, limit int) []domain.Transaction {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Transaction)
}

func (m *MockLedgerService) AllAccounts(ctx context.Context) []domain.Account {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Account)
}

func (m *MockLedgerService) AccountByID(ctx context.Context, id int) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerService) Categories(ctx context.Context) domain.CategoryTaxonomy {
	args := m.Called(ctx)
	return args.Get(0).(domain.CategoryTaxonomy)
}

func (m *MockLedgerService) CategoriesByType(ctx context.Context, kind string) []domain.Category {
	args := m.Called(ctx, kind)
	return args.Get(0).([]domain.Category)
}

func (m *MockLedgerService) StockPortfolio(ctx context.Context) []domain.StockHolding {
	args := m.Called(ctx)
	return args.Get(0).([]domain.StockHolding)
}

func (m *MockLedgerService) AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) UpdateTransaction(ctx context.Context, id int, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) DeleteTransaction(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLedgerService) ResetData(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerService) RecomputeBalances(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerService) MonthlyStats(ctx context.Context, month string) (domain.MonthlyStats, error) {
	args := m.Called(ctx, month)
	return args.Get(0).(domain.MonthlyStats), args.Error(1)
}

func (m *MockLedgerService) TotalBankBalance(ctx context.Context) decimal.Decimal {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal)
}

func (m *MockLedgerService) PortfolioValue(ctx context.Context) decimal.Decimal {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal)
}

func (m *MockLedgerService) PortfolioGainLoss(ctx context.Context) domain.PortfolioGainLoss {
	args := m.Called(ctx)
	return args.Get(0).(domain.PortfolioGainLoss)
}

func (m *MockLedgerService) Subscribe(fn portssvc.SubscriberFunc) portssvc.Subscription {
	args := m.Called(fn)
	return args.Get(0).(portssvc.Subscription)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockLedger *MockLedgerService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockLedger = new(MockLedgerService)
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{}, suite.mockLedger)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	created := &domain.Transaction{
		ID:        11,
		Type:      domain.Expense,
		Amount:    decimal.NewFromInt(500),
		Category:  "Food",
		Date:      "2024-08-25",
		AccountID: 1,
	}

	suite.mockLedger.On("AddTransaction",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
			return req.Type == domain.Expense && req.AccountID == 1
		}),
	).Return(created, nil).Once()

	body := `{"type":"expense","amount":500,"category":"Food","date":"2024-08-25","accountId":1}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(11, resp.ID)
	suite.Equal(domain.Expense, resp.Type)

	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_InvalidType() {
	body := `{"type":"transfer","amount":500,"category":"Food","date":"2024-08-25","accountId":1}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "AddTransaction")
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_InvalidDate() {
	body := `{"type":"expense","amount":500,"category":"Food","date":"25/08/2024","accountId":1}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "AddTransaction")
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ValidationError() {
	suite.mockLedger.On("AddTransaction", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrValidation).Once()

	body := `{"type":"expense","amount":500,"category":"Food","date":"2024-08-25","accountId":1}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions() {
	suite.mockLedger.On("AllTransactions", mock.Anything).
		Return([]domain.Transaction{
			{ID: 2, Type: domain.Expense, Amount: decimal.NewFromInt(100), Date: "2024-08-22"},
			{ID: 1, Type: domain.Income, Amount: decimal.NewFromInt(200), Date: "2024-08-01"},
		}).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListTransactionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 2)
	suite.Equal(2, resp.Transactions[0].ID)

	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestRecentTransactions_DefaultLimit() {
	suite.mockLedger.On("RecentTransactions", mock.Anything, 5).
		Return([]domain.Transaction{}).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/recent", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_NotFound() {
	suite.mockLedger.On("UpdateTransaction", mock.Anything, 404, mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	body := `{"description":"nope"}`
	req, _ := http.NewRequest(http.MethodPatch, "/api/v1/transactions/404", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_BadID() {
	req, _ := http.NewRequest(http.MethodPatch, "/api/v1/transactions/abc", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "UpdateTransaction")
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_Success() {
	suite.mockLedger.On("DeleteTransaction", mock.Anything, 3).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/transactions/3", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NotFound() {
	suite.mockLedger.On("DeleteTransaction", mock.Anything, 404).
		Return(apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/transactions/404", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

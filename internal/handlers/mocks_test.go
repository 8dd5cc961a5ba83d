package handlers_test

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) GetPaginatedBudgets(ctx context.Context, userID string, req *dto.PaginationRequest) (domain.Paginated[domain.BudgetDTO], error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(domain.Paginated[domain.BudgetDTO]), args.Error(1)
}
func (m *MockBudgetService) GetBudgetsSummary(ctx context.Context, userID string, req *dto.SummaryRequest) (domain.BudgetSummary, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(domain.BudgetSummary), args.Error(1)
}
func (m *MockBudgetService) GetBudgetUsedColors(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockBudgetService) CreateBudget(ctx context.Context, userID string, req *dto.CreateBudgetRequest) (*domain.BudgetDTO, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetDTO), args.Error(1)
}
func (m *MockBudgetService) UpdateBudget(ctx context.Context, userID string, req *dto.UpdateBudgetRequest) (*domain.BudgetDTO, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetDTO), args.Error(1)
}
func (m *MockBudgetService) DeleteBudget(ctx context.Context, userID string, req *dto.DeleteBudgetRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}

// Ensure mock implements the interface
var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetPaginatedTransactions(ctx context.Context, userID string, req *dto.TransactionPaginationRequest) (domain.Paginated[domain.TransactionDTO], error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(domain.Paginated[domain.TransactionDTO]), args.Error(1)
}
func (m *MockTransactionService) GetTransactionsSummary(ctx context.Context, userID string) (domain.TransactionsSummary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.TransactionsSummary), args.Error(1)
}
func (m *MockTransactionService) CreateTransaction(ctx context.Context, userID string, req *dto.CreateTransactionRequest) (*domain.TransactionDTO, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionDTO), args.Error(1)
}
func (m *MockTransactionService) UpdateTransaction(ctx context.Context, userID string, req *dto.UpdateTransactionRequest) (*domain.TransactionDTO, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionDTO), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, userID string, req *dto.DeleteTransactionRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock RecurringBillService ---
type MockRecurringBillService struct {
	mock.Mock
}

func (m *MockRecurringBillService) GetPaginatedRecurringBills(ctx context.Context, userID string, req *dto.PaginationRequest) (domain.Paginated[domain.RecurringBillDTO], error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(domain.Paginated[domain.RecurringBillDTO]), args.Error(1)
}
func (m *MockRecurringBillService) GetRecurringBillsSummary(ctx context.Context, userID string) (domain.RecurringBillsSummary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.RecurringBillsSummary), args.Error(1)
}
func (m *MockRecurringBillService) CreateRecurringBill(ctx context.Context, userID string, req *dto.CreateRecurringBillRequest) (*domain.RecurringBillDTO, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringBillDTO), args.Error(1)
}
func (m *MockRecurringBillService) DeleteRecurringBill(ctx context.Context, userID string, req *dto.DeleteRecurringBillRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}
func (m *MockRecurringBillService) PayRecurringBill(ctx context.Context, userID string, req *dto.PayRecurringBillRequest) (*dto.PayRecurringBillResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PayRecurringBillResponse), args.Error(1)
}

var _ portssvc.RecurringBillSvcFacade = (*MockRecurringBillService)(nil)

// --- Mock PotService ---
type MockPotService struct {
	mock.Mock
}

func (m *MockPotService) GetPaginatedPots(ctx context.Context, userID string, req *dto.PaginationRequest) (domain.Paginated[domain.PotDTO], error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(domain.Paginated[domain.PotDTO]), args.Error(1)
}
func (m *MockPotService) GetPotsSummary(ctx context.Context, userID string, req *dto.SummaryRequest) (domain.PotsSummary, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(domain.PotsSummary), args.Error(1)
}
func (m *MockPotService) GetPotUsedColors(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockPotService) CreatePot(ctx context.Context, userID string, req *dto.CreatePotRequest) (*domain.PotDTO, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PotDTO), args.Error(1)
}
func (m *MockPotService) UpdatePot(ctx context.Context, userID string, req *dto.UpdatePotRequest) (*domain.PotDTO, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PotDTO), args.Error(1)
}
func (m *MockPotService) DeletePot(ctx context.Context, userID string, req *dto.DeletePotRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}
func (m *MockPotService) AddMoneyToPot(ctx context.Context, userID string, req *dto.PotMoneyRequest) (*domain.PotDTO, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PotDTO), args.Error(1)
}
func (m *MockPotService) WithdrawMoneyFromPot(ctx context.Context, userID string, req *dto.PotMoneyRequest) (*domain.PotDTO, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PotDTO), args.Error(1)
}

var _ portssvc.PotSvcFacade = (*MockPotService)(nil)

package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) GetOneByID(ctx context.Context, userID string, budgetID string) (*domain.BudgetDTO, error) {
	args := m.Called(ctx, userID, budgetID)
	var budget *domain.BudgetDTO
	if args.Get(0) != nil {
		budget = args.Get(0).(*domain.BudgetDTO)
	}
	return budget, args.Error(1)
}

func (m *MockBudgetRepository) GetOneByName(ctx context.Context, userID string, name string) (*domain.BudgetDTO, error) {
	args := m.Called(ctx, userID, name)
	var budget *domain.BudgetDTO
	if args.Get(0) != nil {
		budget = args.Get(0).(*domain.BudgetDTO)
	}
	return budget, args.Error(1)
}

func (m *MockBudgetRepository) GetPaginated(ctx context.Context, userID string, params domain.PaginationParams) (domain.Paginated[domain.BudgetDTO], error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).(domain.Paginated[domain.BudgetDTO]), args.Error(1)
}

func (m *MockBudgetRepository) GetSummary(ctx context.Context, userID string, params domain.SummaryParams) (domain.BudgetSummary, error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).(domain.BudgetSummary), args.Error(1)
}

func (m *MockBudgetRepository) GetUsedColors(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	var colors []string
	if args.Get(0) != nil {
		colors = args.Get(0).([]string)
	}
	return colors, args.Error(1)
}

func (m *MockBudgetRepository) GetCount(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBudgetRepository) CreateOne(ctx context.Context, userID string, budget domain.BudgetDTO) (domain.BudgetDTO, error) {
	args := m.Called(ctx, userID, budget)
	return args.Get(0).(domain.BudgetDTO), args.Error(1)
}

func (m *MockBudgetRepository) UpdateOne(ctx context.Context, userID string, budget domain.BudgetDTO) (domain.BudgetDTO, error) {
	args := m.Called(ctx, userID, budget)
	return args.Get(0).(domain.BudgetDTO), args.Error(1)
}

func (m *MockBudgetRepository) DeleteOne(ctx context.Context, userID string, budgetID string) error {
	args := m.Called(ctx, userID, budgetID)
	return args.Error(0)
}

// --- Mock IncomeRepository ---
type MockIncomeRepository struct {
	mock.Mock
}

func (m *MockIncomeRepository) GetOneByID(ctx context.Context, userID string, incomeID string) (*domain.IncomeDTO, error) {
	args := m.Called(ctx, userID, incomeID)
	var income *domain.IncomeDTO
	if args.Get(0) != nil {
		income = args.Get(0).(*domain.IncomeDTO)
	}
	return income, args.Error(1)
}

func (m *MockIncomeRepository) GetOneByName(ctx context.Context, userID string, name string) (*domain.IncomeDTO, error) {
	args := m.Called(ctx, userID, name)
	var income *domain.IncomeDTO
	if args.Get(0) != nil {
		income = args.Get(0).(*domain.IncomeDTO)
	}
	return income, args.Error(1)
}

func (m *MockIncomeRepository) GetPaginated(ctx context.Context, userID string, params domain.PaginationParams) (domain.Paginated[domain.IncomeDTO], error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).(domain.Paginated[domain.IncomeDTO]), args.Error(1)
}

func (m *MockIncomeRepository) GetSummary(ctx context.Context, userID string, params domain.SummaryParams) (domain.IncomesSummary, error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).(domain.IncomesSummary), args.Error(1)
}

func (m *MockIncomeRepository) GetCount(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIncomeRepository) GetUsedColors(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	var colors []string
	if args.Get(0) != nil {
		colors = args.Get(0).([]string)
	}
	return colors, args.Error(1)
}

func (m *MockIncomeRepository) CreateOne(ctx context.Context, userID string, income domain.IncomeDTO) (domain.IncomeDTO, error) {
	args := m.Called(ctx, userID, income)
	return args.Get(0).(domain.IncomeDTO), args.Error(1)
}

func (m *MockIncomeRepository) UpdateOne(ctx context.Context, userID string, income domain.IncomeDTO) (domain.IncomeDTO, error) {
	args := m.Called(ctx, userID, income)
	return args.Get(0).(domain.IncomeDTO), args.Error(1)
}

func (m *MockIncomeRepository) DeleteOne(ctx context.Context, userID string, incomeID string) error {
	args := m.Called(ctx, userID, incomeID)
	return args.Error(0)
}

// --- Mock PotRepository ---
type MockPotRepository struct {
	mock.Mock
}

func (m *MockPotRepository) GetOneByID(ctx context.Context, userID string, potID string) (*domain.PotDTO, error) {
	args := m.Called(ctx, userID, potID)
	var pot *domain.PotDTO
	if args.Get(0) != nil {
		pot = args.Get(0).(*domain.PotDTO)
	}
	return pot, args.Error(1)
}

func (m *MockPotRepository) GetOneByName(ctx context.Context, userID string, name string) (*domain.PotDTO, error) {
	args := m.Called(ctx, userID, name)
	var pot *domain.PotDTO
	if args.Get(0) != nil {
		pot = args.Get(0).(*domain.PotDTO)
	}
	return pot, args.Error(1)
}

func (m *MockPotRepository) GetPaginated(ctx context.Context, userID string, params domain.PaginationParams) (domain.Paginated[domain.PotDTO], error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).(domain.Paginated[domain.PotDTO]), args.Error(1)
}

func (m *MockPotRepository) GetSummary(ctx context.Context, userID string, params domain.SummaryParams) (domain.PotsSummary, error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).(domain.PotsSummary), args.Error(1)
}

func (m *MockPotRepository) GetUsedColors(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	var colors []string
	if args.Get(0) != nil {
		colors = args.Get(0).([]string)
	}
	return colors, args.Error(1)
}

func (m *MockPotRepository) CreateOne(ctx context.Context, userID string, pot domain.PotDTO) (domain.PotDTO, error) {
	args := m.Called(ctx, userID, pot)
	return args.Get(0).(domain.PotDTO), args.Error(1)
}

func (m *MockPotRepository) UpdateOne(ctx context.Context, userID string, pot domain.PotDTO) (domain.PotDTO, error) {
	args := m.Called(ctx, userID, pot)
	return args.Get(0).(domain.PotDTO), args.Error(1)
}

func (m *MockPotRepository) DeleteOne(ctx context.Context, userID string, potID string) error {
	args := m.Called(ctx, userID, potID)
	return args.Error(0)
}

func (m *MockPotRepository) AddToTotalSaved(ctx context.Context, userID string, potID string, amount decimal.Decimal) (domain.PotDTO, error) {
	args := m.Called(ctx, userID, potID, amount)
	return args.Get(0).(domain.PotDTO), args.Error(1)
}

func (m *MockPotRepository) WithdrawMoney(ctx context.Context, userID string, potID string, amount decimal.Decimal) (domain.PotDTO, error) {
	args := m.Called(ctx, userID, potID, amount)
	return args.Get(0).(domain.PotDTO), args.Error(1)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) GetOneByID(ctx context.Context, userID string, transactionID string) (*domain.TransactionDTO, error) {
	args := m.Called(ctx, userID, transactionID)
	var tx *domain.TransactionDTO
	if args.Get(0) != nil {
		tx = args.Get(0).(*domain.TransactionDTO)
	}
	return tx, args.Error(1)
}

func (m *MockTransactionRepository) GetPaginated(ctx context.Context, userID string, params domain.TransactionPaginationParams) (domain.Paginated[domain.TransactionDTO], error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).(domain.Paginated[domain.TransactionDTO]), args.Error(1)
}

func (m *MockTransactionRepository) GetSummary(ctx context.Context, userID string) (domain.TransactionsSummary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.TransactionsSummary), args.Error(1)
}

func (m *MockTransactionRepository) CreateOne(ctx context.Context, userID string, transaction domain.TransactionDTO) (domain.TransactionDTO, error) {
	args := m.Called(ctx, userID, transaction)
	return args.Get(0).(domain.TransactionDTO), args.Error(1)
}

func (m *MockTransactionRepository) UpdateOne(ctx context.Context, userID string, transaction domain.TransactionDTO, categoryChanged bool) (domain.TransactionDTO, error) {
	args := m.Called(ctx, userID, transaction, categoryChanged)
	return args.Get(0).(domain.TransactionDTO), args.Error(1)
}

func (m *MockTransactionRepository) DeleteOne(ctx context.Context, userID string, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetPaginated(ctx context.Context, userID string, params domain.PaginationParams) (domain.Paginated[domain.CategoryDTO], error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).(domain.Paginated[domain.CategoryDTO]), args.Error(1)
}

func (m *MockCategoryRepository) GetOneByID(ctx context.Context, userID string, categoryID string) (*domain.CategoryDTO, error) {
	args := m.Called(ctx, userID, categoryID)
	var category *domain.CategoryDTO
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.CategoryDTO)
	}
	return category, args.Error(1)
}

// --- Mock RecurringBillRepository ---
type MockRecurringBillRepository struct {
	mock.Mock
}

func (m *MockRecurringBillRepository) GetOneByID(ctx context.Context, userID string, billID string) (*domain.RecurringBillDTO, error) {
	args := m.Called(ctx, userID, billID)
	var bill *domain.RecurringBillDTO
	if args.Get(0) != nil {
		bill = args.Get(0).(*domain.RecurringBillDTO)
	}
	return bill, args.Error(1)
}

func (m *MockRecurringBillRepository) GetPaginated(ctx context.Context, userID string, params domain.PaginationParams) (domain.Paginated[domain.RecurringBillDTO], error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).(domain.Paginated[domain.RecurringBillDTO]), args.Error(1)
}

func (m *MockRecurringBillRepository) GetSummary(ctx context.Context, userID string) (domain.RecurringBillsSummary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.RecurringBillsSummary), args.Error(1)
}

func (m *MockRecurringBillRepository) CreateOne(ctx context.Context, userID string, bill domain.RecurringBillDTO) (domain.RecurringBillDTO, error) {
	args := m.Called(ctx, userID, bill)
	return args.Get(0).(domain.RecurringBillDTO), args.Error(1)
}

func (m *MockRecurringBillRepository) DeleteOne(ctx context.Context, userID string, billID string) error {
	args := m.Called(ctx, userID, billID)
	return args.Error(0)
}

func (m *MockRecurringBillRepository) RecordPaymentAndCreateTransaction(ctx context.Context, userID string, bill domain.RecurringBillDTO, payment domain.RecurringBillPayment) (domain.RecurringBillPayment, error) {
	args := m.Called(ctx, userID, bill, payment)
	return args.Get(0).(domain.RecurringBillPayment), args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetOneByID(ctx context.Context, userID string) (*domain.UserDTO, error) {
	args := m.Called(ctx, userID)
	var user *domain.UserDTO
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.UserDTO)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpsertOne(ctx context.Context, user domain.UserDTO) (domain.UserDTO, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.UserDTO), args.Error(1)
}

// --- Mock AuthRepository ---
type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) VerifyToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *MockAuthRepository) IssueToken(ctx context.Context, userID string) (string, time.Time, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

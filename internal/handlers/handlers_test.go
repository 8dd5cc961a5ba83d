package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/handlers"
	"github.com/SscSPs/personal_finance_app/internal/middleware"
	"github.com/SscSPs/personal_finance_app/internal/repositories/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	authRepo     *auth.JWTRepository
	budgets      *MockBudgetService
	transactions *MockTransactionService
	bills        *MockRecurringBillService
	pots         *MockPotService
	userID       string
	token        string
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.authRepo = auth.NewJWTRepository("test-secret-key-that-is-long-enough", "pf-test", time.Hour)

	suite.budgets = new(MockBudgetService)
	suite.transactions = new(MockTransactionService)
	suite.bills = new(MockRecurringBillService)
	suite.pots = new(MockPotService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.authRepo))
	handlers.RegisterBudgetRoutes(v1, suite.budgets)
	handlers.RegisterTransactionRoutes(v1, suite.transactions)
	handlers.RegisterRecurringBillRoutes(v1, suite.bills)
	handlers.RegisterPotRoutes(v1, suite.pots)

	suite.userID = uuid.NewString()
	token, _, err := suite.authRepo.IssueToken(suite.T().Context(), suite.userID)
	suite.Require().NoError(err)
	suite.token = token
}

func (suite *HandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decodeError(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/budgets", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.budgets.AssertNotCalled(suite.T(), "GetPaginatedBudgets", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestInvalidToken() {
	suite.token = "not-a-token"
	w := suite.do(http.MethodGet, "/api/v1/budgets", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Invalid token", suite.decodeError(w).Error)
}

func (suite *HandlerTestSuite) TestListBudgets_BindsQuery() {
	page := domain.NewPaginated([]domain.BudgetDTO{{ID: "b1", Name: "Food"}}, 1, domain.PaginationParams{Page: 2, PageSize: 5})
	suite.budgets.On("GetPaginatedBudgets", mock.Anything, suite.userID, mock.MatchedBy(func(r *dto.PaginationRequest) bool {
		return r.Page == 2 && r.PageSize == 5 && r.Search == "fo" && r.SortBy == "a-z"
	})).Return(page, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/budgets?page=2&pageSize=5&search=fo&sortBy=a-z", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got domain.Paginated[domain.BudgetDTO]
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got.Items, 1)
	suite.Equal(2, got.Page)
	suite.budgets.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateBudget_Created() {
	created := &domain.BudgetDTO{ID: "b1", Name: "Food", ColorTag: "#277C78", MaximumSpending: decimal.NewFromInt(500)}
	suite.budgets.On("CreateBudget", mock.Anything, suite.userID, mock.MatchedBy(func(r *dto.CreateBudgetRequest) bool {
		return r.Name == "Food" && r.MaximumSpending.Equal(decimal.NewFromInt(500))
	})).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/budgets", map[string]any{
		"name": "Food", "maximumSpending": 500, "colorTag": "#277C78",
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.budgets.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateBudget_ErrorMapping() {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"conflict", apperrors.NewConflictError(`Budget with name "Food" already exists`), http.StatusConflict, `Budget with name "Food" already exists`},
		{"domain rule", apperrors.NewDomainValidationError("Invalid color tag"), http.StatusBadRequest, "Invalid color tag"},
		{"server error", assert.AnError, http.StatusInternalServerError, "Failed to create budget"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.budgets.On("CreateBudget", mock.Anything, suite.userID, mock.Anything).Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/budgets", map[string]any{"name": "Food", "maximumSpending": 1, "colorTag": "#277C78"})

			suite.Equal(tt.status, w.Code)
			resp := suite.decodeError(w)
			suite.Equal(tt.msg, resp.Error)
			suite.Equal(tt.status, resp.Code)
		})
	}
}

func (suite *HandlerTestSuite) TestCreateBudget_ValidationFields() {
	verr := apperrors.NewValidationError("Validation failed", map[string]string{"name": "is required"})
	suite.budgets.On("CreateBudget", mock.Anything, suite.userID, mock.Anything).Return(nil, verr).Once()

	w := suite.do(http.MethodPost, "/api/v1/budgets", map[string]any{"maximumSpending": 1, "colorTag": "#277C78"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(map[string]string{"name": "is required"}, suite.decodeError(w).ValidationErrors)
}

func (suite *HandlerTestSuite) TestCreateBudget_MalformedBody() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/budgets", bytes.NewBufferString("{"))
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.budgets.AssertNotCalled(suite.T(), "CreateBudget", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestUpdateBudget_TakesIDFromPath() {
	updated := &domain.BudgetDTO{ID: "b1", Name: "Groceries"}
	suite.budgets.On("UpdateBudget", mock.Anything, suite.userID, mock.MatchedBy(func(r *dto.UpdateBudgetRequest) bool {
		return r.BudgetID == "b1" && r.Data.Name != nil && *r.Data.Name == "Groceries" && r.Data.ColorTag == nil
	})).Return(updated, nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/budgets/b1", map[string]any{"name": "Groceries"})

	suite.Equal(http.StatusOK, w.Code)
	suite.budgets.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestDeleteBudget_NotFound() {
	suite.budgets.On("DeleteBudget", mock.Anything, suite.userID, &dto.DeleteBudgetRequest{BudgetID: "missing"}).
		Return(apperrors.NewNotFoundError("Budget not found")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/budgets/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Budget not found", suite.decodeError(w).Error)
}

func (suite *HandlerTestSuite) TestUsedColors_EmptyIsArray() {
	suite.budgets.On("GetBudgetUsedColors", mock.Anything, suite.userID).Return(nil, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/budgets/used-colors", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"colors":[]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestListTransactions_CategoryFilter() {
	suite.transactions.On("GetPaginatedTransactions", mock.Anything, suite.userID, mock.MatchedBy(func(r *dto.TransactionPaginationRequest) bool {
		return r.CategoryID == "bills" && r.SortBy == "highest"
	})).Return(domain.NewPaginated[domain.TransactionDTO](nil, 0, domain.PaginationParams{Page: 1, PageSize: 10}), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions?categoryId=bills&sortBy=highest", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.transactions.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestDeleteTransaction_NoContent() {
	suite.transactions.On("DeleteTransaction", mock.Anything, suite.userID, &dto.DeleteTransactionRequest{TransactionID: "t1"}).
		Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/transactions/t1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.transactions.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestPayRecurringBill_EmptyBody() {
	resp := &dto.PayRecurringBillResponse{TransactionID: "t1"}
	suite.bills.On("PayRecurringBill", mock.Anything, suite.userID, mock.MatchedBy(func(r *dto.PayRecurringBillRequest) bool {
		return r.RecurringBillID == "bill-1" && r.Amount == nil && r.PaidAt == nil
	})).Return(resp, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/recurring-bills/bill-1/pay", nil)

	suite.Equal(http.StatusCreated, w.Code)
	var got dto.PayRecurringBillResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("t1", got.TransactionID)
}

func (suite *HandlerTestSuite) TestPayRecurringBill_WithAmount() {
	suite.bills.On("PayRecurringBill", mock.Anything, suite.userID, mock.MatchedBy(func(r *dto.PayRecurringBillRequest) bool {
		return r.Amount != nil && r.Amount.Equal(decimal.RequireFromString("12.50"))
	})).Return(&dto.PayRecurringBillResponse{}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/recurring-bills/bill-1/pay", map[string]any{"amount": "12.50"})

	suite.Equal(http.StatusCreated, w.Code)
	suite.bills.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestWithdrawMoney_InsufficientFunds() {
	suite.pots.On("WithdrawMoneyFromPot", mock.Anything, suite.userID, mock.MatchedBy(func(r *dto.PotMoneyRequest) bool {
		return r.PotID == "p1" && r.Amount.Equal(decimal.NewFromInt(50))
	})).Return(nil, apperrors.NewDomainValidationError("Insufficient funds in pot")).Once()

	w := suite.do(http.MethodPost, "/api/v1/pots/p1/withdraw", map[string]any{"amount": 50})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Insufficient funds in pot", suite.decodeError(w).Error)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

package services

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/dto"
)

// Every service method takes the authenticated caller id. An empty id fails
// with *apperrors.AuthError before anything else runs, and a nil request is
// treated as an empty one.

// BudgetReaderSvc defines read operations for budgets
type BudgetReaderSvc interface {
	GetPaginatedBudgets(ctx context.Context, userID string, req *dto.PaginationRequest) (domain.Paginated[domain.BudgetDTO], error)
	GetBudgetsSummary(ctx context.Context, userID string, req *dto.SummaryRequest) (domain.BudgetSummary, error)
	GetBudgetUsedColors(ctx context.Context, userID string) ([]string, error)
}

// BudgetWriterSvc defines write operations for budgets
type BudgetWriterSvc interface {
	// CreateBudget rejects a name already used by another budget of the caller.
	CreateBudget(ctx context.Context, userID string, req *dto.CreateBudgetRequest) (*domain.BudgetDTO, error)
	UpdateBudget(ctx context.Context, userID string, req *dto.UpdateBudgetRequest) (*domain.BudgetDTO, error)
	DeleteBudget(ctx context.Context, userID string, req *dto.DeleteBudgetRequest) error
}

// BudgetSvcFacade combines all budget-related service interfaces
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}

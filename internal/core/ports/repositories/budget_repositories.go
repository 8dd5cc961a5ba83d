package repositories

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
)

// BudgetReader defines read operations for budgets.
// Lookups of a single budget return apperrors.ErrNotFound when it does not exist.
type BudgetReader interface {
	GetOneByID(ctx context.Context, userID string, budgetID string) (*domain.BudgetDTO, error)

	// GetOneByName matches the trimmed name exactly.
	GetOneByName(ctx context.Context, userID string, name string) (*domain.BudgetDTO, error)

	GetPaginated(ctx context.Context, userID string, params domain.PaginationParams) (domain.Paginated[domain.BudgetDTO], error)

	// GetSummary returns every budget with its spending for the current month.
	GetSummary(ctx context.Context, userID string, params domain.SummaryParams) (domain.BudgetSummary, error)

	GetUsedColors(ctx context.Context, userID string) ([]string, error)
	GetCount(ctx context.Context, userID string) (int64, error)
}

// BudgetWriter defines write operations for budgets.
type BudgetWriter interface {
	CreateOne(ctx context.Context, userID string, budget domain.BudgetDTO) (domain.BudgetDTO, error)
	UpdateOne(ctx context.Context, userID string, budget domain.BudgetDTO) (domain.BudgetDTO, error)
	DeleteOne(ctx context.Context, userID string, budgetID string) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}

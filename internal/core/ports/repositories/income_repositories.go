package repositories

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
)

// IncomeReader defines read operations for income sources
type IncomeReader interface {
	GetOneByID(ctx context.Context, userID string, incomeID string) (*domain.IncomeDTO, error)
	GetOneByName(ctx context.Context, userID string, name string) (*domain.IncomeDTO, error)
	GetPaginated(ctx context.Context, userID string, params domain.PaginationParams) (domain.Paginated[domain.IncomeDTO], error)

	// GetSummary totals the income transactions of each source.
	GetSummary(ctx context.Context, userID string, params domain.SummaryParams) (domain.IncomesSummary, error)

	GetCount(ctx context.Context, userID string) (int64, error)
	GetUsedColors(ctx context.Context, userID string) ([]string, error)
}

// IncomeWriter defines write operations for income sources
type IncomeWriter interface {
	CreateOne(ctx context.Context, userID string, income domain.IncomeDTO) (domain.IncomeDTO, error)
	UpdateOne(ctx context.Context, userID string, income domain.IncomeDTO) (domain.IncomeDTO, error)
	DeleteOne(ctx context.Context, userID string, incomeID string) error
}

type IncomeRepositoryFacade interface {
	IncomeReader
	IncomeWriter
}

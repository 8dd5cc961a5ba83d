package repositories

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PotReader defines read operations for savings pots
type PotReader interface {
	GetOneByID(ctx context.Context, userID string, potID string) (*domain.PotDTO, error)
	GetOneByName(ctx context.Context, userID string, name string) (*domain.PotDTO, error)
	GetPaginated(ctx context.Context, userID string, params domain.PaginationParams) (domain.Paginated[domain.PotDTO], error)
	GetSummary(ctx context.Context, userID string, params domain.SummaryParams) (domain.PotsSummary, error)
	GetUsedColors(ctx context.Context, userID string) ([]string, error)
}

// PotWriter defines write operations for savings pots
type PotWriter interface {
	CreateOne(ctx context.Context, userID string, pot domain.PotDTO) (domain.PotDTO, error)
	UpdateOne(ctx context.Context, userID string, pot domain.PotDTO) (domain.PotDTO, error)
	DeleteOne(ctx context.Context, userID string, potID string) error
}

// PotBalanceManager moves money in and out of a pot. Implementations apply
// the change atomically and must not let the total go negative.
type PotBalanceManager interface {
	AddToTotalSaved(ctx context.Context, userID string, potID string, amount decimal.Decimal) (domain.PotDTO, error)
	WithdrawMoney(ctx context.Context, userID string, potID string, amount decimal.Decimal) (domain.PotDTO, error)
}

type PotRepositoryFacade interface {
	PotReader
	PotWriter
	PotBalanceManager
}

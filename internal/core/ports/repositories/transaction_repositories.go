package repositories

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
)

// TransactionReader defines read operations for transactions
type TransactionReader interface {
	GetOneByID(ctx context.Context, userID string, transactionID string) (*domain.TransactionDTO, error)
	GetPaginated(ctx context.Context, userID string, params domain.TransactionPaginationParams) (domain.Paginated[domain.TransactionDTO], error)
	GetSummary(ctx context.Context, userID string) (domain.TransactionsSummary, error)
}

// TransactionWriter defines write operations for transactions.
// The category snapshot passed in only needs a valid id; the stored name and
// colour are resolved from the category itself.
type TransactionWriter interface {
	CreateOne(ctx context.Context, userID string, transaction domain.TransactionDTO) (domain.TransactionDTO, error)

	// UpdateOne re-resolves the category snapshot when categoryChanged is set.
	UpdateOne(ctx context.Context, userID string, transaction domain.TransactionDTO, categoryChanged bool) (domain.TransactionDTO, error)

	DeleteOne(ctx context.Context, userID string, transactionID string) error
}

type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

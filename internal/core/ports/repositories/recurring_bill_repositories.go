package repositories

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
)

// RecurringBillReader defines read operations for recurring bills
type RecurringBillReader interface {
	GetOneByID(ctx context.Context, userID string, billID string) (*domain.RecurringBillDTO, error)
	GetPaginated(ctx context.Context, userID string, params domain.PaginationParams) (domain.Paginated[domain.RecurringBillDTO], error)
	GetSummary(ctx context.Context, userID string) (domain.RecurringBillsSummary, error)
}

// RecurringBillWriter defines write operations for recurring bills
type RecurringBillWriter interface {
	CreateOne(ctx context.Context, userID string, bill domain.RecurringBillDTO) (domain.RecurringBillDTO, error)
	DeleteOne(ctx context.Context, userID string, billID string) error
}

// RecurringBillPaymentRecorder pays a bill. The payment row, the expense
// transaction and the bill's last paid date are written in one database
// transaction; the returned payment carries the new transaction id.
type RecurringBillPaymentRecorder interface {
	RecordPaymentAndCreateTransaction(ctx context.Context, userID string, bill domain.RecurringBillDTO, payment domain.RecurringBillPayment) (domain.RecurringBillPayment, error)
}

type RecurringBillRepositoryFacade interface {
	RecurringBillReader
	RecurringBillWriter
	RecurringBillPaymentRecorder
}

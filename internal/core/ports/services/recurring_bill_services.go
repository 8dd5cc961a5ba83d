package services

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/dto"
)

type RecurringBillReaderSvc interface {
	GetPaginatedRecurringBills(ctx context.Context, userID string, req *dto.PaginationRequest) (domain.Paginated[domain.RecurringBillDTO], error)
	GetRecurringBillsSummary(ctx context.Context, userID string) (domain.RecurringBillsSummary, error)
}

type RecurringBillWriterSvc interface {
	CreateRecurringBill(ctx context.Context, userID string, req *dto.CreateRecurringBillRequest) (*domain.RecurringBillDTO, error)
	DeleteRecurringBill(ctx context.Context, userID string, req *dto.DeleteRecurringBillRequest) error

	// PayRecurringBill records a payment and the matching expense transaction.
	PayRecurringBill(ctx context.Context, userID string, req *dto.PayRecurringBillRequest) (*dto.PayRecurringBillResponse, error)
}

type RecurringBillSvcFacade interface {
	RecurringBillReaderSvc
	RecurringBillWriterSvc
}

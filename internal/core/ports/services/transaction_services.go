package services

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/dto"
)

type TransactionReaderSvc interface {
	GetPaginatedTransactions(ctx context.Context, userID string, req *dto.TransactionPaginationRequest) (domain.Paginated[domain.TransactionDTO], error)
	GetTransactionsSummary(ctx context.Context, userID string) (domain.TransactionsSummary, error)
}

type TransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, userID string, req *dto.CreateTransactionRequest) (*domain.TransactionDTO, error)
	UpdateTransaction(ctx context.Context, userID string, req *dto.UpdateTransactionRequest) (*domain.TransactionDTO, error)
	DeleteTransaction(ctx context.Context, userID string, req *dto.DeleteTransactionRequest) error
}

type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

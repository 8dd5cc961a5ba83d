package services

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/dto"
)

type IncomeReaderSvc interface {
	GetPaginatedIncomes(ctx context.Context, userID string, req *dto.PaginationRequest) (domain.Paginated[domain.IncomeDTO], error)
	GetIncomesSummary(ctx context.Context, userID string, req *dto.SummaryRequest) (domain.IncomesSummary, error)
	GetIncomesCount(ctx context.Context, userID string) (int64, error)
}

type IncomeWriterSvc interface {
	CreateIncome(ctx context.Context, userID string, req *dto.CreateIncomeRequest) (*domain.IncomeDTO, error)
	UpdateIncome(ctx context.Context, userID string, req *dto.UpdateIncomeRequest) (*domain.IncomeDTO, error)
	DeleteIncome(ctx context.Context, userID string, req *dto.DeleteIncomeRequest) error
}

type IncomeSvcFacade interface {
	IncomeReaderSvc
	IncomeWriterSvc
}

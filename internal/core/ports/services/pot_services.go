package services

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/dto"
)

type PotReaderSvc interface {
	GetPaginatedPots(ctx context.Context, userID string, req *dto.PaginationRequest) (domain.Paginated[domain.PotDTO], error)
	GetPotsSummary(ctx context.Context, userID string, req *dto.SummaryRequest) (domain.PotsSummary, error)
	GetPotUsedColors(ctx context.Context, userID string) ([]string, error)
}

type PotWriterSvc interface {
	CreatePot(ctx context.Context, userID string, req *dto.CreatePotRequest) (*domain.PotDTO, error)
	UpdatePot(ctx context.Context, userID string, req *dto.UpdatePotRequest) (*domain.PotDTO, error)
	DeletePot(ctx context.Context, userID string, req *dto.DeletePotRequest) error
}

// PotBalanceSvc moves money in and out of pots
type PotBalanceSvc interface {
	AddMoneyToPot(ctx context.Context, userID string, req *dto.PotMoneyRequest) (*domain.PotDTO, error)
	WithdrawMoneyFromPot(ctx context.Context, userID string, req *dto.PotMoneyRequest) (*domain.PotDTO, error)
}

type PotSvcFacade interface {
	PotReaderSvc
	PotWriterSvc
	PotBalanceSvc
}

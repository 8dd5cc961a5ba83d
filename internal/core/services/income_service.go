package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/validation"
)

type incomeService struct {
	BaseService
	incomeRepo portsrepo.IncomeRepositoryFacade
}

func NewIncomeService(repo portsrepo.IncomeRepositoryFacade, options ...ServiceOption) portssvc.IncomeSvcFacade {
	return &incomeService{
		BaseService: newBaseService(options...),
		incomeRepo:  repo,
	}
}

var _ portssvc.IncomeSvcFacade = (*incomeService)(nil)

func (s *incomeService) CreateIncome(ctx context.Context, userID string, req *dto.CreateIncomeRequest) (*domain.IncomeDTO, error) {
	return WithAuth(s.createIncome)(ctx, userID, req)
}

func (s *incomeService) createIncome(ctx context.Context, userID string, req dto.CreateIncomeRequest) (*domain.IncomeDTO, error) {
	if err := validation.Parse(&req); err != nil {
		return nil, err
	}
	if err := s.ensureNameAvailable(ctx, userID, req.Name, ""); err != nil {
		return nil, err
	}

	income, err := unwrap(domain.CreateIncome(req.ToProps()))
	if err != nil {
		return nil, err
	}

	created, err := s.incomeRepo.CreateOne(ctx, userID, income.ToDTO())
	if err != nil {
		s.LogError(ctx, err, "Failed to save income", slog.String("income_id", income.ID().Value()))
		return nil, err
	}
	s.LogInfo(ctx, "Income created successfully", slog.String("income_id", created.ID))
	return &created, nil
}

func (s *incomeService) UpdateIncome(ctx context.Context, userID string, req *dto.UpdateIncomeRequest) (*domain.IncomeDTO, error) {
	return WithAuth(s.updateIncome)(ctx, userID, req)
}

func (s *incomeService) updateIncome(ctx context.Context, userID string, req dto.UpdateIncomeRequest) (*domain.IncomeDTO, error) {
	if err := validation.Parse(&req); err != nil {
		return nil, err
	}
	id, err := unwrap(domain.NewIncomeID(req.IncomeID))
	if err != nil {
		return nil, err
	}

	existing, found, err := lookup(s.incomeRepo.GetOneByID(ctx, userID, id.Value()))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFoundError("Income not found")
	}
	if req.Data.Name != nil && *req.Data.Name != existing.Name {
		if err := s.ensureNameAvailable(ctx, userID, *req.Data.Name, existing.ID); err != nil {
			return nil, err
		}
	}

	income, err := unwrap(domain.IncomeFromDTO(*existing))
	if err != nil {
		return nil, err
	}
	if err := income.Update(req.Data.ToUpdate()).Err(); err != nil {
		return nil, err
	}

	updated, err := s.incomeRepo.UpdateOne(ctx, userID, income.ToDTO())
	if err != nil {
		s.LogError(ctx, err, "Failed to update income", slog.String("income_id", existing.ID))
		return nil, err
	}
	return &updated, nil
}

func (s *incomeService) ensureNameAvailable(ctx context.Context, userID, name, selfID string) error {
	other, found, err := lookup(s.incomeRepo.GetOneByName(ctx, userID, name))
	if err != nil {
		return err
	}
	if found && other.ID != selfID {
		return apperrors.NewConflictError(fmt.Sprintf("Income with name %q already exists", name))
	}
	return nil
}

func (s *incomeService) DeleteIncome(ctx context.Context, userID string, req *dto.DeleteIncomeRequest) error {
	_, err := WithAuth(s.deleteIncome)(ctx, userID, req)
	return err
}

func (s *incomeService) deleteIncome(ctx context.Context, userID string, req dto.DeleteIncomeRequest) (domain.Void, error) {
	id, err := unwrap(domain.NewIncomeID(req.IncomeID))
	if err != nil {
		return domain.Void{}, err
	}
	if err := s.incomeRepo.DeleteOne(ctx, userID, id.Value()); err != nil {
		s.LogError(ctx, err, "Failed to delete income", slog.String("income_id", id.Value()))
		return domain.Void{}, err
	}
	return domain.Void{}, nil
}

func (s *incomeService) GetPaginatedIncomes(ctx context.Context, userID string, req *dto.PaginationRequest) (domain.Paginated[domain.IncomeDTO], error) {
	return WithAuth(s.getPaginatedIncomes)(ctx, userID, req)
}

func (s *incomeService) getPaginatedIncomes(ctx context.Context, userID string, req dto.PaginationRequest) (domain.Paginated[domain.IncomeDTO], error) {
	if err := validation.Parse(&req); err != nil {
		return domain.Paginated[domain.IncomeDTO]{}, err
	}
	return s.incomeRepo.GetPaginated(ctx, userID, req.ToParams())
}

func (s *incomeService) GetIncomesSummary(ctx context.Context, userID string, req *dto.SummaryRequest) (domain.IncomesSummary, error) {
	return WithAuth(s.getIncomesSummary)(ctx, userID, req)
}

func (s *incomeService) getIncomesSummary(ctx context.Context, userID string, req dto.SummaryRequest) (domain.IncomesSummary, error) {
	if err := validation.Parse(&req); err != nil {
		return domain.IncomesSummary{}, err
	}
	return s.incomeRepo.GetSummary(ctx, userID, req.ToParams())
}

func (s *incomeService) GetIncomesCount(ctx context.Context, userID string) (int64, error) {
	return WithAuth(s.getIncomesCount)(ctx, userID, nil)
}

func (s *incomeService) getIncomesCount(ctx context.Context, userID string, _ domain.Void) (int64, error) {
	return s.incomeRepo.GetCount(ctx, userID)
}

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

type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
}

// NewBudgetService creates a new budget service with the provided options
func NewBudgetService(repo portsrepo.BudgetRepositoryFacade, options ...ServiceOption) portssvc.BudgetSvcFacade {
	return &budgetService{
		BaseService: newBaseService(options...),
		budgetRepo:  repo,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) CreateBudget(ctx context.Context, userID string, req *dto.CreateBudgetRequest) (*domain.BudgetDTO, error) {
	return WithAuth(s.createBudget)(ctx, userID, req)
}

func (s *budgetService) createBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.BudgetDTO, error) {
	if err := validation.Parse(&req); err != nil {
		return nil, err
	}

	if err := s.ensureNameAvailable(ctx, userID, req.Name, ""); err != nil {
		return nil, err
	}

	budget, err := unwrap(domain.CreateBudget(req.ToProps()))
	if err != nil {
		return nil, err
	}

	created, err := s.budgetRepo.CreateOne(ctx, userID, budget.ToDTO())
	if err != nil {
		s.LogError(ctx, err, "Failed to save budget", slog.String("budget_id", budget.ID().Value()))
		return nil, err
	}

	s.LogInfo(ctx, "Budget created successfully", slog.String("budget_id", created.ID))
	return &created, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, userID string, req *dto.UpdateBudgetRequest) (*domain.BudgetDTO, error) {
	return WithAuth(s.updateBudget)(ctx, userID, req)
}

func (s *budgetService) updateBudget(ctx context.Context, userID string, req dto.UpdateBudgetRequest) (*domain.BudgetDTO, error) {
	if err := validation.Parse(&req); err != nil {
		return nil, err
	}
	id, err := unwrap(domain.NewBudgetID(req.BudgetID))
	if err != nil {
		return nil, err
	}

	existing, found, err := lookup(s.budgetRepo.GetOneByID(ctx, userID, id.Value()))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFoundError("Budget not found")
	}

	if req.Data.Name != nil && *req.Data.Name != existing.Name {
		if err := s.ensureNameAvailable(ctx, userID, *req.Data.Name, existing.ID); err != nil {
			return nil, err
		}
	}

	budget, err := unwrap(domain.BudgetFromDTO(*existing))
	if err != nil {
		return nil, err
	}
	if err := budget.Update(req.Data.ToUpdate()).Err(); err != nil {
		return nil, err
	}

	updated, err := s.budgetRepo.UpdateOne(ctx, userID, budget.ToDTO())
	if err != nil {
		s.LogError(ctx, err, "Failed to update budget", slog.String("budget_id", existing.ID))
		return nil, err
	}
	return &updated, nil
}

// ensureNameAvailable fails with a ConflictError when another budget of the
// user already has name. selfID is ignored so a budget can keep its name.
func (s *budgetService) ensureNameAvailable(ctx context.Context, userID, name, selfID string) error {
	other, found, err := lookup(s.budgetRepo.GetOneByName(ctx, userID, name))
	if err != nil {
		return err
	}
	if found && other.ID != selfID {
		return apperrors.NewConflictError(fmt.Sprintf("Budget with name %q already exists", name))
	}
	return nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, userID string, req *dto.DeleteBudgetRequest) error {
	_, err := WithAuth(s.deleteBudget)(ctx, userID, req)
	return err
}

func (s *budgetService) deleteBudget(ctx context.Context, userID string, req dto.DeleteBudgetRequest) (domain.Void, error) {
	id, err := unwrap(domain.NewBudgetID(req.BudgetID))
	if err != nil {
		return domain.Void{}, err
	}
	if err := s.budgetRepo.DeleteOne(ctx, userID, id.Value()); err != nil {
		s.LogError(ctx, err, "Failed to delete budget", slog.String("budget_id", id.Value()))
		return domain.Void{}, err
	}
	return domain.Void{}, nil
}

func (s *budgetService) GetPaginatedBudgets(ctx context.Context, userID string, req *dto.PaginationRequest) (domain.Paginated[domain.BudgetDTO], error) {
	return WithAuth(s.getPaginatedBudgets)(ctx, userID, req)
}

func (s *budgetService) getPaginatedBudgets(ctx context.Context, userID string, req dto.PaginationRequest) (domain.Paginated[domain.BudgetDTO], error) {
	if err := validation.Parse(&req); err != nil {
		return domain.Paginated[domain.BudgetDTO]{}, err
	}
	return s.budgetRepo.GetPaginated(ctx, userID, req.ToParams())
}

func (s *budgetService) GetBudgetsSummary(ctx context.Context, userID string, req *dto.SummaryRequest) (domain.BudgetSummary, error) {
	return WithAuth(s.getBudgetsSummary)(ctx, userID, req)
}

func (s *budgetService) getBudgetsSummary(ctx context.Context, userID string, req dto.SummaryRequest) (domain.BudgetSummary, error) {
	if err := validation.Parse(&req); err != nil {
		return domain.BudgetSummary{}, err
	}
	return s.budgetRepo.GetSummary(ctx, userID, req.ToParams())
}

func (s *budgetService) GetBudgetUsedColors(ctx context.Context, userID string) ([]string, error) {
	return WithAuth(s.getUsedColors)(ctx, userID, nil)
}

func (s *budgetService) getUsedColors(ctx context.Context, userID string, _ domain.Void) ([]string, error) {
	return s.budgetRepo.GetUsedColors(ctx, userID)
}

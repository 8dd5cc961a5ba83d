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

type potService struct {
	BaseService
	potRepo portsrepo.PotRepositoryFacade
}

// NewPotService creates a new pot service with the provided options
func NewPotService(repo portsrepo.PotRepositoryFacade, options ...ServiceOption) portssvc.PotSvcFacade {
	return &potService{
		BaseService: newBaseService(options...),
		potRepo:     repo,
	}
}

var _ portssvc.PotSvcFacade = (*potService)(nil)

func (s *potService) CreatePot(ctx context.Context, userID string, req *dto.CreatePotRequest) (*domain.PotDTO, error) {
	return WithAuth(s.createPot)(ctx, userID, req)
}

func (s *potService) createPot(ctx context.Context, userID string, req dto.CreatePotRequest) (*domain.PotDTO, error) {
	if err := validation.Parse(&req); err != nil {
		return nil, err
	}
	if err := s.ensureNameAvailable(ctx, userID, req.Name, ""); err != nil {
		return nil, err
	}

	pot, err := unwrap(domain.CreatePot(req.ToProps()))
	if err != nil {
		return nil, err
	}

	created, err := s.potRepo.CreateOne(ctx, userID, pot.ToDTO())
	if err != nil {
		s.LogError(ctx, err, "Failed to save pot", slog.String("pot_id", pot.ID().Value()))
		return nil, err
	}
	s.LogInfo(ctx, "Pot created successfully", slog.String("pot_id", created.ID))
	return &created, nil
}

func (s *potService) UpdatePot(ctx context.Context, userID string, req *dto.UpdatePotRequest) (*domain.PotDTO, error) {
	return WithAuth(s.updatePot)(ctx, userID, req)
}

func (s *potService) updatePot(ctx context.Context, userID string, req dto.UpdatePotRequest) (*domain.PotDTO, error) {
	if err := validation.Parse(&req); err != nil {
		return nil, err
	}
	pot, err := s.loadPot(ctx, userID, req.PotID)
	if err != nil {
		return nil, err
	}
	if req.Data.Name != nil && *req.Data.Name != pot.Name().Value() {
		if err := s.ensureNameAvailable(ctx, userID, *req.Data.Name, pot.ID().Value()); err != nil {
			return nil, err
		}
	}

	if err := pot.Update(req.Data.ToUpdate()).Err(); err != nil {
		return nil, err
	}

	updated, err := s.potRepo.UpdateOne(ctx, userID, pot.ToDTO())
	if err != nil {
		s.LogError(ctx, err, "Failed to update pot", slog.String("pot_id", pot.ID().Value()))
		return nil, err
	}
	return &updated, nil
}

// loadPot fetches and rehydrates a pot, failing with NotFoundError when the
// caller owns no pot with that id.
func (s *potService) loadPot(ctx context.Context, userID, rawID string) (*domain.Pot, error) {
	id, err := unwrap(domain.NewPotID(rawID))
	if err != nil {
		return nil, err
	}
	existing, found, err := lookup(s.potRepo.GetOneByID(ctx, userID, id.Value()))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFoundError("Pot not found")
	}
	return unwrap(domain.PotFromDTO(*existing))
}

func (s *potService) ensureNameAvailable(ctx context.Context, userID, name, selfID string) error {
	other, found, err := lookup(s.potRepo.GetOneByName(ctx, userID, name))
	if err != nil {
		return err
	}
	if found && other.ID != selfID {
		return apperrors.NewConflictError(fmt.Sprintf("Pot with name %q already exists", name))
	}
	return nil
}

func (s *potService) DeletePot(ctx context.Context, userID string, req *dto.DeletePotRequest) error {
	_, err := WithAuth(s.deletePot)(ctx, userID, req)
	return err
}

func (s *potService) deletePot(ctx context.Context, userID string, req dto.DeletePotRequest) (domain.Void, error) {
	id, err := unwrap(domain.NewPotID(req.PotID))
	if err != nil {
		return domain.Void{}, err
	}
	if err := s.potRepo.DeleteOne(ctx, userID, id.Value()); err != nil {
		s.LogError(ctx, err, "Failed to delete pot", slog.String("pot_id", id.Value()))
		return domain.Void{}, err
	}
	return domain.Void{}, nil
}

func (s *potService) AddMoneyToPot(ctx context.Context, userID string, req *dto.PotMoneyRequest) (*domain.PotDTO, error) {
	return WithAuth(s.addMoney)(ctx, userID, req)
}

// addMoney checks the deposit against the entity before the repository
// applies it atomically.
func (s *potService) addMoney(ctx context.Context, userID string, req dto.PotMoneyRequest) (*domain.PotDTO, error) {
	if err := validation.Parse(&req); err != nil {
		return nil, err
	}
	pot, err := s.loadPot(ctx, userID, req.PotID)
	if err != nil {
		return nil, err
	}
	if err := pot.AddMoney(req.Amount).Err(); err != nil {
		return nil, err
	}

	updated, err := s.potRepo.AddToTotalSaved(ctx, userID, pot.ID().Value(), req.Amount)
	if err != nil {
		s.LogError(ctx, err, "Failed to add money to pot", slog.String("pot_id", pot.ID().Value()))
		return nil, err
	}
	s.LogDebug(ctx, "Money added to pot", slog.String("pot_id", updated.ID), slog.String("amount", req.Amount.String()))
	return &updated, nil
}

func (s *potService) WithdrawMoneyFromPot(ctx context.Context, userID string, req *dto.PotMoneyRequest) (*domain.PotDTO, error) {
	return WithAuth(s.withdrawMoney)(ctx, userID, req)
}

func (s *potService) withdrawMoney(ctx context.Context, userID string, req dto.PotMoneyRequest) (*domain.PotDTO, error) {
	if err := validation.Parse(&req); err != nil {
		return nil, err
	}
	pot, err := s.loadPot(ctx, userID, req.PotID)
	if err != nil {
		return nil, err
	}
	if err := pot.WithdrawMoney(req.Amount).Err(); err != nil {
		return nil, err
	}

	updated, err := s.potRepo.WithdrawMoney(ctx, userID, pot.ID().Value(), req.Amount)
	if err != nil {
		s.LogError(ctx, err, "Failed to withdraw money from pot", slog.String("pot_id", pot.ID().Value()))
		return nil, err
	}
	s.LogDebug(ctx, "Money withdrawn from pot", slog.String("pot_id", updated.ID), slog.String("amount", req.Amount.String()))
	return &updated, nil
}

func (s *potService) GetPaginatedPots(ctx context.Context, userID string, req *dto.PaginationRequest) (domain.Paginated[domain.PotDTO], error) {
	return WithAuth(s.getPaginatedPots)(ctx, userID, req)
}

func (s *potService) getPaginatedPots(ctx context.Context, userID string, req dto.PaginationRequest) (domain.Paginated[domain.PotDTO], error) {
	if err := validation.Parse(&req); err != nil {
		return domain.Paginated[domain.PotDTO]{}, err
	}
	return s.potRepo.GetPaginated(ctx, userID, req.ToParams())
}

func (s *potService) GetPotsSummary(ctx context.Context, userID string, req *dto.SummaryRequest) (domain.PotsSummary, error) {
	return WithAuth(s.getPotsSummary)(ctx, userID, req)
}

func (s *potService) getPotsSummary(ctx context.Context, userID string, req dto.SummaryRequest) (domain.PotsSummary, error) {
	if err := validation.Parse(&req); err != nil {
		return domain.PotsSummary{}, err
	}
	return s.potRepo.GetSummary(ctx, userID, req.ToParams())
}

func (s *potService) GetPotUsedColors(ctx context.Context, userID string) ([]string, error) {
	return WithAuth(s.getUsedColors)(ctx, userID, nil)
}

func (s *potService) getUsedColors(ctx context.Context, userID string, _ domain.Void) ([]string, error) {
	return s.potRepo.GetUsedColors(ctx, userID)
}

package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/validation"
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, options ...ServiceOption) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService:     newBaseService(options...),
		transactionRepo: repo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req *dto.CreateTransactionRequest) (*domain.TransactionDTO, error) {
	return WithAuth(s.createTransaction)(ctx, userID, req)
}

// createTransaction validates with a placeholder category. The repository
// resolves the real category from its id when it stores the row.
func (s *transactionService) createTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.TransactionDTO, error) {
	if err := validation.Parse(&req); err != nil {
		return nil, err
	}

	tx, err := unwrap(domain.CreateTransaction(req.ToProps()))
	if err != nil {
		return nil, err
	}

	created, err := s.transactionRepo.CreateOne(ctx, userID, tx.ToDTO())
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", tx.ID().Value()))
		return nil, err
	}
	s.LogInfo(ctx, "Transaction created successfully",
		slog.String("transaction_id", created.ID),
		slog.String("type", created.Type.String()))
	return &created, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, req *dto.UpdateTransactionRequest) (*domain.TransactionDTO, error) {
	return WithAuth(s.updateTransaction)(ctx, userID, req)
}

func (s *transactionService) updateTransaction(ctx context.Context, userID string, req dto.UpdateTransactionRequest) (*domain.TransactionDTO, error) {
	if err := validation.Parse(&req); err != nil {
		return nil, err
	}
	id, err := unwrap(domain.NewTransactionID(req.TransactionID))
	if err != nil {
		return nil, err
	}

	existing, found, err := lookup(s.transactionRepo.GetOneByID(ctx, userID, id.Value()))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFoundError("Transaction not found")
	}

	tx, err := unwrap(domain.TransactionFromDTO(*existing))
	if err != nil {
		return nil, err
	}
	if err := tx.Update(req.Data.ToUpdate()).Err(); err != nil {
		return nil, err
	}

	categoryChanged := req.Data.CategoryID != nil && *req.Data.CategoryID != existing.Category.ID
	updated, err := s.transactionRepo.UpdateOne(ctx, userID, tx.ToDTO(), categoryChanged)
	if err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", existing.ID))
		return nil, err
	}
	return &updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, req *dto.DeleteTransactionRequest) error {
	_, err := WithAuth(s.deleteTransaction)(ctx, userID, req)
	return err
}

func (s *transactionService) deleteTransaction(ctx context.Context, userID string, req dto.DeleteTransactionRequest) (domain.Void, error) {
	id, err := unwrap(domain.NewTransactionID(req.TransactionID))
	if err != nil {
		return domain.Void{}, err
	}
	if err := s.transactionRepo.DeleteOne(ctx, userID, id.Value()); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", id.Value()))
		return domain.Void{}, err
	}
	return domain.Void{}, nil
}

func (s *transactionService) GetPaginatedTransactions(ctx context.Context, userID string, req *dto.TransactionPaginationRequest) (domain.Paginated[domain.TransactionDTO], error) {
	return WithAuth(s.getPaginatedTransactions)(ctx, userID, req)
}

func (s *transactionService) getPaginatedTransactions(ctx context.Context, userID string, req dto.TransactionPaginationRequest) (domain.Paginated[domain.TransactionDTO], error) {
	if err := validation.Parse(&req); err != nil {
		return domain.Paginated[domain.TransactionDTO]{}, err
	}
	return s.transactionRepo.GetPaginated(ctx, userID, req.ToParams())
}

func (s *transactionService) GetTransactionsSummary(ctx context.Context, userID string) (domain.TransactionsSummary, error) {
	return WithAuth(s.getTransactionsSummary)(ctx, userID, nil)
}

func (s *transactionService) getTransactionsSummary(ctx context.Context, userID string, _ domain.Void) (domain.TransactionsSummary, error) {
	return s.transactionRepo.GetSummary(ctx, userID)
}

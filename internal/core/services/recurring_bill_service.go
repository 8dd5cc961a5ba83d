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

type recurringBillService struct {
	BaseService
	billRepo     portsrepo.RecurringBillRepositoryFacade
	categoryRepo portsrepo.CategoryReader
}

// NewRecurringBillService creates a new recurring bill service. Categories
// are read to reject bills pointing at a category the caller cannot see.
func NewRecurringBillService(
	repo portsrepo.RecurringBillRepositoryFacade,
	categories portsrepo.CategoryReader,
	options ...ServiceOption,
) portssvc.RecurringBillSvcFacade {
	return &recurringBillService{
		BaseService:  newBaseService(options...),
		billRepo:     repo,
		categoryRepo: categories,
	}
}

var _ portssvc.RecurringBillSvcFacade = (*recurringBillService)(nil)

func (s *recurringBillService) CreateRecurringBill(ctx context.Context, userID string, req *dto.CreateRecurringBillRequest) (*domain.RecurringBillDTO, error) {
	return WithAuth(s.createRecurringBill)(ctx, userID, req)
}

func (s *recurringBillService) createRecurringBill(ctx context.Context, userID string, req dto.CreateRecurringBillRequest) (*domain.RecurringBillDTO, error) {
	if err := validation.Parse(&req); err != nil {
		return nil, err
	}

	bill, err := unwrap(domain.CreateRecurringBill(req.ToProps()))
	if err != nil {
		return nil, err
	}

	_, found, err := lookup(s.categoryRepo.GetOneByID(ctx, userID, bill.CategoryID().Value()))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFoundError("Category not found")
	}

	created, err := s.billRepo.CreateOne(ctx, userID, bill.ToDTO())
	if err != nil {
		s.LogError(ctx, err, "Failed to save recurring bill", slog.String("bill_id", bill.ID().Value()))
		return nil, err
	}
	s.LogInfo(ctx, "Recurring bill created successfully", slog.String("bill_id", created.ID))
	return &created, nil
}

func (s *recurringBillService) DeleteRecurringBill(ctx context.Context, userID string, req *dto.DeleteRecurringBillRequest) error {
	_, err := WithAuth(s.deleteRecurringBill)(ctx, userID, req)
	return err
}

func (s *recurringBillService) deleteRecurringBill(ctx context.Context, userID string, req dto.DeleteRecurringBillRequest) (domain.Void, error) {
	id, err := unwrap(domain.NewRecurringBillID(req.RecurringBillID))
	if err != nil {
		return domain.Void{}, err
	}
	if err := s.billRepo.DeleteOne(ctx, userID, id.Value()); err != nil {
		s.LogError(ctx, err, "Failed to delete recurring bill", slog.String("bill_id", id.Value()))
		return domain.Void{}, err
	}
	return domain.Void{}, nil
}

func (s *recurringBillService) PayRecurringBill(ctx context.Context, userID string, req *dto.PayRecurringBillRequest) (*dto.PayRecurringBillResponse, error) {
	return WithAuth(s.payRecurringBill)(ctx, userID, req)
}

// payRecurringBill stores the payment and its expense transaction in one
// repository call, then reports the bill with its new payment date.
func (s *recurringBillService) payRecurringBill(ctx context.Context, userID string, req dto.PayRecurringBillRequest) (*dto.PayRecurringBillResponse, error) {
	if err := validation.Parse(&req); err != nil {
		return nil, err
	}
	id, err := unwrap(domain.NewRecurringBillID(req.RecurringBillID))
	if err != nil {
		return nil, err
	}

	existing, found, err := lookup(s.billRepo.GetOneByID(ctx, userID, id.Value()))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFoundError("Recurring bill not found")
	}

	bill, err := unwrap(domain.RecurringBillFromDTO(*existing))
	if err != nil {
		return nil, err
	}
	payment, err := unwrap(bill.NewPayment(req.Amount, req.PaidAt))
	if err != nil {
		return nil, err
	}

	recorded, err := s.billRepo.RecordPaymentAndCreateTransaction(ctx, userID, bill.ToDTO(), payment)
	if err != nil {
		s.LogError(ctx, err, "Failed to record bill payment", slog.String("bill_id", id.Value()))
		return nil, err
	}
	bill.MarkPaid(recorded.PaidAt)

	s.LogInfo(ctx, "Recurring bill paid",
		slog.String("bill_id", id.Value()),
		slog.String("transaction_id", recorded.TransactionID))
	return &dto.PayRecurringBillResponse{
		Bill:          bill.ToDTO(),
		Payment:       recorded,
		TransactionID: recorded.TransactionID,
	}, nil
}

func (s *recurringBillService) GetPaginatedRecurringBills(ctx context.Context, userID string, req *dto.PaginationRequest) (domain.Paginated[domain.RecurringBillDTO], error) {
	return WithAuth(s.getPaginatedRecurringBills)(ctx, userID, req)
}

func (s *recurringBillService) getPaginatedRecurringBills(ctx context.Context, userID string, req dto.PaginationRequest) (domain.Paginated[domain.RecurringBillDTO], error) {
	if err := validation.Parse(&req); err != nil {
		return domain.Paginated[domain.RecurringBillDTO]{}, err
	}
	return s.billRepo.GetPaginated(ctx, userID, req.ToParams())
}

func (s *recurringBillService) GetRecurringBillsSummary(ctx context.Context, userID string) (domain.RecurringBillsSummary, error) {
	return WithAuth(s.getRecurringBillsSummary)(ctx, userID, nil)
}

func (s *recurringBillService) getRecurringBillsSummary(ctx context.Context, userID string, _ domain.Void) (domain.RecurringBillsSummary, error) {
	return s.billRepo.GetSummary(ctx, userID)
}

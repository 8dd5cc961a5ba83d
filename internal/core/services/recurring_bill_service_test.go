package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/core/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func existingBill() domain.RecurringBillDTO {
	return domain.CreateRecurringBill(domain.RecurringBillProps{
		Name:       "Internet",
		Amount:     decimal.NewFromInt(45),
		CategoryID: "cat-bills",
		Emoji:      "🌐",
		DueDay:     15,
	}).Value().ToDTO()
}

type RecurringBillServiceTestSuite struct {
	suite.Suite
	mockBillRepo     *MockRecurringBillRepository
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.RecurringBillSvcFacade
}

func (suite *RecurringBillServiceTestSuite) SetupTest() {
	suite.mockBillRepo = new(MockRecurringBillRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewRecurringBillService(suite.mockBillRepo, suite.mockCategoryRepo)
}

func (suite *RecurringBillServiceTestSuite) TestCreateRecurringBill_UnknownCategory() {
	ctx := context.Background()
	req := &dto.CreateRecurringBillRequest{
		Name: "Internet", Amount: decimal.NewFromInt(45), CategoryID: "cat-nope", Emoji: "🌐", DueDay: 15,
	}
	suite.mockCategoryRepo.On("GetOneByID", ctx, testUserID, "cat-nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateRecurringBill(ctx, testUserID, req)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "CreateOne", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RecurringBillServiceTestSuite) TestCreateRecurringBill_DueDayOutOfRange() {
	req := &dto.CreateRecurringBillRequest{
		Name: "Internet", Amount: decimal.NewFromInt(45), CategoryID: "cat-bills", Emoji: "🌐", DueDay: 32,
	}

	_, err := suite.service.CreateRecurringBill(context.Background(), testUserID, req)

	suite.Contains(apperrors.FieldErrors(err), "dueDay")
}

func (suite *RecurringBillServiceTestSuite) TestPayRecurringBill_NotFound() {
	ctx := context.Background()
	suite.mockBillRepo.On("GetOneByID", ctx, testUserID, "bill-x").Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.PayRecurringBill(ctx, testUserID, &dto.PayRecurringBillRequest{RecurringBillID: "bill-x"})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "RecordPaymentAndCreateTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RecurringBillServiceTestSuite) TestPayRecurringBill_DefaultsToBillAmount() {
	ctx := context.Background()
	bill := existingBill()
	paidAt := time.Now().UTC()

	suite.mockBillRepo.On("GetOneByID", ctx, testUserID, bill.ID).Return(&bill, nil).Once()
	suite.mockBillRepo.On("RecordPaymentAndCreateTransaction", ctx, testUserID,
		mock.MatchedBy(func(b domain.RecurringBillDTO) bool { return b.ID == bill.ID }),
		mock.MatchedBy(func(p domain.RecurringBillPayment) bool {
			return p.BillID == bill.ID && p.Amount.Equal(decimal.NewFromInt(45)) && p.PaidAt.Equal(paidAt)
		}),
	).Return(domain.RecurringBillPayment{
		ID: "pay-1", BillID: bill.ID, Amount: decimal.NewFromInt(45), PaidAt: paidAt, TransactionID: "tx-1",
	}, nil).Once()

	resp, err := suite.service.PayRecurringBill(ctx, testUserID, &dto.PayRecurringBillRequest{
		RecurringBillID: bill.ID,
		PaidAt:          &paidAt,
	})

	suite.Require().NoError(err)
	suite.Equal("tx-1", resp.TransactionID)
	suite.Equal("pay-1", resp.Payment.ID)
	suite.Require().NotNil(resp.Bill.LastPaidAt)
	suite.True(resp.Bill.LastPaidAt.Equal(paidAt))
	suite.Equal(domain.BillStatusPaid, resp.Bill.Status)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *RecurringBillServiceTestSuite) TestPayRecurringBill_RepoErrorPropagates() {
	ctx := context.Background()
	bill := existingBill()
	amount := decimal.NewFromInt(50)
	suite.mockBillRepo.On("GetOneByID", ctx, testUserID, bill.ID).Return(&bill, nil).Once()
	suite.mockBillRepo.On("RecordPaymentAndCreateTransaction", ctx, testUserID, mock.Anything, mock.Anything).
		Return(domain.RecurringBillPayment{}, apperrors.NewDatasourceError("insert failed", nil)).Once()

	_, err := suite.service.PayRecurringBill(ctx, testUserID, &dto.PayRecurringBillRequest{RecurringBillID: bill.ID, Amount: &amount})

	suite.ErrorIs(err, apperrors.ErrDatasource)
}

func (suite *RecurringBillServiceTestSuite) TestGetRecurringBillsSummary() {
	ctx := context.Background()
	summary := domain.RecurringBillsSummary{}.Add(domain.BillStatusPaid, decimal.NewFromInt(45))
	suite.mockBillRepo.On("GetSummary", ctx, testUserID).Return(summary, nil).Once()

	got, err := suite.service.GetRecurringBillsSummary(ctx, testUserID)

	suite.Require().NoError(err)
	suite.Equal(1, got.Paid.Count)
}

func TestRecurringBillServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecurringBillServiceTestSuite))
}

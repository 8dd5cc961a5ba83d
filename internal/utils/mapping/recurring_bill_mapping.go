package mapping

import (
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/models"
)

func ToModelRecurringBill(userID string, d domain.RecurringBillDTO) models.RecurringBill {
	return models.RecurringBill{
		ID:         d.ID,
		UserID:     userID,
		Name:       d.Name,
		Amount:     d.Amount,
		CategoryID: d.CategoryID,
		Emoji:      d.Emoji,
		DueDay:     d.DueDay,
		LastPaidAt: d.LastPaidAt,
		Timestamps: ToModelTimestamps(d.CreatedAt, d.UpdatedAt),
	}
}

// ToDomainRecurringBill converts a row and derives its status as of now.
func ToDomainRecurringBill(m models.RecurringBill, now time.Time) domain.RecurringBillDTO {
	return domain.RecurringBillDTO{
		ID:         m.ID,
		Name:       m.Name,
		Amount:     m.Amount,
		CategoryID: m.CategoryID,
		Emoji:      m.Emoji,
		DueDay:     m.DueDay,
		LastPaidAt: m.LastPaidAt,
		Status:     domain.BillStatusOn(m.DueDay, m.LastPaidAt, now),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToDomainRecurringBillSlice(ms []models.RecurringBill, now time.Time) []domain.RecurringBillDTO {
	ds := make([]domain.RecurringBillDTO, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRecurringBill(m, now)
	}
	return ds
}

func ToModelRecurringBillPayment(userID string, d domain.RecurringBillPayment) models.RecurringBillPayment {
	m := models.RecurringBillPayment{
		ID:     d.ID,
		BillID: d.BillID,
		UserID: userID,
		Amount: d.Amount,
		PaidAt: d.PaidAt.UTC(),
	}
	if d.TransactionID != "" {
		m.TransactionID = &d.TransactionID
	}
	return m
}

func ToDomainRecurringBillPayment(m models.RecurringBillPayment) domain.RecurringBillPayment {
	d := domain.RecurringBillPayment{
		ID:     m.ID,
		BillID: m.BillID,
		Amount: m.Amount,
		PaidAt: m.PaidAt,
	}
	if m.TransactionID != nil {
		d.TransactionID = *m.TransactionID
	}
	return d
}

package mapping

import (
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction owned by userID
func ToModelTransaction(userID string, d domain.TransactionDTO) models.Transaction {
	return models.Transaction{
		ID:               d.ID,
		UserID:           userID,
		Name:             d.Name,
		Type:             d.Type.String(),
		Amount:           d.Amount,
		CategoryID:       d.Category.ID,
		CategoryName:     d.Category.Name,
		CategoryColorTag: d.Category.ColorTag,
		Emoji:            d.Emoji,
		TransactionDate:  d.TransactionDate.UTC(),
		RecurringBillID:  d.RecurringBillID,
		Timestamps:       ToModelTimestamps(d.CreatedAt, d.UpdatedAt),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.TransactionDTO {
	return domain.TransactionDTO{
		ID:     m.ID,
		Name:   m.Name,
		Type:   domain.TransactionType(m.Type),
		Amount: m.Amount,
		Category: domain.TransactionCategoryProps{
			ID:       m.CategoryID,
			Name:     m.CategoryName,
			ColorTag: m.CategoryColorTag,
		},
		Emoji:           m.Emoji,
		TransactionDate: m.TransactionDate,
		RecurringBillID: m.RecurringBillID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.TransactionDTO {
	ds := make([]domain.TransactionDTO, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

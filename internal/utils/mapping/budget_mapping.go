package mapping

import (
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/models"
)

// ToModelBudget converts a domain Budget to a model Budget owned by userID
func ToModelBudget(userID string, d domain.BudgetDTO) models.Budget {
	return models.Budget{
		ID:              d.ID,
		UserID:          userID,
		Name:            d.Name,
		ColorTag:        d.ColorTag,
		MaximumSpending: d.MaximumSpending,
		Timestamps:      ToModelTimestamps(d.CreatedAt, d.UpdatedAt),
	}
}

// ToDomainBudget converts a model Budget to a domain Budget
func ToDomainBudget(m models.Budget) domain.BudgetDTO {
	return domain.BudgetDTO{
		ID:              m.ID,
		Name:            m.Name,
		ColorTag:        m.ColorTag,
		MaximumSpending: m.MaximumSpending,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ToDomainBudgetSlice converts a slice of model Budgets to a slice of domain Budgets
func ToDomainBudgetSlice(ms []models.Budget) []domain.BudgetDTO {
	ds := make([]domain.BudgetDTO, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudget(m)
	}
	return ds
}

package mapping

import (
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/models"
	"github.com/shopspring/decimal"
)

func ToModelIncome(userID string, d domain.IncomeDTO) models.Income {
	return models.Income{
		ID:         d.ID,
		UserID:     userID,
		Name:       d.Name,
		ColorTag:   d.ColorTag,
		Timestamps: ToModelTimestamps(d.CreatedAt, d.UpdatedAt),
	}
}

func ToDomainIncome(m models.Income) domain.IncomeDTO {
	return domain.IncomeDTO{
		ID:        m.ID,
		Name:      m.Name,
		ColorTag:  m.ColorTag,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToDomainIncomeSlice(ms []models.Income) []domain.IncomeDTO {
	ds := make([]domain.IncomeDTO, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainIncome(m)
	}
	return ds
}

// ToDomainIncomesSummary builds the summary from the listed incomes and the
// grand total over all of the user's incomes.
func ToDomainIncomesSummary(ms []models.IncomeTotal, total decimal.Decimal) domain.IncomesSummary {
	incomes := make([]domain.IncomeWithTotal, len(ms))
	for i, m := range ms {
		incomes[i] = domain.IncomeWithTotal{IncomeDTO: ToDomainIncome(m.Income), Total: m.Total}
	}
	return domain.IncomesSummary{Incomes: incomes, Total: total}
}

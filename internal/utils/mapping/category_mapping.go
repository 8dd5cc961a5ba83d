package mapping

import (
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/models"
)

func ToDomainCategory(m models.Category) domain.CategoryDTO {
	return domain.CategoryDTO{
		ID:        m.ID,
		Name:      m.Name,
		ColorTag:  m.ColorTag,
		CreatedAt: m.CreatedAt,
	}
}

func ToDomainCategorySlice(ms []models.Category) []domain.CategoryDTO {
	ds := make([]domain.CategoryDTO, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}

package mapping

import (
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/models"
)

func ToModelPot(userID string, d domain.PotDTO) models.Pot {
	return models.Pot{
		ID:         d.ID,
		UserID:     userID,
		Name:       d.Name,
		ColorTag:   d.ColorTag,
		Target:     d.Target,
		TotalSaved: d.TotalSaved,
		Timestamps: ToModelTimestamps(d.CreatedAt, d.UpdatedAt),
	}
}

func ToDomainPot(m models.Pot) domain.PotDTO {
	return domain.PotDTO{
		ID:         m.ID,
		Name:       m.Name,
		ColorTag:   m.ColorTag,
		Target:     m.Target,
		TotalSaved: m.TotalSaved,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToDomainPotSlice(ms []models.Pot) []domain.PotDTO {
	ds := make([]domain.PotDTO, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPot(m)
	}
	return ds
}

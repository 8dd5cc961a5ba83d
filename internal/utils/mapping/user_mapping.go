package mapping

import (
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.UserDTO) models.User {
	return models.User{
		ID:         d.ID,
		Name:       d.Name,
		Email:      d.Email,
		Timestamps: ToModelTimestamps(d.CreatedAt, d.UpdatedAt),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.UserDTO {
	return domain.UserDTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

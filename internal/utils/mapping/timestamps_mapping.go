package mapping

import (
	"time"

	"github.com/SscSPs/personal_finance_app/internal/models"
)

// ToModelTimestamps converts entity timestamps to the audit columns
func ToModelTimestamps(createdAt, updatedAt time.Time) models.Timestamps {
	return models.Timestamps{CreatedAt: createdAt.UTC(), UpdatedAt: updatedAt.UTC()}
}

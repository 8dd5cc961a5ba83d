package domain

import "time"

// CategoryDTO is a read-only category used to classify transactions.
type CategoryDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ColorTag  string    `json:"colorTag"`
	CreatedAt time.Time `json:"createdAt"`
}

// Snapshot converts the category into the form stored on transactions.
func (c CategoryDTO) Snapshot() TransactionCategoryProps {
	return TransactionCategoryProps{ID: c.ID, Name: c.Name, ColorTag: c.ColorTag}
}

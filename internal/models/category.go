package models

import "time"

// Category is a row of the categories table. A nil UserID marks a default
// category visible to everyone.
type Category struct {
	ID        string    `db:"id"`
	UserID    *string   `db:"user_id"`
	Name      string    `db:"name"`
	ColorTag  string    `db:"color_tag"`
	CreatedAt time.Time `db:"created_at"`
}

package models

import "github.com/shopspring/decimal"

type Pot struct {
	ID         string          `db:"id"`
	UserID     string          `db:"user_id"`
	Name       string          `db:"name"`
	ColorTag   string          `db:"color_tag"`
	Target     decimal.Decimal `db:"target"`
	TotalSaved decimal.Decimal `db:"total_saved"`
	Timestamps
}

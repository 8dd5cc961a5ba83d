package pagination

import (
	"testing"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestOrderBy(t *testing.T) {
	cols := Columns{Date: "t.transaction_date", Name: "t.name", Amount: "t.amount", ID: "t.id"}
	noAmount := Columns{Date: "b.created_at", Name: "b.name", ID: "b.id"}

	tests := []struct {
		name string
		sort domain.SortOrder
		cols Columns
		want string
	}{
		{"default is latest", "", cols, " ORDER BY t.transaction_date DESC, t.id ASC"},
		{"oldest", domain.SortOldest, cols, " ORDER BY t.transaction_date ASC, t.id ASC"},
		{"a-z", domain.SortAToZ, cols, " ORDER BY t.name ASC, t.id ASC"},
		{"z-a", domain.SortZToA, cols, " ORDER BY t.name DESC, t.id ASC"},
		{"highest", domain.SortHighest, cols, " ORDER BY t.amount DESC, t.id ASC"},
		{"lowest", domain.SortLowest, cols, " ORDER BY t.amount ASC, t.id ASC"},
		{"highest without amount column", domain.SortHighest, noAmount, " ORDER BY b.created_at DESC, b.id ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrderBy(tt.sort, tt.cols))
		})
	}
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%food%", LikePattern("food"))
	assert.Equal(t, `%50\%\_off\\%`, LikePattern(`50%_off\`))
}

func TestFilter(t *testing.T) {
	f := NewFilter("t.user_id", "user-1").
		AddSearch("t.name", "rent").
		AddSearch("t.emoji", "").
		Add("t.category_id = ?", "cat-1")

	assert.Equal(t, ` WHERE t.user_id = $1 AND t.name ILIKE $2 ESCAPE '\' AND t.category_id = $3`, f.Where())

	window := f.Window(domain.PaginationParams{Page: 3, PageSize: 10})
	assert.Equal(t, " LIMIT $4 OFFSET $5", window)
	assert.Equal(t, []any{"user-1", "%rent%", "cat-1", 10, 20}, f.Args())
}

func TestFilter_Empty(t *testing.T) {
	assert.Empty(t, (&Filter{}).Where())
}

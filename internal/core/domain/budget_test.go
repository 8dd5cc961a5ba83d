package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t *testing.T, start time.Time) *time.Time {
	t.Helper()
	now := start
	restore := domain.SetClock(func() time.Time { return now })
	t.Cleanup(restore)
	return &now
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newTestBudget(t *testing.T) *domain.Budget {
	t.Helper()
	r := domain.CreateBudget(domain.BudgetProps{
		Name:            " Food ",
		ColorTag:        "#277C78",
		MaximumSpending: decimal.NewFromInt(500),
	})
	require.True(t, r.IsSuccess())
	return r.Value()
}

func TestCreateBudget(t *testing.T) {
	now := fixedClock(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	b := newTestBudget(t)

	assert.Equal(t, "Food", b.Name().Value())
	assert.Len(t, b.ID().Value(), 36)
	assert.Equal(t, *now, b.CreatedAt())
	assert.Equal(t, *now, b.UpdatedAt())
}

func TestCreateBudget_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		props   domain.BudgetProps
		wantErr string
	}{
		{
			name:    "name checked first",
			props:   domain.BudgetProps{Name: "", ColorTag: "bad", MaximumSpending: decimal.Zero},
			wantErr: "Budget name is required",
		},
		{
			name:    "colour before amount",
			props:   domain.BudgetProps{Name: "Food", ColorTag: "bad", MaximumSpending: decimal.Zero},
			wantErr: "Invalid color tag",
		},
		{
			name:    "amount last",
			props:   domain.BudgetProps{Name: "Food", ColorTag: "#277C78", MaximumSpending: decimal.Zero},
			wantErr: "Maximum spending must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.CreateBudget(tt.props)
			require.True(t, r.IsFailure())
			assert.Equal(t, tt.wantErr, r.Error())
		})
	}
}

func TestBudget_Update(t *testing.T) {
	now := fixedClock(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	b := newTestBudget(t)
	created := b.CreatedAt()

	*now = now.Add(time.Hour)
	r := b.Update(domain.BudgetUpdate{Name: strPtr("Dining"), MaximumSpending: decPtr("750")})

	require.True(t, r.IsSuccess())
	assert.Equal(t, "Dining", b.Name().Value())
	assert.Equal(t, "#277C78", b.ColorTag().Value())
	assert.True(t, b.MaximumSpending().Amount().Equal(decimal.NewFromInt(750)))
	assert.Equal(t, created, b.CreatedAt())
	assert.Equal(t, *now, b.UpdatedAt())
}

func TestBudget_EmptyUpdateStillTouches(t *testing.T) {
	now := fixedClock(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	b := newTestBudget(t)
	before := b.ToDTO()

	*now = now.Add(time.Minute)
	require.True(t, b.Update(domain.BudgetUpdate{}).IsSuccess())

	after := b.ToDTO()
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.ColorTag, after.ColorTag)
	assert.True(t, before.MaximumSpending.Equal(after.MaximumSpending))
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestBudget_UpdateStopsAtFirstFailure(t *testing.T) {
	b := newTestBudget(t)

	r := b.Update(domain.BudgetUpdate{ColorTag: strPtr("#000000"), MaximumSpending: decPtr("1")})

	require.True(t, r.IsFailure())
	assert.Equal(t, "Invalid color tag", r.Error())
	assert.True(t, b.MaximumSpending().Amount().Equal(decimal.NewFromInt(500)))
}

func TestBudget_Spending(t *testing.T) {
	b := newTestBudget(t)

	assert.True(t, b.IsExceeded(decimal.NewFromInt(501)))
	assert.Equal(t, "100", b.RemainingAmount(decimal.NewFromInt(400)).String())
	assert.Equal(t, "80", b.PercentageSpent(decimal.NewFromInt(400)).String())
}

func TestBudget_IdentityEquality(t *testing.T) {
	b := newTestBudget(t)
	dto := b.ToDTO()

	same := domain.BudgetFromDTO(dto)
	require.True(t, same.IsSuccess())
	require.True(t, same.Value().Update(domain.BudgetUpdate{Name: strPtr("Other")}).IsSuccess())

	assert.True(t, b.Equals(same.Value()))
	assert.True(t, domain.SameIdentity[domain.BudgetID](b, same.Value()))
	assert.False(t, b.Equals(newTestBudget(t)))
	assert.False(t, b.Equals(nil))
}

func TestSameIdentity_NilAggregate(t *testing.T) {
	b := newTestBudget(t)
	var missing *domain.Budget

	assert.NotPanics(t, func() {
		assert.False(t, domain.SameIdentity[domain.BudgetID](missing, b))
		assert.False(t, domain.SameIdentity[domain.BudgetID](b, missing))
		assert.False(t, domain.SameIdentity[domain.BudgetID](missing, missing))
	})
	assert.True(t, domain.SameIdentity[domain.BudgetID](b, b))
}

func TestIncome_CreateAndUpdate(t *testing.T) {
	r := domain.CreateIncome(domain.IncomeProps{Name: "Salary", ColorTag: "#82c9d7"})
	require.True(t, r.IsSuccess())
	income := r.Value()
	assert.Equal(t, "#82C9D7", income.ColorTag().Value())

	u := income.Update(domain.IncomeUpdate{Name: strPtr("")})
	require.True(t, u.IsFailure())
	assert.Equal(t, "Income name is required", u.Error())
	assert.Equal(t, "Salary", income.Name().Value())

	rebuilt := domain.IncomeFromDTO(income.ToDTO())
	require.True(t, rebuilt.IsSuccess())
	assert.True(t, rebuilt.Value().Equals(income))
}

package domain_test

import (
	"strings"
	"testing"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBudgetName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{name: "empty", input: "", wantErr: "Budget name is required"},
		{name: "blank", input: "   ", wantErr: "Budget name is required"},
		{name: "too long", input: strings.Repeat("A", 300), wantErr: "Budget name cannot exceed 50 characters"},
		{name: "exactly max", input: strings.Repeat("A", 50), want: strings.Repeat("A", 50)},
		{name: "trimmed", input: " Groceries ", want: "Groceries"},
		{name: "multibyte counted as characters", input: strings.Repeat("é", 50), want: strings.Repeat("é", 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.NewBudgetName(tt.input)
			if tt.wantErr != "" {
				require.True(t, r.IsFailure())
				assert.Equal(t, tt.wantErr, r.Error())
				return
			}
			require.True(t, r.IsSuccess())
			assert.Equal(t, tt.want, r.Value().Value())
		})
	}
}

func TestNameLimits(t *testing.T) {
	assert.Equal(t, "Transaction name cannot exceed 100 characters",
		domain.NewTransactionName(strings.Repeat("x", 101)).Error())
	assert.True(t, domain.NewTransactionName(strings.Repeat("x", 100)).IsSuccess())
	assert.Equal(t, "Pot name is required", domain.NewPotName("").Error())
	assert.Equal(t, "Income name is required", domain.NewIncomeName(" ").Error())
	assert.Equal(t, "Category name cannot exceed 50 characters",
		domain.NewCategoryName(strings.Repeat("x", 51)).Error())
}

func TestNameTrimmingIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		core := rapid.StringMatching(`[A-Za-z0-9][A-Za-z0-9 ]{0,20}[A-Za-z0-9]`).Draw(t, "core")
		pad := strings.Repeat(" ", rapid.IntRange(0, 3).Draw(t, "pad"))

		padded := domain.NewBudgetName(pad + core + pad)
		plain := domain.NewBudgetName(core)
		if padded.IsFailure() || plain.IsFailure() {
			t.Fatalf("expected both names to be valid: %q", core)
		}
		if padded.Value().Value() != plain.Value().Value() {
			t.Fatalf("trim mismatch: %q vs %q", padded.Value().Value(), plain.Value().Value())
		}
	})
}

func TestColorTag(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{name: "not in palette", input: "#000000", wantErr: "Invalid color tag"},
		{name: "in palette", input: "#277C78", want: "#277C78"},
		{name: "lower case is normalized", input: " #277c78 ", want: "#277C78"},
		{name: "empty", input: "", wantErr: "Color tag is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.NewColorTag(tt.input)
			if tt.wantErr != "" {
				require.True(t, r.IsFailure())
				assert.Equal(t, tt.wantErr, r.Error())
				return
			}
			require.True(t, r.IsSuccess())
			assert.Equal(t, tt.want, r.Value().Value())
		})
	}
}

func TestColorTag_PaletteIsAccepted(t *testing.T) {
	p := domain.Palette()
	require.Len(t, p, 15)
	for _, c := range p {
		r := domain.NewColorTag(c.Hex)
		require.True(t, r.IsSuccess(), c.Hex)
		assert.Equal(t, c.Name, r.Value().ColorName())
	}
	assert.Equal(t, "Green", p[0].Name)
}

func TestEmoji(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "plain text", input: "abc", wantErr: "Only emoji characters are allowed"},
		{name: "single emoji", input: "🛒"},
		{name: "trimmed", input: "  🛒 "},
		{name: "empty", input: "", wantErr: "Emoji is required"},
		{name: "mixed", input: "🛒a", wantErr: "Only emoji characters are allowed"},
		{name: "zwj family", input: "👨‍👩‍👧"},
		{name: "skin tone", input: "👍🏽"},
		{name: "flag", input: "🇩🇪"},
		{name: "keycap", input: "1️⃣"},
		{name: "bare digit", input: "1", wantErr: "Only emoji characters are allowed"},
		{name: "lone skin tone", input: "🏻", wantErr: "Only emoji characters are allowed"},
		{name: "lone regional indicator", input: "🇩", wantErr: "Only emoji characters are allowed"},
		{name: "three regional indicators", input: "🇩🇪🇫", wantErr: "Only emoji characters are allowed"},
		{name: "copyright sign", input: "©", wantErr: "Only emoji characters are allowed"},
		{name: "trade mark", input: "™", wantErr: "Only emoji characters are allowed"},
		{name: "bare arrow", input: "↔", wantErr: "Only emoji characters are allowed"},
		{name: "text presentation selector", input: "☕︎", wantErr: "Only emoji characters are allowed"},
		{name: "arrow with emoji selector", input: "↔️"},
		{name: "default emoji presentation", input: "⚡"},
		{name: "heart with selector", input: "❤️"},
		{name: "ten emoji", input: strings.Repeat("🍕", 10)},
		{name: "eleven emoji", input: strings.Repeat("🍕", 11), wantErr: "Too many emoji"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.NewEmoji(tt.input)
			if tt.wantErr != "" {
				require.True(t, r.IsFailure())
				assert.Equal(t, tt.wantErr, r.Error())
				return
			}
			assert.True(t, r.IsSuccess())
		})
	}
}

func TestIDs(t *testing.T) {
	assert.Equal(t, "Transaction ID is required", domain.NewTransactionID("").Error())
	assert.Equal(t, "Budget ID is required", domain.NewBudgetID("   ").Error())
	assert.True(t, domain.NewPotID(strings.Repeat("a", domain.MaxIDLength)).IsSuccess())
	assert.True(t, domain.NewPotID(strings.Repeat("a", domain.MaxIDLength+1)).IsFailure())
	assert.Equal(t, "abc", domain.NewCategoryID(" abc ").Value().Value())

	a, b := domain.GenerateIncomeID(), domain.GenerateIncomeID()
	assert.Len(t, a.Value(), 36)
	assert.False(t, a.Equals(b))
}

func TestTransactionType(t *testing.T) {
	assert.Equal(t, domain.TransactionTypeIncome, domain.NewTransactionType(" Income ").Value())
	assert.Equal(t, domain.TransactionTypeExpense, domain.NewTransactionType("expense").Value())
	assert.Equal(t, "Transaction type must be either income or expense", domain.NewTransactionType("transfer").Error())
	assert.Equal(t, int64(-1), domain.TransactionTypeExpense.Sign())
	assert.Equal(t, int64(1), domain.TransactionTypeIncome.Sign())
}

func TestMoney(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "zero", input: "0"},
		{name: "two decimals", input: "10.25"},
		{name: "trailing zeros are not digits", input: "10.500"},
		{name: "negative", input: "-1", wantErr: "Amount cannot be negative"},
		{name: "above max", input: "1000000000.01", wantErr: "Amount cannot exceed 1000000000"},
		{name: "max", input: "1000000000"},
		{name: "three decimals", input: "0.125", wantErr: "Amount cannot have more than 2 decimal places"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.NewMoney(decimal.RequireFromString(tt.input))
			if tt.wantErr != "" {
				require.True(t, r.IsFailure())
				assert.Equal(t, tt.wantErr, r.Error())
				return
			}
			assert.True(t, r.IsSuccess())
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	ten := domain.MoneyFromFloat(10).Value()
	three := domain.MoneyFromFloat(3.5).Value()

	assert.Equal(t, "13.50", ten.Add(three).String())
	assert.Equal(t, "6.50", ten.Subtract(three).Value().String())
	assert.Equal(t, "Insufficient amount", three.Subtract(ten).Error())
	assert.True(t, ten.Negate().Equal(decimal.NewFromInt(-10)))
	assert.True(t, ten.GreaterThan(three))
	assert.True(t, three.LessThanOrEqual(three))
	assert.True(t, domain.ZeroMoney().IsZero())

	ceiling := domain.NewMoney(domain.MaxMoneyAmount).Value()
	assert.Panics(t, func() { ceiling.Add(domain.MoneyFromFloat(0.01).Value()) })
}

func TestMoney_ValidityProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cents := rapid.Int64Range(-1_000_000, 200_000_000_000).Draw(t, "cents")
		scale := rapid.Int32Range(0, 4).Draw(t, "scale")
		amount := decimal.New(cents, -scale)

		wantOK := !amount.IsNegative() &&
			!amount.GreaterThan(domain.MaxMoneyAmount) &&
			amount.Equal(amount.Round(2))

		if got := domain.NewMoney(amount).IsSuccess(); got != wantOK {
			t.Fatalf("NewMoney(%s) success=%v, want %v", amount, got, wantOK)
		}
	})
}

func TestMaximumSpending(t *testing.T) {
	assert.Equal(t, "Maximum spending must be greater than 0", domain.NewMaximumSpending(decimal.Zero).Error())

	m := domain.NewMaximumSpending(decimal.NewFromInt(200)).Value()
	assert.False(t, m.IsExceeded(decimal.NewFromInt(200)))
	assert.True(t, m.IsExceeded(decimal.NewFromInt(201)))
	assert.True(t, m.RemainingAmount(decimal.NewFromInt(250)).IsZero())
	assert.Equal(t, "50", m.PercentageSpent(decimal.NewFromInt(100)).String())
	assert.Equal(t, "100", m.PercentageSpent(decimal.NewFromInt(900)).String())
	assert.Equal(t, "33.33", domain.NewMaximumSpending(decimal.NewFromInt(3)).Value().PercentageSpent(decimal.NewFromInt(1)).String())
}

func TestPotTarget(t *testing.T) {
	assert.Equal(t, "Target must be at least 0.01", domain.NewPotTarget(decimal.Zero).Error())
	assert.True(t, domain.NewPotTargetWithMinimum(decimal.Zero, decimal.Zero).IsSuccess())

	target := domain.NewPotTarget(decimal.NewFromInt(100)).Value()
	assert.True(t, target.IsAchieved(decimal.NewFromInt(100)))
	assert.False(t, target.IsAchieved(decimal.NewFromInt(99)))
	assert.Equal(t, "25", target.RemainingAmount(decimal.NewFromInt(75)).String())
	assert.Equal(t, "100", target.PercentageAchieved(decimal.NewFromInt(150)).String())
}

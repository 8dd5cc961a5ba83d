package domain_test

import (
	"testing"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newTestPot(t require.TestingT, target decimal.Decimal) *domain.Pot {
	r := domain.CreatePot(domain.PotProps{Name: "Holiday", ColorTag: "#F2CDAC", Target: target})
	require.True(t, r.IsSuccess())
	return r.Value()
}

func TestCreatePot_StartsEmpty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cents := rapid.Int64Range(1, 100_000_000_000).Draw(rt, "cents")
		p := newTestPot(rt, decimal.New(cents, -2))
		if !p.TotalSaved().IsZero() {
			rt.Fatalf("new pot has %s saved", p.TotalSaved())
		}
	})
}

func TestPot_AddMoney(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		amount    string
		wantErr   string
		wantSaved string
	}{
		{name: "below minimum", start: "0", amount: "0.001", wantErr: "Amount must be at least 0.01"},
		{name: "zero", start: "0", amount: "0", wantErr: "Amount must be at least 0.01"},
		{name: "three decimals", start: "0", amount: "1.001", wantErr: "Amount cannot have more than 2 decimal places"},
		{name: "over ceiling", start: "999999999", amount: "1.01", wantErr: "Total saved cannot exceed 1000000000"},
		{name: "exactly ceiling", start: "999999999", amount: "1", wantSaved: "1000000000.00"},
		{name: "regular", start: "10", amount: "0.01", wantSaved: "10.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPot(t, decimal.NewFromInt(100))
			if start := decimal.RequireFromString(tt.start); start.IsPositive() {
				require.True(t, p.AddMoney(start).IsSuccess())
			}

			r := p.AddMoney(decimal.RequireFromString(tt.amount))
			if tt.wantErr != "" {
				require.True(t, r.IsFailure())
				assert.Equal(t, tt.wantErr, r.Error())
				assert.True(t, p.TotalSaved().Amount().Equal(decimal.RequireFromString(tt.start)))
				return
			}
			require.True(t, r.IsSuccess())
			assert.Equal(t, tt.wantSaved, p.TotalSaved().String())
		})
	}
}

func TestPot_AddThenWithdrawProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		p := newTestPot(rt, decimal.NewFromInt(1000))
		deposit := decimal.New(rapid.Int64Range(1, 10_000_000).Draw(rt, "deposit"), -2)
		if p.AddMoney(deposit).IsFailure() {
			rt.Fatalf("deposit %s rejected", deposit)
		}
		if !p.TotalSaved().Amount().Equal(deposit) {
			rt.Fatalf("saved %s, want %s", p.TotalSaved(), deposit)
		}

		withdrawal := decimal.New(rapid.Int64Range(1, 20_000_000).Draw(rt, "withdrawal"), -2)
		r := p.WithdrawMoney(withdrawal)
		if withdrawal.GreaterThan(deposit) {
			if r.IsSuccess() || r.Error() != "Insufficient funds in pot" {
				rt.Fatalf("withdrawing %s from %s should fail", withdrawal, deposit)
			}
			return
		}
		if r.IsFailure() {
			rt.Fatalf("withdrawing %s from %s failed: %s", withdrawal, deposit, r.Error())
		}
		if !p.TotalSaved().Amount().Equal(deposit.Sub(withdrawal)) {
			rt.Fatalf("saved %s, want %s", p.TotalSaved(), deposit.Sub(withdrawal))
		}
	})
}

func TestPot_UpdateTargetBelowSaved(t *testing.T) {
	p := newTestPot(t, decimal.NewFromInt(100))
	require.True(t, p.AddMoney(decimal.NewFromInt(60)).IsSuccess())

	r := p.Update(domain.PotUpdate{Target: decPtr("59.99")})
	require.True(t, r.IsFailure())
	assert.Equal(t, "Target cannot be less than the total saved amount", r.Error())

	require.True(t, p.Update(domain.PotUpdate{Target: decPtr("60")}).IsSuccess())
	assert.True(t, p.IsTargetAchieved())
	assert.True(t, p.RemainingAmount().IsZero())
	assert.Equal(t, "100", p.PercentageAchieved().String())
}

func TestPotFromDTO(t *testing.T) {
	p := newTestPot(t, decimal.NewFromInt(100))
	require.True(t, p.AddMoney(decimal.NewFromInt(25)).IsSuccess())

	r := domain.PotFromDTO(p.ToDTO())
	require.True(t, r.IsSuccess())
	assert.Equal(t, "25.00", r.Value().TotalSaved().String())
	assert.Equal(t, "25", r.Value().PercentageAchieved().String())

	dto := p.ToDTO()
	dto.ColorTag = "nope"
	assert.Equal(t, "Invalid color tag", domain.PotFromDTO(dto).Error())
}

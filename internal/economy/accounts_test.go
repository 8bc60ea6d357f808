package economy

import (
	"math"
	"testing"
)

func TestAccountsApplyChanges(t *testing.T) {
	var a Accounts
	a.ApplyChanges(10, 5)
	a.ApplyChanges(-3, 2)

	if a.Wealth != 7 {
		t.Errorf("Wealth = %d, want 7", a.Wealth)
	}
	if a.Production != 7 {
		t.Errorf("Production = %d, want 7", a.Production)
	}

	wealthDelta, productionDelta := a.Deltas()
	if wealthDelta != 7 || productionDelta != 7 {
		t.Errorf("Deltas() = (%d, %d), want (7, 7)", wealthDelta, productionDelta)
	}
	if !a.Changed() {
		t.Error("Changed() = false after mutations")
	}

	a.ResetChangeFlags()
	wealthDelta, productionDelta = a.Deltas()
	if wealthDelta != 0 || productionDelta != 0 || a.Changed() {
		t.Error("deltas not cleared by ResetChangeFlags")
	}
	if a.Wealth != 7 {
		t.Errorf("ResetChangeFlags changed wealth: %d, want 7", a.Wealth)
	}
}

func TestAccountsSatisfactionEffects(t *testing.T) {
	tests := []struct {
		name         string
		satisfaction float64
		wantDelta    int64
	}{
		{"low satisfaction penalized", 0.3, -4}, // round((0.5-0.3)*20) = 4
		{"boundary exact", 0.5, 0},
		{"high satisfaction untouched", 0.9, 0},
		{"zero satisfaction", 0.0, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Accounts{Wealth: 100}
			a.ApplySatisfactionEffects(tt.satisfaction)
			if got := a.Wealth - 100; got != tt.wantDelta {
				t.Errorf("wealth delta = %d, want %d", got, tt.wantDelta)
			}
		})
	}
}

func TestAccountsCapitalInvestment(t *testing.T) {
	var a Accounts
	a.AdjustCapitalInvestment(0.05)
	a.AdjustCapitalInvestment(0.03)
	if math.Abs(a.CapitalInvestment-0.08) > 1e-9 {
		t.Errorf("CapitalInvestment = %v, want 0.08", a.CapitalInvestment)
	}

	// Additive and unclamped: negative adjustments pass through.
	a.AdjustCapitalInvestment(-0.2)
	if math.Abs(a.CapitalInvestment-(-0.12)) > 1e-9 {
		t.Errorf("CapitalInvestment = %v, want -0.12", a.CapitalInvestment)
	}
}

func TestAccountsClampWealth(t *testing.T) {
	a := Accounts{Wealth: -5}
	a.ClampWealth()
	if a.Wealth != 0 {
		t.Errorf("Wealth after clamp = %d, want 0", a.Wealth)
	}

	a.Wealth = 12
	a.ClampWealth()
	if a.Wealth != 12 {
		t.Errorf("clamp changed positive wealth: %d, want 12", a.Wealth)
	}
}

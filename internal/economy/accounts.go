package economy

import "math"

// Accounts tracks a region's wealth and aggregate production counters plus
// the per-turn deltas observers read. ResetChangeFlags must run exactly once
// per turn after observers consume the deltas, or delta-based reporting
// double-counts.
type Accounts struct {
	Wealth            int64
	Production        int64
	CapitalInvestment float64

	wealthDelta     int64
	productionDelta int64
	changed         bool
}

// ApplyChanges adds both deltas and records them for observers.
func (a *Accounts) ApplyChanges(wealthDelta, productionDelta int64) {
	a.Wealth += wealthDelta
	a.Production += productionDelta
	a.wealthDelta += wealthDelta
	a.productionDelta += productionDelta
	a.changed = true
}

// ApplySatisfactionEffects deducts wealth when satisfaction falls below 0.5.
func (a *Accounts) ApplySatisfactionEffects(satisfaction float64) {
	if satisfaction >= 0.5 {
		return
	}
	penalty := int64(math.Round((0.5 - satisfaction) * 20))
	if penalty == 0 {
		return
	}
	a.ApplyChanges(-penalty, 0)
}

// AdjustCapitalInvestment adds to accumulated capital investment. Additive
// and unclamped.
func (a *Accounts) AdjustCapitalInvestment(amount float64) {
	a.CapitalInvestment += amount
}

// Deltas returns the wealth and production changes recorded since the last
// reset.
func (a *Accounts) Deltas() (wealth, production int64) {
	return a.wealthDelta, a.productionDelta
}

// Changed reports whether any mutation occurred since the last reset.
func (a *Accounts) Changed() bool {
	return a.changed
}

// ResetChangeFlags clears the recorded deltas after observers consume them.
func (a *Accounts) ResetChangeFlags() {
	a.wealthDelta = 0
	a.productionDelta = 0
	a.changed = false
}

// ClampWealth floors wealth at zero. Called by the scheduler when the
// configured wealth policy disallows persisting negative balances.
func (a *Accounts) ClampWealth() {
	if a.Wealth < 0 {
		a.Wealth = 0
	}
}

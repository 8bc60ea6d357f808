package economy

// ledgerEntry tracks one resource inside a region's ledger.
type ledgerEntry struct {
	amount          float64
	production      float64 // per-turn production rate
	consumption     float64 // per-turn consumption rate, recomputed each turn
	baseConsumption float64 // demand per unit of region size
}

// Ledger stores a region's resource quantities and per-turn rates.
// Entries are created lazily on first reference; zero is a valid steady
// state, so entries are never removed.
type Ledger struct {
	entries map[string]*ledgerEntry
}

// NewLedger creates an empty resource ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make(map[string]*ledgerEntry)}
}

func (l *Ledger) get(name string) *ledgerEntry {
	e, ok := l.entries[name]
	if !ok {
		e = &ledgerEntry{}
		l.entries[name] = e
	}
	return e
}

// Register creates an entry for a resource with its base consumption demand.
// Used when bulk-loading a region from the resource catalog.
func (l *Ledger) Register(name string, baseConsumption float64) {
	e := l.get(name)
	e.baseConsumption = baseConsumption
}

// Add increases a resource quantity. Non-positive amounts are ignored.
func (l *Ledger) Add(name string, amount float64) {
	if amount <= 0 {
		return
	}
	l.get(name).amount += amount
}

// Remove decreases a resource quantity. Returns false and leaves the ledger
// unchanged when the requested amount exceeds what is available.
func (l *Ledger) Remove(name string, amount float64) bool {
	if amount < 0 {
		return false
	}
	e, ok := l.entries[name]
	if !ok || amount > e.amount {
		return false
	}
	e.amount -= amount
	return true
}

// Amount returns the current quantity of a resource, 0 if absent.
func (l *Ledger) Amount(name string) float64 {
	if e, ok := l.entries[name]; ok {
		return e.amount
	}
	return 0
}

// Has reports whether the ledger tracks a resource.
func (l *Ledger) Has(name string) bool {
	_, ok := l.entries[name]
	return ok
}

// ProductionRate returns the per-turn production rate for a resource.
func (l *Ledger) ProductionRate(name string) float64 {
	if e, ok := l.entries[name]; ok {
		return e.production
	}
	return 0
}

// ConsumptionRate returns the per-turn consumption rate for a resource.
func (l *Ledger) ConsumptionRate(name string) float64 {
	if e, ok := l.entries[name]; ok {
		return e.consumption
	}
	return 0
}

// SetProductionRate replaces the production rate for a resource.
func (l *Ledger) SetProductionRate(name string, rate float64) {
	l.get(name).production = rate
}

// SetConsumptionRate replaces the consumption rate for a resource.
func (l *Ledger) SetConsumptionRate(name string, rate float64) {
	l.get(name).consumption = rate
}

// Amounts returns a snapshot copy of all resource quantities.
func (l *Ledger) Amounts() map[string]float64 {
	out := make(map[string]float64, len(l.entries))
	for name, e := range l.entries {
		out[name] = e.amount
	}
	return out
}

// ProductionRates returns a snapshot copy of all production rates.
func (l *Ledger) ProductionRates() map[string]float64 {
	out := make(map[string]float64, len(l.entries))
	for name, e := range l.entries {
		out[name] = e.production
	}
	return out
}

// ConsumptionRates returns a snapshot copy of all consumption rates.
func (l *Ledger) ConsumptionRates() map[string]float64 {
	out := make(map[string]float64, len(l.entries))
	for name, e := range l.entries {
		out[name] = e.consumption
	}
	return out
}

// wealthDemandCap bounds how much regional wealth can inflate consumption.
const wealthDemandCap = 2.0

// ProcessTurn recomputes consumption rates from region wealth and size, then
// applies the net production/consumption change to every tracked resource.
// Quantities never go below zero.
func (l *Ledger) ProcessTurn(wealth int64, size float64) {
	demand := 1.0 + float64(wealth)/10000.0
	if demand > wealthDemandCap {
		demand = wealthDemandCap
	}
	if demand < 0 {
		demand = 0
	}

	for _, e := range l.entries {
		if e.baseConsumption > 0 {
			e.consumption = e.baseConsumption * size * demand
		}
		e.amount += e.production - e.consumption
		if e.amount < 0 {
			e.amount = 0
		}
	}
}

// Trade allocation — deterministic, greedy, priority-ordered matching of
// regional deficits against surpluses under partner-count and radius
// constraints.
package engine

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/talgya/realm-sim/internal/region"
	"github.com/talgya/realm-sim/internal/world"
)

// surplusBuffer reserves a 20% margin over an exporter's own consumption
// that it will not trade away.
const surplusBuffer = 1.2

// tradeNoiseFloor drops transactions whose delivered amount is negligible.
const tradeNoiseFloor = 0.1

// TradeTransaction is one executed (or to-be-executed) inter-region
// transfer. Amount leaves the exporter; Delivered reaches the importer after
// transport loss.
type TradeTransaction struct {
	ID        string  `json:"id" db:"id"`
	Exporter  string  `json:"exporter" db:"exporter"`
	Importer  string  `json:"importer" db:"importer"`
	Resource  string  `json:"resource" db:"resource"`
	Amount    float64 `json:"amount" db:"amount"`
	Delivered float64 `json:"delivered" db:"delivered"`
}

// deficit is one unmet consumption need.
type deficit struct {
	resource string
	amount   float64
}

// tradeState carries the per-turn bookkeeping of the allocator.
type tradeState struct {
	// partners tracks distinct trade links formed this turn, both ways.
	partners map[string]map[string]struct{}
	// committed tracks surplus already promised per exporter and resource,
	// so sequential allocation never double-books the same units.
	committed map[string]map[string]float64
}

func newTradeState(regions []*region.Region) *tradeState {
	st := &tradeState{
		partners:  make(map[string]map[string]struct{}, len(regions)),
		committed: make(map[string]map[string]float64),
	}
	for _, r := range regions {
		st.partners[r.Name] = make(map[string]struct{})
	}
	return st
}

func (st *tradeState) linked(a, b string) bool {
	_, ok := st.partners[a][b]
	return ok
}

func (st *tradeState) link(a, b string) {
	st.partners[a][b] = struct{}{}
	st.partners[b][a] = struct{}{}
}

func (st *tradeState) commit(exporter, resource string, amount float64) {
	m, ok := st.committed[exporter]
	if !ok {
		m = make(map[string]float64)
		st.committed[exporter] = m
	}
	m[resource] += amount
}

// CalculateTrades computes this turn's trade transactions without mutating
// any ledger. Importing regions with fewer distinct deficits go first, so
// simple economies lock in partners before scarce partner slots are consumed
// by regions with many needs. All orderings carry name tie-breaks for
// determinism.
func (s *Simulation) CalculateTrades() []*TradeTransaction {
	st := newTradeState(s.Regions)

	type importer struct {
		r        *region.Region
		deficits []deficit
	}
	var importers []importer

	for _, r := range s.Regions {
		if r.Ledger == nil {
			continue
		}
		var needs []deficit
		for res, rate := range r.Ledger.ConsumptionRates() {
			if rate == 0 {
				continue
			}
			d := rate - r.Ledger.Amount(res)
			if d > 0 {
				needs = append(needs, deficit{resource: res, amount: d})
			}
		}
		if len(needs) == 0 {
			continue
		}
		// Most urgent need first.
		sort.Slice(needs, func(i, j int) bool {
			if needs[i].amount != needs[j].amount {
				return needs[i].amount > needs[j].amount
			}
			return needs[i].resource < needs[j].resource
		})
		importers = append(importers, importer{r: r, deficits: needs})
	}

	sort.Slice(importers, func(i, j int) bool {
		if len(importers[i].deficits) != len(importers[j].deficits) {
			return len(importers[i].deficits) < len(importers[j].deficits)
		}
		return importers[i].r.Name < importers[j].r.Name
	})

	var transactions []*TradeTransaction
	for _, imp := range importers {
		for _, d := range imp.deficits {
			transactions = append(transactions, s.allocateDeficit(imp.r, d, st)...)
		}
	}

	s.verifyPartnerCaps(st)
	return transactions
}

// allocateDeficit matches one region's deficit against candidate exporters.
func (s *Simulation) allocateDeficit(r *region.Region, d deficit, st *tradeState) []*TradeTransaction {
	type candidate struct {
		r       *region.Region
		surplus float64
		linked  bool
	}
	var candidates []candidate

	for _, other := range s.Regions {
		if other == r || other.Ledger == nil || !other.Ledger.Has(d.resource) {
			continue
		}

		needed := other.Ledger.ConsumptionRate(d.resource)
		available := other.Ledger.Amount(d.resource) - st.committed[other.Name][d.resource]
		if available <= needed*surplusBuffer {
			continue
		}

		if s.Config.TradeRadius > 0 && r.Position != nil && other.Position != nil {
			if world.Distance(*r.Position, *other.Position) > s.Config.TradeRadius {
				continue
			}
		}

		candidates = append(candidates, candidate{
			r:       other,
			surplus: available - needed*surplusBuffer,
			linked:  st.linked(r.Name, other.Name),
		})
	}

	// Existing partners first for stability, then largest surplus.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].linked != candidates[j].linked {
			return candidates[i].linked
		}
		if candidates[i].surplus != candidates[j].surplus {
			return candidates[i].surplus > candidates[j].surplus
		}
		return candidates[i].r.Name < candidates[j].r.Name
	})

	var transactions []*TradeTransaction
	remaining := d.amount

	for _, c := range candidates {
		if remaining <= 0 {
			break
		}
		if !c.linked {
			if len(st.partners[r.Name]) >= s.Config.MaxTradingPartners ||
				len(st.partners[c.r.Name]) >= s.Config.MaxTradingPartners {
				continue
			}
		}

		amount := math.Min(c.surplus, remaining)
		delivered := amount * s.Config.TradeEfficiency
		if delivered < tradeNoiseFloor {
			continue
		}

		transactions = append(transactions, &TradeTransaction{
			ID:        uuid.NewString(),
			Exporter:  c.r.Name,
			Importer:  r.Name,
			Resource:  d.resource,
			Amount:    amount,
			Delivered: delivered,
		})
		st.link(r.Name, c.r.Name)
		st.commit(c.r.Name, d.resource, amount)
		remaining -= delivered
	}

	return transactions
}

// ExecuteTrades applies transactions sequentially: the exporter loses the
// full traded amount, the importer receives the delivered amount. The
// difference is transport loss, charged to nobody.
func (s *Simulation) ExecuteTrades(transactions []*TradeTransaction) {
	for _, tx := range transactions {
		exporter := s.RegionIndex[tx.Exporter]
		importer := s.RegionIndex[tx.Importer]
		if exporter == nil || importer == nil || exporter.Ledger == nil || importer.Ledger == nil {
			slog.Warn("trade references missing region", "exporter", tx.Exporter, "importer", tx.Importer)
			continue
		}
		if !exporter.Ledger.Remove(tx.Resource, tx.Amount) {
			// Allocation promised more than the exporter holds. Surface the
			// defect; never force a ledger negative.
			slog.Error("trade exceeds exporter stock",
				"exporter", tx.Exporter, "resource", tx.Resource, "amount", tx.Amount)
			continue
		}
		importer.Ledger.Add(tx.Resource, tx.Delivered)
	}

	if len(transactions) > 0 {
		s.EmitEvent(fmt.Sprintf("%d trade transactions executed", len(transactions)), "trade")
	}
}

// verifyPartnerCaps reports any region whose link count exceeds the cap.
// A violation indicates a defect in allocation; it is reported, not repaired.
func (s *Simulation) verifyPartnerCaps(st *tradeState) {
	for name, set := range st.partners {
		if len(set) > s.Config.MaxTradingPartners {
			slog.Error("trading partner cap exceeded",
				"region", name, "partners", len(set), "cap", s.Config.MaxTradingPartners)
			s.EmitEvent(fmt.Sprintf("partner cap exceeded for %s (%d > %d)",
				name, len(set), s.Config.MaxTradingPartners), "trade")
		}
	}
}

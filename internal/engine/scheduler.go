// Turn scheduling — the fixed per-turn pipeline across all regions.
package engine

import (
	"errors"
	"math"

	"github.com/talgya/realm-sim/internal/region"
)

// Phase identifies where the scheduler is within a turn.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRegions
	PhaseTrade
	PhaseNations
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRegions:
		return "ProcessingRegions"
	case PhaseTrade:
		return "ProcessingTrade"
	case PhaseNations:
		return "ProcessingNations"
	default:
		return "Unknown"
	}
}

// Phase returns the scheduler's current phase.
func (s *Simulation) Phase() Phase {
	return s.phase
}

// Configuration errors surfaced before any turn runs.
var (
	ErrNoCatalog = errors.New("simulation requires a loaded resource catalog")
	ErrNoRegions = errors.New("simulation requires at least one region")
)

// AdvanceTurn runs one complete turn synchronously: every region's resource,
// production, population, and accounts update in fixed order, then global
// trade allocation, then nation rollup and effect expiry, then one batch
// observer notification. Refuses to run without a catalog and regions.
func (s *Simulation) AdvanceTurn() error {
	if s.Catalog == nil || s.Catalog.Len() == 0 {
		return ErrNoCatalog
	}
	if len(s.Regions) == 0 {
		return ErrNoRegions
	}

	s.Turn++
	// Drop events observers have already seen; events emitted between turns
	// (narrative outcomes) carry over into this turn's feed.
	s.Events = append([]Event(nil), s.Events[s.eventsNotified:]...)
	s.eventsNotified = 0

	s.phase = PhaseRegions
	for _, r := range s.Regions {
		s.processRegion(r)
	}

	s.phase = PhaseTrade
	transactions := s.CalculateTrades()
	s.ExecuteTrades(transactions)
	s.LastTrades = transactions

	s.phase = PhaseNations
	s.aggregateNations()

	s.expireEffects()

	s.phase = PhaseIdle
	s.notifyObservers()
	s.eventsNotified = len(s.Events)

	// Deltas were consumed by observers; clear them for the next turn.
	for _, r := range s.Regions {
		r.Accounts.ResetChangeFlags()
	}

	return nil
}

// processRegion runs one region's sub-pipeline. A region lacking a ledger
// degrades gracefully: resource, production, and satisfaction contributions
// are skipped, never aborting the turn.
func (s *Simulation) processRegion(r *region.Region) {
	if r.Ledger != nil {
		r.Ledger.ProcessTurn(r.Accounts.Wealth, r.Size)
	}

	units, value := s.processProduction(r)

	if r.Ledger != nil {
		r.UpdateSatisfaction(s.needRatios(r))
	}
	r.UpdatePopulation()

	wealthDelta := int64(math.Round(value * s.Config.WealthPerProduction))
	r.Accounts.ApplyChanges(wealthDelta, int64(math.Round(units)))
	r.Accounts.ApplySatisfactionEffects(r.Satisfaction)

	if !s.Config.AllowNegativeWealth {
		r.Accounts.ClampWealth()
	}
}

// needRatios computes per-resource fulfillment ratios min(1, available/needed)
// for every resource the region consumes.
func (s *Simulation) needRatios(r *region.Region) map[string]float64 {
	ratios := make(map[string]float64)
	for res, needed := range r.Ledger.ConsumptionRates() {
		if needed <= 0 {
			continue
		}
		ratio := r.Ledger.Amount(res) / needed
		if ratio > 1 {
			ratio = 1
		}
		ratios[res] = ratio
	}
	return ratios
}

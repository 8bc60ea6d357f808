// Production — base raw-resource rates from labor, terrain, and capital,
// plus active recipe processing with multi-turn progress.
package engine

import (
	"log/slog"

	"github.com/talgya/realm-sim/internal/economy"
	"github.com/talgya/realm-sim/internal/region"
	"github.com/talgya/realm-sim/internal/world"
)

// terrainSignificance is the threshold above which a terrain sector
// multiplier affects base production.
const terrainSignificance = 1.2

// processProduction updates the region's base production rates and runs every
// active recipe. Returns the units and value produced by recipes plus base
// rates this turn, feeding the region's production and wealth counters.
func (s *Simulation) processProduction(r *region.Region) (units, value float64) {
	if r.Ledger == nil {
		return 0, 0
	}

	units, value = s.updateBaseRates(r)

	for _, ar := range r.Active {
		rec := s.Catalog.Recipe(ar.Name)
		if rec == nil {
			// Recipe referencing an unknown or removed entry: skip, not fatal.
			slog.Warn("active recipe not in catalog", "region", r.Name, "recipe", ar.Name)
			continue
		}
		outDef := s.Catalog.Definition(rec.Output)
		if outDef == nil {
			slog.Warn("recipe output not in catalog", "region", r.Name, "recipe", rec.Name, "output", rec.Output)
			continue
		}

		if !s.canProduce(r, rec) {
			continue
		}

		if rec.ProductionTime <= 1 {
			u, v := produce(r, rec, outDef)
			units += u
			value += v
			continue
		}

		// Multi-turn recipe: accumulate efficiency as progress, produce once
		// the cycle completes, then start over.
		ar.Progress += r.Efficiency
		if ar.Progress >= float64(rec.ProductionTime) {
			u, v := produce(r, rec, outDef)
			units += u
			value += v
			ar.Progress = 0
		}
	}

	return units, value
}

// canProduce reports whether the region holds every recipe input and the
// infrastructure gate passes. Input lines naming the same resource are
// required in aggregate, so split lines cannot pass individually while
// failing together.
func (s *Simulation) canProduce(r *region.Region, rec *economy.Recipe) bool {
	required := make(map[string]float64, len(rec.Inputs))
	for _, in := range rec.Inputs {
		if in.Amount <= 0 {
			continue
		}
		required[in.Resource] += in.Amount
	}
	for res, amount := range required {
		if r.Ledger.Amount(res) < amount {
			return false
		}
	}
	return infrastructureSatisfied(r, rec)
}

// infrastructureSatisfied gates recipes on regional infrastructure.
// Infrastructure levels are not yet modeled; the seam stays so recipes can
// declare requirements ahead of that system.
func infrastructureSatisfied(r *region.Region, rec *economy.Recipe) bool {
	return true
}

// produce consumes flagged inputs and adds the recipe output scaled by the
// region's efficiency. All-or-nothing: required totals are verified before
// any removal, so a shortfall leaves the ledger untouched.
func produce(r *region.Region, rec *economy.Recipe, outDef *economy.Definition) (units, value float64) {
	consumed := make(map[string]float64, len(rec.Inputs))
	for _, in := range rec.Inputs {
		if in.Consumed && in.Amount > 0 {
			consumed[in.Resource] += in.Amount
		}
	}
	for res, amount := range consumed {
		if r.Ledger.Amount(res) < amount {
			slog.Warn("recipe inputs short at production", "region", r.Name, "recipe", rec.Name, "input", res)
			return 0, 0
		}
	}
	for res, amount := range consumed {
		r.Ledger.Remove(res, amount)
	}

	out := rec.OutputAmount * r.Efficiency
	r.Ledger.Add(rec.Output, out)
	return out, out * outDef.BaseValue
}

// updateBaseRates recomputes non-recipe production rates for raw resources
// from category baselines, terrain sector multipliers, labor allocation, and
// capital investment. Returns the total units and value those rates add this
// turn.
func (s *Simulation) updateBaseRates(r *region.Region) (units, value float64) {
	for _, def := range s.Catalog.Definitions() {
		if !def.IsRaw {
			continue
		}

		rate := def.BaseValue * categoryBaseline(def.Category)

		sector := sectorForKind(def.Kind)
		if mult := r.Terrain.MultiplierForSector(sector); mult > terrainSignificance {
			rate *= mult
		}
		if len(r.LaborAllocation) > 0 {
			rate *= r.LaborAllocation[sector]
		}
		rate *= 1 + r.Accounts.CapitalInvestment*0.01
		rate *= r.Efficiency

		r.Ledger.SetProductionRate(def.Name, rate)
		units += rate
		value += rate * def.BaseValue
	}
	return units, value
}

// categoryBaseline scales base production by economic tier.
func categoryBaseline(c economy.Category) float64 {
	switch c {
	case economy.CategoryPrimary:
		return 5
	case economy.CategorySecondary:
		return 2.5
	case economy.CategoryTertiary:
		return 1
	default:
		return 0
	}
}

// sectorForKind maps a resource kind to the labor sector that produces it.
func sectorForKind(k economy.Kind) string {
	switch k {
	case economy.KindFood:
		return world.SectorAgriculture
	case economy.KindMaterial:
		return world.SectorIndustry
	case economy.KindWealth:
		return world.SectorCommerce
	default:
		return world.SectorServices
	}
}

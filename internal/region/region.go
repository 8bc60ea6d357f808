// Package region defines the smallest simulated economic unit: a named
// territory owned by a nation, with its own resources, labor pool, and
// accounts.
package region

import (
	"github.com/talgya/realm-sim/internal/economy"
	"github.com/talgya/realm-sim/internal/world"
)

// ActiveRecipe tracks one activated recipe and its accumulated progress
// toward a multi-turn production cycle.
type ActiveRecipe struct {
	Name     string  `json:"name"`
	Progress float64 `json:"progress"`
}

// Region is a semi-autonomous economic unit keyed by name.
type Region struct {
	Name       string `json:"name"`
	NationName string `json:"nation"` // weak reference, resolved by the simulation

	// Spatial data. Position is optional: regions without one are exempt
	// from distance-based trade filtering.
	Position *world.Position `json:"position,omitempty"`
	Terrain  *world.Terrain  `json:"-"`

	// Population and labor.
	Labor           int                `json:"labor"` // never negative
	LaborAllocation map[string]float64 `json:"labor_allocation"`
	Satisfaction    float64            `json:"satisfaction"` // always in [0, 1]

	// Production parameters.
	Efficiency float64 `json:"efficiency"` // production efficiency, > 0
	Size       float64 `json:"size"`       // consumption scale scalar

	// Owned sub-components.
	Accounts economy.Accounts `json:"accounts"`
	Ledger   *economy.Ledger  `json:"-"`
	Active   []*ActiveRecipe  `json:"active_recipes"`
}

// New creates a region with neutral defaults and an empty ledger.
func New(name, nationName string) *Region {
	return &Region{
		Name:            name,
		NationName:      nationName,
		Labor:           100,
		LaborAllocation: make(map[string]float64),
		Satisfaction:    0.5,
		Efficiency:      1.0,
		Size:            1.0,
		Ledger:          economy.NewLedger(),
	}
}

// ActivateRecipe adds a recipe to the active set. Idempotent: activating an
// already-active recipe keeps its progress.
func (r *Region) ActivateRecipe(name string) {
	for _, ar := range r.Active {
		if ar.Name == name {
			return
		}
	}
	r.Active = append(r.Active, &ActiveRecipe{Name: name})
}

// DeactivateRecipe removes a recipe from the active set, discarding any
// accumulated progress. Idempotent.
func (r *Region) DeactivateRecipe(name string) {
	for i, ar := range r.Active {
		if ar.Name == name {
			r.Active = append(r.Active[:i], r.Active[i+1:]...)
			return
		}
	}
}

// ActiveRecipe returns the active-recipe state for a name, or nil.
func (r *Region) ActiveRecipe(name string) *ActiveRecipe {
	for _, ar := range r.Active {
		if ar.Name == name {
			return ar
		}
	}
	return nil
}

// SetLaborAllocation sets a sector's labor fraction, clamped to [0, 1].
// Fractions across sectors are not normalized: they may collectively exceed
// or undershoot 1.0, which is accepted simulation behavior.
func (r *Region) SetLaborAllocation(sector string, fraction float64) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	r.LaborAllocation[sector] = fraction
}

// AdjustSatisfaction shifts satisfaction by delta, clamped to [0, 1].
func (r *Region) AdjustSatisfaction(delta float64) {
	r.Satisfaction += delta
	if r.Satisfaction < 0 {
		r.Satisfaction = 0
	}
	if r.Satisfaction > 1 {
		r.Satisfaction = 1
	}
}

// Package engine drives the per-turn simulation pipeline: resource
// processing, production, population feedback, trade allocation, and
// nation rollup.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/talgya/realm-sim/internal/economy"
	"github.com/talgya/realm-sim/internal/nation"
	"github.com/talgya/realm-sim/internal/region"
	"github.com/talgya/realm-sim/internal/world"
)

// Config holds the simulation tuning knobs.
type Config struct {
	// TradeEfficiency is the fraction of a traded amount actually delivered
	// (transport loss). Must be in (0, 1].
	TradeEfficiency float64

	// MaxTradingPartners caps distinct trade partners per region per turn,
	// enforced symmetrically.
	MaxTradingPartners int

	// TradeRadius limits trade to regions within this Euclidean distance.
	// 0 disables radius filtering. Regions without positions are always
	// exempt.
	TradeRadius float64

	// AllowNegativeWealth controls whether regional wealth may persist
	// below zero after a turn settles.
	AllowNegativeWealth bool

	// WealthPerProduction converts produced value into wealth each turn.
	WealthPerProduction float64
}

// DefaultConfig returns the baseline simulation configuration.
func DefaultConfig() Config {
	return Config{
		TradeEfficiency:     0.8,
		MaxTradingPartners:  3,
		TradeRadius:         0,
		AllowNegativeWealth: false,
		WealthPerProduction: 0.1,
	}
}

// Validate reports the first configuration defect found.
func (c Config) Validate() error {
	if c.TradeEfficiency <= 0 || c.TradeEfficiency > 1 {
		return fmt.Errorf("trade efficiency %.3f outside (0, 1]", c.TradeEfficiency)
	}
	if c.MaxTradingPartners < 1 {
		return fmt.Errorf("max trading partners %d must be at least 1", c.MaxTradingPartners)
	}
	if c.TradeRadius < 0 {
		return fmt.Errorf("trade radius %.3f must not be negative", c.TradeRadius)
	}
	if c.WealthPerProduction < 0 {
		return fmt.Errorf("wealth per production %.3f must not be negative", c.WealthPerProduction)
	}
	return nil
}

// Event is a notable occurrence in the simulation.
type Event struct {
	Turn        uint64 `json:"turn" db:"turn"`
	Description string `json:"description" db:"description"`
	Category    string `json:"category" db:"category"` // "trade", "population", "effect", "decision"
}

// Decision is a named narrative decision recorded against the simulation.
type Decision struct {
	ID     string `json:"id" db:"id"`
	Turn   uint64 `json:"turn" db:"turn"`
	Name   string `json:"name" db:"name"`
	Detail string `json:"detail,omitempty" db:"detail"`
}

// Simulation owns the region registry, nations, resource catalog, terrain
// catalog, and configuration. It replaces any notion of global state: every
// collaborator receives the Simulation by reference.
type Simulation struct {
	Regions     []*region.Region
	RegionIndex map[string]*region.Region

	Nations     []*nation.Nation
	NationIndex map[string]*nation.Nation

	Catalog  *economy.Catalog
	Terrains map[string]*world.Terrain

	Config Config

	// Per-turn state.
	Turn       uint64
	LastTrades []*TradeTransaction // executed transactions, cleared each trade phase
	Effects    []*TemporaryEffect
	Decisions  []Decision
	Events     []Event

	phase     Phase
	observers []Observer

	// eventsNotified counts events already delivered to observers, so events
	// emitted between turns survive into the next turn's feed.
	eventsNotified int
}

// NewSimulation creates an empty simulation around a resource catalog.
func NewSimulation(catalog *economy.Catalog, cfg Config) *Simulation {
	return &Simulation{
		RegionIndex: make(map[string]*region.Region),
		NationIndex: make(map[string]*nation.Nation),
		Catalog:     catalog,
		Terrains:    make(map[string]*world.Terrain),
		Config:      cfg,
	}
}

// AddTerrain registers a terrain type by name.
func (s *Simulation) AddTerrain(t *world.Terrain) {
	s.Terrains[t.Name] = t
}

// AddNation registers a nation. Duplicate names are rejected.
func (s *Simulation) AddNation(n *nation.Nation) error {
	if _, dup := s.NationIndex[n.Name]; dup {
		return fmt.Errorf("nation %q already registered", n.Name)
	}
	s.Nations = append(s.Nations, n)
	s.NationIndex[n.Name] = n
	return nil
}

// AddRegion registers a region, binds catalog entries into its ledger, and
// links it into its owning nation's member list.
func (s *Simulation) AddRegion(r *region.Region) error {
	if _, dup := s.RegionIndex[r.Name]; dup {
		return fmt.Errorf("region %q already registered", r.Name)
	}

	if r.Ledger != nil && s.Catalog != nil {
		bindCatalog(r.Ledger, s.Catalog)
	}

	s.Regions = append(s.Regions, r)
	s.RegionIndex[r.Name] = r

	if r.NationName != "" {
		if n, ok := s.NationIndex[r.NationName]; ok {
			n.AddRegion(r.Name)
		} else {
			slog.Warn("region references unknown nation", "region", r.Name, "nation", r.NationName)
		}
	}
	return nil
}

// Region returns a region by name, or nil.
func (s *Simulation) Region(name string) *region.Region {
	return s.RegionIndex[name]
}

// Nation returns a nation by name, or nil.
func (s *Simulation) Nation(name string) *nation.Nation {
	return s.NationIndex[name]
}

// EmitEvent appends an event to the per-turn feed.
func (s *Simulation) EmitEvent(description, category string) {
	s.Events = append(s.Events, Event{
		Turn:        s.Turn,
		Description: description,
		Category:    category,
	})
}

// RecordDecision stores a named narrative decision and returns its id.
func (s *Simulation) RecordDecision(name, detail string) string {
	d := Decision{
		ID:     uuid.NewString(),
		Turn:   s.Turn,
		Name:   name,
		Detail: detail,
	}
	s.Decisions = append(s.Decisions, d)
	s.EmitEvent(fmt.Sprintf("decision recorded: %s", name), "decision")
	return d.ID
}

// bindCatalog registers ledger entries for every catalog resource with its
// base consumption demand.
func bindCatalog(l *economy.Ledger, c *economy.Catalog) {
	for _, def := range c.Definitions() {
		l.Register(def.Name, baseDemand(def.Kind))
	}
}

// baseDemand maps a resource kind to its per-size consumption demand.
// Wealth-kind resources are stores of value, not consumed.
func baseDemand(k economy.Kind) float64 {
	switch k {
	case economy.KindFood:
		return 2.0
	case economy.KindMaterial:
		return 0.5
	case economy.KindWealth:
		return 0
	default:
		return 0.25
	}
}

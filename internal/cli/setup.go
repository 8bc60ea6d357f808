// Simulation setup — builds a populated simulation from configuration and
// the generated scenario.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/talgya/realm-sim/internal/config"
	"github.com/talgya/realm-sim/internal/engine"
	"github.com/talgya/realm-sim/internal/nation"
	"github.com/talgya/realm-sim/internal/region"
	"github.com/talgya/realm-sim/internal/world"
)

// nationColors is the display palette cycled across nations.
var nationColors = []string{"#c0392b", "#2980b9", "#27ae60", "#8e44ad", "#d35400", "#16a085"}

// terrainAllocations seeds labor allocation by terrain so generated regions
// start with sensible sector weights.
var terrainAllocations = map[string]map[string]float64{
	"Plains":   {world.SectorAgriculture: 0.6, world.SectorIndustry: 0.2, world.SectorCommerce: 0.2},
	"Forest":   {world.SectorAgriculture: 0.3, world.SectorIndustry: 0.5, world.SectorCommerce: 0.1},
	"Mountain": {world.SectorAgriculture: 0.1, world.SectorIndustry: 0.7, world.SectorCommerce: 0.1},
	"Coast":    {world.SectorAgriculture: 0.4, world.SectorIndustry: 0.1, world.SectorCommerce: 0.5},
	"Desert":   {world.SectorAgriculture: 0.2, world.SectorIndustry: 0.2, world.SectorCommerce: 0.4},
	"Tundra":   {world.SectorAgriculture: 0.3, world.SectorIndustry: 0.4, world.SectorCommerce: 0.1},
}

// buildSimulation constructs a simulation from config: catalog, terrains,
// nations, and generated regions with starting stocks.
func buildSimulation(cfg *config.File) (*engine.Simulation, error) {
	catalog, err := cfg.BuildCatalog()
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	sim := engine.NewSimulation(catalog, cfg.EngineConfig())
	if err := sim.Config.Validate(); err != nil {
		return nil, fmt.Errorf("simulation config: %w", err)
	}

	for _, t := range cfg.BuildTerrains() {
		sim.AddTerrain(t)
	}

	for i, name := range cfg.Scenario.Nations {
		n := nation.New(name, nationColors[i%len(nationColors)])
		if err := sim.AddNation(n); err != nil {
			return nil, err
		}
	}

	seeds := world.GenerateScenario(cfg.GenConfig())
	for _, seed := range seeds {
		r := region.New(seed.Name, seed.Nation)
		pos := seed.Position
		r.Position = &pos
		r.Terrain = sim.Terrains[seed.TerrainName]
		if r.Terrain == nil {
			slog.Warn("generated terrain missing from catalog", "region", seed.Name, "terrain", seed.TerrainName)
		}

		for sector, fraction := range terrainAllocations[seed.TerrainName] {
			r.SetLaborAllocation(sector, fraction)
		}

		seedStocks(r, catalogStarting(cfg))
		r.Accounts.Wealth = 100

		if err := sim.AddRegion(r); err != nil {
			return nil, err
		}
	}

	slog.Info("simulation ready",
		"regions", len(sim.Regions),
		"nations", len(sim.Nations),
		"resources", catalog.Len(),
	)
	return sim, nil
}

// catalogStarting returns starting stock per raw resource.
func catalogStarting(cfg *config.File) map[string]float64 {
	stocks := make(map[string]float64)
	for _, def := range cfg.Resources {
		if def.IsRaw {
			stocks[def.Name] = def.BaseValue * 10
		}
	}
	return stocks
}

func seedStocks(r *region.Region, stocks map[string]float64) {
	for name, amount := range stocks {
		r.Ledger.Add(name, amount)
	}
}

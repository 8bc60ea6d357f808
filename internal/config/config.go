// Package config loads the simulation configuration, resource catalog, and
// terrain catalog from a single YAML file, validating everything before the
// first turn ever runs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/realm-sim/internal/economy"
	"github.com/talgya/realm-sim/internal/engine"
	"github.com/talgya/realm-sim/internal/world"
)

// Sim holds the turn-pipeline tuning knobs.
type Sim struct {
	TradeEfficiency     float64 `yaml:"trade_efficiency"`
	MaxTradingPartners  int     `yaml:"max_trading_partners"`
	TradeRadius         float64 `yaml:"trade_radius"`
	AllowNegativeWealth bool    `yaml:"allow_negative_wealth"`
	WealthPerProduction float64 `yaml:"wealth_per_production"`
}

// ResourceDef mirrors one catalog entry in YAML form.
type ResourceDef struct {
	Name      string      `yaml:"name"`
	Category  string      `yaml:"category"` // Primary, Secondary, Tertiary, Abstract
	Kind      string      `yaml:"kind"`     // Food, Material, Wealth, Other
	BaseValue float64     `yaml:"base_value"`
	IsRaw     bool        `yaml:"is_raw"`
	Recipes   []RecipeDef `yaml:"recipes,omitempty"`
}

// RecipeDef mirrors one recipe in YAML form.
type RecipeDef struct {
	Name           string     `yaml:"name"`
	Inputs         []InputDef `yaml:"inputs"`
	Output         string     `yaml:"output"`
	OutputAmount   float64    `yaml:"output_amount"`
	ProductionTime int        `yaml:"production_time"`
	Infrastructure string     `yaml:"infrastructure,omitempty"`
}

// InputDef mirrors one recipe input in YAML form.
type InputDef struct {
	Resource string  `yaml:"resource"`
	Amount   float64 `yaml:"amount"`
	Consumed bool    `yaml:"consumed"`
}

// TerrainDef mirrors one terrain type in YAML form.
type TerrainDef struct {
	Name        string             `yaml:"name"`
	Multipliers map[string]float64 `yaml:"multipliers"`
}

// Scenario describes the generated demo world.
type Scenario struct {
	Seed    int64    `yaml:"seed"`
	Regions int      `yaml:"regions"`
	Extent  float64  `yaml:"extent"`
	Nations []string `yaml:"nations"`
}

// File is the top-level configuration document.
type File struct {
	Simulation Sim           `yaml:"simulation"`
	Resources  []ResourceDef `yaml:"resources"`
	Terrains   []TerrainDef  `yaml:"terrains"`
	Scenario   Scenario      `yaml:"scenario"`
}

// Load reads and validates a configuration file. A missing resource catalog
// is a fatal configuration error: the simulation refuses to run on empty
// state.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	f := Default()
	if err := yaml.Unmarshal(raw, f); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return f, nil
}

// Validate checks the whole document, surfacing the first defect found.
func (f *File) Validate() error {
	if err := f.EngineConfig().Validate(); err != nil {
		return err
	}
	if len(f.Resources) == 0 {
		return fmt.Errorf("resource catalog is empty")
	}
	for _, r := range f.Resources {
		if _, ok := economy.ParseCategory(r.Category); !ok {
			return fmt.Errorf("resource %q has unknown category %q", r.Name, r.Category)
		}
		if _, ok := economy.ParseKind(r.Kind); !ok {
			return fmt.Errorf("resource %q has unknown kind %q", r.Name, r.Kind)
		}
	}
	if f.Scenario.Regions < 1 {
		return fmt.Errorf("scenario needs at least one region")
	}
	// Catalog construction runs the cross-reference checks (recipe outputs,
	// unknown inputs, duplicates).
	if _, err := f.BuildCatalog(); err != nil {
		return err
	}
	return nil
}

// EngineConfig converts the YAML simulation section into the engine's form.
func (f *File) EngineConfig() engine.Config {
	return engine.Config{
		TradeEfficiency:     f.Simulation.TradeEfficiency,
		MaxTradingPartners:  f.Simulation.MaxTradingPartners,
		TradeRadius:         f.Simulation.TradeRadius,
		AllowNegativeWealth: f.Simulation.AllowNegativeWealth,
		WealthPerProduction: f.Simulation.WealthPerProduction,
	}
}

// BuildCatalog constructs the validated resource catalog.
func (f *File) BuildCatalog() (*economy.Catalog, error) {
	defs := make([]*economy.Definition, 0, len(f.Resources))
	for _, r := range f.Resources {
		category, _ := economy.ParseCategory(r.Category)
		kind, _ := economy.ParseKind(r.Kind)

		def := &economy.Definition{
			Name:      r.Name,
			Category:  category,
			Kind:      kind,
			BaseValue: r.BaseValue,
			IsRaw:     r.IsRaw,
		}
		for _, rec := range r.Recipes {
			inputs := make([]economy.RecipeInput, 0, len(rec.Inputs))
			for _, in := range rec.Inputs {
				inputs = append(inputs, economy.RecipeInput{
					Resource: in.Resource,
					Amount:   in.Amount,
					Consumed: in.Consumed,
				})
			}
			def.Recipes = append(def.Recipes, economy.Recipe{
				Name:           rec.Name,
				Inputs:         inputs,
				Output:         rec.Output,
				OutputAmount:   rec.OutputAmount,
				ProductionTime: rec.ProductionTime,
				Infrastructure: rec.Infrastructure,
			})
		}
		defs = append(defs, def)
	}
	return economy.NewCatalog(defs)
}

// BuildTerrains constructs the terrain catalog, falling back to the built-in
// set when the document defines none.
func (f *File) BuildTerrains() []*world.Terrain {
	if len(f.Terrains) == 0 {
		return world.DefaultTerrains()
	}
	terrains := make([]*world.Terrain, 0, len(f.Terrains))
	for _, t := range f.Terrains {
		terrains = append(terrains, &world.Terrain{
			Name:        t.Name,
			Multipliers: t.Multipliers,
		})
	}
	return terrains
}

// GenConfig converts the scenario section into world generation parameters.
func (f *File) GenConfig() world.GenConfig {
	return world.GenConfig{
		Seed:    f.Scenario.Seed,
		Regions: f.Scenario.Regions,
		Extent:  f.Scenario.Extent,
		Nations: f.Scenario.Nations,
	}
}

// Default returns the built-in configuration used when no file is supplied.
func Default() *File {
	return &File{
		Simulation: Sim{
			TradeEfficiency:     0.8,
			MaxTradingPartners:  3,
			TradeRadius:         0,
			AllowNegativeWealth: false,
			WealthPerProduction: 0.1,
		},
		Resources: DefaultResources(),
		Scenario: Scenario{
			Seed:    42,
			Regions: 12,
			Extent:  100,
			Nations: []string{"Aldmark", "Vessar", "Korune"},
		},
	}
}

// DefaultResources is the built-in resource catalog.
func DefaultResources() []ResourceDef {
	return []ResourceDef{
		{Name: "Grain", Category: "Primary", Kind: "Food", BaseValue: 2, IsRaw: true},
		{Name: "Fish", Category: "Primary", Kind: "Food", BaseValue: 2, IsRaw: true},
		{Name: "Timber", Category: "Primary", Kind: "Material", BaseValue: 3, IsRaw: true},
		{Name: "IronOre", Category: "Primary", Kind: "Material", BaseValue: 4, IsRaw: true},
		{Name: "Stone", Category: "Primary", Kind: "Material", BaseValue: 3, IsRaw: true},
		{Name: "Iron", Category: "Secondary", Kind: "Material", BaseValue: 8, Recipes: []RecipeDef{
			{
				Name: "Smelting",
				Inputs: []InputDef{
					{Resource: "IronOre", Amount: 2, Consumed: true},
					{Resource: "Timber", Amount: 1, Consumed: true},
				},
				Output:         "Iron",
				OutputAmount:   1,
				ProductionTime: 1,
			},
		}},
		{Name: "Tools", Category: "Tertiary", Kind: "Material", BaseValue: 15, Recipes: []RecipeDef{
			{
				Name: "Toolmaking",
				Inputs: []InputDef{
					{Resource: "Iron", Amount: 2, Consumed: true},
					{Resource: "Stone", Amount: 1, Consumed: false},
				},
				Output:         "Tools",
				OutputAmount:   2,
				ProductionTime: 3,
			},
		}},
		{Name: "Gold", Category: "Tertiary", Kind: "Wealth", BaseValue: 10, IsRaw: true},
	}
}

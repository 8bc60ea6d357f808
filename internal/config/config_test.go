package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	f := Default()
	if err := f.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	cat, err := f.BuildCatalog()
	if err != nil {
		t.Fatalf("BuildCatalog: %v", err)
	}
	if cat.Recipe("Smelting") == nil || cat.Recipe("Toolmaking") == nil {
		t.Error("default catalog should carry the smelting and toolmaking chains")
	}
	if len(f.BuildTerrains()) == 0 {
		t.Error("default config should fall back to the built-in terrains")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "realm.yaml")
	doc := `
simulation:
  trade_efficiency: 0.9
  max_trading_partners: 2
  trade_radius: 25
scenario:
  seed: 7
  regions: 4
  nations: [Aldmark, Vessar]
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg := f.EngineConfig()
	if cfg.TradeEfficiency != 0.9 || cfg.MaxTradingPartners != 2 || cfg.TradeRadius != 25 {
		t.Errorf("engine config = %+v", cfg)
	}
	// Sections absent from the file keep their defaults.
	if cfg.WealthPerProduction != 0.1 {
		t.Errorf("WealthPerProduction = %v, want default 0.1", cfg.WealthPerProduction)
	}
	if len(f.Resources) == 0 {
		t.Error("resource catalog should keep the built-in defaults")
	}

	gen := f.GenConfig()
	if gen.Seed != 7 || gen.Regions != 4 || len(gen.Nations) != 2 {
		t.Errorf("gen config = %+v", gen)
	}
}

func TestLoadRejectsDefects(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			"bad trade efficiency",
			"simulation:\n  trade_efficiency: 1.5\n",
			"trade efficiency",
		},
		{
			"unknown category",
			"resources:\n  - name: Mana\n    category: Arcane\n    kind: Other\n",
			"unknown category",
		},
		{
			"unknown kind",
			"resources:\n  - name: Mana\n    category: Abstract\n    kind: Sorcery\n",
			"unknown kind",
		},
		{
			"no regions",
			"scenario:\n  regions: 0\n",
			"at least one region",
		},
		{
			"recipe output missing",
			`resources:
  - name: Grain
    category: Primary
    kind: Food
    recipes:
      - name: Milling
        output: Flour
        output_amount: 1
`,
			"unknown resource",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "realm.yaml")
			if err := os.WriteFile(path, []byte(tt.doc), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

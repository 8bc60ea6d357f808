package economy

import (
	"strings"
	"testing"
)

func validDefs() []*Definition {
	return []*Definition{
		{Name: "Grain", Category: CategoryPrimary, Kind: KindFood, BaseValue: 2, IsRaw: true},
		{Name: "IronOre", Category: CategoryPrimary, Kind: KindMaterial, BaseValue: 4, IsRaw: true},
		{Name: "Iron", Category: CategorySecondary, Kind: KindMaterial, BaseValue: 8, Recipes: []Recipe{
			{
				Name:         "Smelting",
				Inputs:       []RecipeInput{{Resource: "IronOre", Amount: 2, Consumed: true}},
				Output:       "Iron",
				OutputAmount: 1,
			},
		}},
	}
}

func TestNewCatalogValid(t *testing.T) {
	c, err := NewCatalog(validDefs())
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	if c.Definition("Iron") == nil {
		t.Error("Definition(Iron) = nil")
	}
	if c.Definition("Unknown") != nil {
		t.Error("Definition(Unknown) should be nil")
	}

	rec := c.Recipe("Smelting")
	if rec == nil {
		t.Fatal("Recipe(Smelting) = nil")
	}
	if rec.Output != "Iron" {
		t.Errorf("recipe output = %q, want Iron", rec.Output)
	}

	// Load order is preserved.
	defs := c.Definitions()
	if defs[0].Name != "Grain" || defs[2].Name != "Iron" {
		t.Errorf("definitions out of order: %s, %s", defs[0].Name, defs[2].Name)
	}
}

func TestNewCatalogRejectsDefects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func([]*Definition)
		wantErr string
	}{
		{
			"duplicate resource",
			func(d []*Definition) { d[1].Name = "Grain" },
			"duplicate resource",
		},
		{
			"recipe with unknown input",
			func(d []*Definition) { d[2].Recipes[0].Inputs[0].Resource = "Mithril" },
			"unknown resource",
		},
		{
			"recipe with unknown output",
			func(d []*Definition) { d[2].Recipes[0].Output = "Mithril" },
			"unknown resource",
		},
		{
			"recipe with empty output",
			func(d []*Definition) { d[2].Recipes[0].Output = "" },
			"no output resource",
		},
		{
			"recipe with zero output amount",
			func(d []*Definition) { d[2].Recipes[0].OutputAmount = 0 },
			"non-positive output amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defs := validDefs()
			tt.mutate(defs)
			_, err := NewCatalog(defs)
			if err == nil {
				t.Fatal("NewCatalog should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseCategoryAndKind(t *testing.T) {
	if c, ok := ParseCategory("Secondary"); !ok || c != CategorySecondary {
		t.Errorf("ParseCategory(Secondary) = %v, %v", c, ok)
	}
	if _, ok := ParseCategory("secondary"); ok {
		t.Error("ParseCategory is case-sensitive; lowercase should fail")
	}
	if k, ok := ParseKind("Wealth"); !ok || k != KindWealth {
		t.Errorf("ParseKind(Wealth) = %v, %v", k, ok)
	}
	if _, ok := ParseKind("Treasure"); ok {
		t.Error("ParseKind(Treasure) should fail")
	}
}

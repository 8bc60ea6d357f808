// Package economy provides resource ledgers, the resource definition catalog,
// production recipes, and per-region accounts.
package economy

import "fmt"

// Category groups resources by economic tier.
type Category uint8

const (
	CategoryPrimary   Category = iota // Raw extraction — food, ore, timber
	CategorySecondary                 // Processed goods
	CategoryTertiary                  // Services and finished goods
	CategoryAbstract                  // Non-physical — influence, knowledge
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryPrimary:
		return "Primary"
	case CategorySecondary:
		return "Secondary"
	case CategoryTertiary:
		return "Tertiary"
	case CategoryAbstract:
		return "Abstract"
	default:
		return "Unknown"
	}
}

// ParseCategory maps a category name to its Category value.
func ParseCategory(name string) (Category, bool) {
	switch name {
	case "Primary":
		return CategoryPrimary, true
	case "Secondary":
		return CategorySecondary, true
	case "Tertiary":
		return CategoryTertiary, true
	case "Abstract":
		return CategoryAbstract, true
	}
	return 0, false
}

// Kind classifies what a resource is for.
type Kind uint8

const (
	KindFood Kind = iota
	KindMaterial
	KindWealth
	KindOther
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindFood:
		return "Food"
	case KindMaterial:
		return "Material"
	case KindWealth:
		return "Wealth"
	default:
		return "Other"
	}
}

// ParseKind maps a kind name to its Kind value.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "Food":
		return KindFood, true
	case "Material":
		return KindMaterial, true
	case "Wealth":
		return KindWealth, true
	case "Other":
		return KindOther, true
	}
	return 0, false
}

// RecipeInput is one ingredient of a recipe. Inputs with Consumed false act
// as catalysts: required to be present but not deducted on production.
type RecipeInput struct {
	Resource string  `json:"resource"`
	Amount   float64 `json:"amount"`
	Consumed bool    `json:"consumed"`
}

// Recipe transforms input resources into an output resource, possibly over
// multiple turns. Output is explicit; a recipe never infers its product from
// catalog membership.
type Recipe struct {
	Name           string        `json:"name"`
	Inputs         []RecipeInput `json:"inputs"`
	Output         string        `json:"output"`
	OutputAmount   float64       `json:"output_amount"`
	ProductionTime int           `json:"production_time"` // turns; <= 1 produces immediately
	Infrastructure string        `json:"infrastructure,omitempty"`
}

// Definition describes one resource in the catalog. Immutable after load.
type Definition struct {
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	Kind      Kind     `json:"kind"`
	BaseValue float64  `json:"base_value"`
	IsRaw     bool     `json:"is_raw"`
	Recipes   []Recipe `json:"recipes,omitempty"`
}

// Catalog is the ordered, read-only collection of resource definitions.
type Catalog struct {
	defs    []*Definition
	byName  map[string]*Definition
	recipes map[string]*Recipe
}

// NewCatalog validates the definitions and builds lookup indexes.
// Recipe names must be unique across the catalog and every recipe must
// reference only known resources.
func NewCatalog(defs []*Definition) (*Catalog, error) {
	c := &Catalog{
		defs:    defs,
		byName:  make(map[string]*Definition, len(defs)),
		recipes: make(map[string]*Recipe),
	}

	for _, d := range defs {
		if d.Name == "" {
			return nil, fmt.Errorf("resource definition with empty name")
		}
		if _, dup := c.byName[d.Name]; dup {
			return nil, fmt.Errorf("duplicate resource definition %q", d.Name)
		}
		c.byName[d.Name] = d
	}

	for _, d := range defs {
		for i := range d.Recipes {
			r := &d.Recipes[i]
			if r.Name == "" {
				return nil, fmt.Errorf("resource %q has a recipe with empty name", d.Name)
			}
			if _, dup := c.recipes[r.Name]; dup {
				return nil, fmt.Errorf("duplicate recipe %q", r.Name)
			}
			if r.Output == "" {
				return nil, fmt.Errorf("recipe %q has no output resource", r.Name)
			}
			if _, ok := c.byName[r.Output]; !ok {
				return nil, fmt.Errorf("recipe %q outputs unknown resource %q", r.Name, r.Output)
			}
			if r.OutputAmount <= 0 {
				return nil, fmt.Errorf("recipe %q has non-positive output amount", r.Name)
			}
			for _, in := range r.Inputs {
				if _, ok := c.byName[in.Resource]; !ok {
					return nil, fmt.Errorf("recipe %q uses unknown resource %q", r.Name, in.Resource)
				}
				if in.Amount < 0 {
					return nil, fmt.Errorf("recipe %q has negative input amount for %q", r.Name, in.Resource)
				}
			}
			c.recipes[r.Name] = r
		}
	}

	return c, nil
}

// Definition returns the definition for a resource name, or nil if unknown.
func (c *Catalog) Definition(name string) *Definition {
	return c.byName[name]
}

// Recipe returns the recipe with the given name, or nil if unknown.
func (c *Catalog) Recipe(name string) *Recipe {
	return c.recipes[name]
}

// Definitions returns the catalog in load order.
func (c *Catalog) Definitions() []*Definition {
	return c.defs
}

// Len returns the number of resource definitions.
func (c *Catalog) Len() int {
	return len(c.defs)
}

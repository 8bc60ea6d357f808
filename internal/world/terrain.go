// Package world provides terrain definitions and region positioning.
// Terrain modifies sector production through per-sector multipliers;
// positions enable distance-limited trade.
package world

// Sector names used for labor allocation and terrain multipliers.
const (
	SectorAgriculture = "agriculture"
	SectorIndustry    = "industry"
	SectorCommerce    = "commerce"
	SectorServices    = "services"
)

// Terrain describes a terrain type shared by regions (read-only after load).
type Terrain struct {
	Name        string             `json:"name"`
	Multipliers map[string]float64 `json:"multipliers"` // sector name → production multiplier
}

// MultiplierForSector returns the production multiplier for a sector.
// Unknown sectors (and a nil terrain) default to 1.0.
func (t *Terrain) MultiplierForSector(sector string) float64 {
	if t == nil {
		return 1.0
	}
	if m, ok := t.Multipliers[sector]; ok {
		return m
	}
	return 1.0
}

// DefaultTerrains returns the built-in terrain catalog used when no terrain
// configuration is supplied. Multipliers above 1.2 are significant for base
// production; values at or below stay neutral.
func DefaultTerrains() []*Terrain {
	return []*Terrain{
		{Name: "Plains", Multipliers: map[string]float64{
			SectorAgriculture: 1.8,
			SectorIndustry:    1.0,
			SectorCommerce:    1.1,
		}},
		{Name: "Forest", Multipliers: map[string]float64{
			SectorAgriculture: 1.1,
			SectorIndustry:    1.5,
		}},
		{Name: "Mountain", Multipliers: map[string]float64{
			SectorAgriculture: 0.6,
			SectorIndustry:    2.0,
		}},
		{Name: "Coast", Multipliers: map[string]float64{
			SectorAgriculture: 1.3,
			SectorCommerce:    1.8,
		}},
		{Name: "Desert", Multipliers: map[string]float64{
			SectorAgriculture: 0.4,
			SectorCommerce:    1.4,
		}},
		{Name: "Tundra", Multipliers: map[string]float64{
			SectorAgriculture: 0.5,
			SectorIndustry:    1.3,
		}},
	}
}

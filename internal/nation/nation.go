// Package nation groups regions under shared diplomatic and aggregate state.
package nation

// Nation aggregates member regions and holds relation scores toward other
// nations. Relation scores are unbounded; 0 is neutral.
type Nation struct {
	Name  string `json:"name"`
	Color string `json:"color"` // display metadata

	// Member region names. The simulation resolves these to regions.
	Regions []string `json:"regions"`

	// Relations to other nations by name. Created at 0 on first adjustment.
	Relations map[string]float64 `json:"relations"`

	// Derived aggregates, recomputed each turn by the nation rollup.
	TotalWealth     int64 `json:"total_wealth"`
	TotalProduction int64 `json:"total_production"`
}

// New creates a nation with no members and neutral relations.
func New(name, color string) *Nation {
	return &Nation{
		Name:      name,
		Color:     color,
		Relations: make(map[string]float64),
	}
}

// AddRegion registers a member region by name. Idempotent.
func (n *Nation) AddRegion(regionName string) {
	for _, existing := range n.Regions {
		if existing == regionName {
			return
		}
	}
	n.Regions = append(n.Regions, regionName)
}

// Relation returns the relation score toward another nation, 0 if untracked.
func (n *Nation) Relation(other string) float64 {
	return n.Relations[other]
}

// AdjustRelation shifts the relation toward another nation by delta,
// creating the relation at 0 if absent.
func (n *Nation) AdjustRelation(other string, delta float64) {
	n.Relations[other] += delta
}

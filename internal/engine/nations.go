// Nation rollup — aggregates region state into nation-level summaries.
package engine

import "log/slog"

// aggregateNations recomputes each nation's derived totals from its member
// regions. Regions naming an unknown nation are skipped with a log line.
func (s *Simulation) aggregateNations() {
	for _, n := range s.Nations {
		n.TotalWealth = 0
		n.TotalProduction = 0
	}

	for _, r := range s.Regions {
		if r.NationName == "" {
			continue
		}
		n, ok := s.NationIndex[r.NationName]
		if !ok {
			slog.Warn("region owned by unknown nation", "region", r.Name, "nation", r.NationName)
			continue
		}
		n.TotalWealth += r.Accounts.Wealth
		n.TotalProduction += r.Accounts.Production
	}
}

// AdjustRelation shifts the relation between two nations by delta, creating
// the relation at 0 if absent. Applied one-way: how `name` regards `other`.
func (s *Simulation) AdjustRelation(name, other string, delta float64) bool {
	n, ok := s.NationIndex[name]
	if !ok {
		return false
	}
	n.AdjustRelation(other, delta)
	return true
}

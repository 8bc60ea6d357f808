// Read-only snapshots exposed to observers after each turn.
package engine

import (
	"log/slog"

	"github.com/talgya/realm-sim/internal/region"
)

// RecipeProgress is the observable state of one active recipe.
type RecipeProgress struct {
	Name     string  `json:"name"`
	Progress float64 `json:"progress"`
}

// RegionSnapshot is a read-only copy of one region's observable state.
type RegionSnapshot struct {
	Name              string             `json:"name"`
	Nation            string             `json:"nation"`
	Wealth            int64              `json:"wealth"`
	Production        int64              `json:"production"`
	WealthDelta       int64              `json:"wealth_delta"`
	ProductionDelta   int64              `json:"production_delta"`
	Satisfaction      float64            `json:"satisfaction"`
	Labor             int                `json:"labor"`
	CapitalInvestment float64            `json:"capital_investment"`
	Terrain           string             `json:"terrain,omitempty"`
	Resources         map[string]float64 `json:"resources"`
	ProductionRates   map[string]float64 `json:"production_rates"`
	ConsumptionRates  map[string]float64 `json:"consumption_rates"`
	ActiveRecipes     []RecipeProgress   `json:"active_recipes,omitempty"`
}

// NationSnapshot is a read-only copy of one nation's aggregates.
type NationSnapshot struct {
	Name            string             `json:"name"`
	Color           string             `json:"color"`
	TotalWealth     int64              `json:"total_wealth"`
	TotalProduction int64              `json:"total_production"`
	Relations       map[string]float64 `json:"relations"`
}

// TurnStats aggregates the turn for reporting.
type TurnStats struct {
	TotalWealth     int64   `json:"total_wealth"`
	TotalProduction int64   `json:"total_production"`
	TradesExecuted  int     `json:"trades_executed"`
	AvgSatisfaction float64 `json:"avg_satisfaction"`
	TotalLabor      int     `json:"total_labor"`
}

// TurnSnapshot is the complete read-only view handed to observers after a
// turn completes. The trade digest is retained until the next trade phase.
type TurnSnapshot struct {
	Turn      uint64              `json:"turn"`
	Regions   []RegionSnapshot    `json:"regions"`
	Nations   []NationSnapshot    `json:"nations"`
	Trades    []*TradeTransaction `json:"trades"`
	Events    []Event             `json:"events"`
	Decisions []Decision          `json:"decisions,omitempty"`
	Stats     TurnStats           `json:"stats"`
}

// Observer receives the turn snapshot after every completed turn.
// Notification is synchronous and batched: observers run once per turn, in
// subscription order, after the full pipeline settles.
type Observer interface {
	TurnCompleted(*TurnSnapshot)
}

// Subscribe registers an observer for turn notifications.
func (s *Simulation) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

// Snapshot builds a read-only view of the current simulation state. Every
// slice is copied; mutating a snapshot never touches live state.
func (s *Simulation) Snapshot() *TurnSnapshot {
	trades := make([]*TradeTransaction, len(s.LastTrades))
	for i, tx := range s.LastTrades {
		c := *tx
		trades[i] = &c
	}

	snap := &TurnSnapshot{
		Turn:      s.Turn,
		Regions:   make([]RegionSnapshot, 0, len(s.Regions)),
		Nations:   make([]NationSnapshot, 0, len(s.Nations)),
		Trades:    trades,
		Events:    append([]Event(nil), s.Events...),
		Decisions: append([]Decision(nil), s.Decisions...),
	}

	totalSatisfaction := 0.0
	for _, r := range s.Regions {
		snap.Regions = append(snap.Regions, snapshotRegion(r))
		snap.Stats.TotalWealth += r.Accounts.Wealth
		snap.Stats.TotalProduction += r.Accounts.Production
		snap.Stats.TotalLabor += r.Labor
		totalSatisfaction += r.Satisfaction
	}
	if len(s.Regions) > 0 {
		snap.Stats.AvgSatisfaction = totalSatisfaction / float64(len(s.Regions))
	}
	snap.Stats.TradesExecuted = len(s.LastTrades)

	for _, n := range s.Nations {
		relations := make(map[string]float64, len(n.Relations))
		for other, score := range n.Relations {
			relations[other] = score
		}
		snap.Nations = append(snap.Nations, NationSnapshot{
			Name:            n.Name,
			Color:           n.Color,
			TotalWealth:     n.TotalWealth,
			TotalProduction: n.TotalProduction,
			Relations:       relations,
		})
	}

	return snap
}

func snapshotRegion(r *region.Region) RegionSnapshot {
	wealthDelta, productionDelta := r.Accounts.Deltas()
	rs := RegionSnapshot{
		Name:              r.Name,
		Nation:            r.NationName,
		Wealth:            r.Accounts.Wealth,
		Production:        r.Accounts.Production,
		WealthDelta:       wealthDelta,
		ProductionDelta:   productionDelta,
		Satisfaction:      r.Satisfaction,
		Labor:             r.Labor,
		CapitalInvestment: r.Accounts.CapitalInvestment,
	}
	if r.Terrain != nil {
		rs.Terrain = r.Terrain.Name
	}
	if r.Ledger != nil {
		rs.Resources = r.Ledger.Amounts()
		rs.ProductionRates = r.Ledger.ProductionRates()
		rs.ConsumptionRates = r.Ledger.ConsumptionRates()
	}
	for _, ar := range r.Active {
		rs.ActiveRecipes = append(rs.ActiveRecipes, RecipeProgress{Name: ar.Name, Progress: ar.Progress})
	}
	return rs
}

// notifyObservers builds one snapshot and hands it to every observer.
func (s *Simulation) notifyObservers() {
	if len(s.observers) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, o := range s.observers {
		o.TurnCompleted(snap)
	}
	slog.Debug("observers notified", "turn", snap.Turn, "observers", len(s.observers))
}

// Temporary effects — timed modifiers that reverse themselves on expiry.
package engine

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"
)

// EffectKind selects what a temporary effect modifies.
type EffectKind uint8

const (
	EffectSatisfaction EffectKind = iota // region satisfaction delta
	EffectWealth                         // region wealth delta
	EffectEfficiency                     // region production efficiency delta
)

// String returns a human-readable effect kind name.
func (k EffectKind) String() string {
	switch k {
	case EffectSatisfaction:
		return "satisfaction"
	case EffectWealth:
		return "wealth"
	case EffectEfficiency:
		return "efficiency"
	default:
		return "unknown"
	}
}

// TemporaryEffect applies a magnitude to a target region for a number of
// turns, then reverses it and disappears.
type TemporaryEffect struct {
	ID        string     `json:"id"`
	Kind      EffectKind `json:"kind"`
	Target    string     `json:"target"` // region name
	Magnitude float64    `json:"magnitude"`
	TurnsLeft int        `json:"turns_left"`
}

// AddTemporaryEffect applies the effect immediately and schedules its
// reversal. The target may be a region name or a nation name; a nation-wide
// effect fans out into one effect per member region.
func (s *Simulation) AddTemporaryEffect(kind EffectKind, target string, magnitude float64, turns int) error {
	if turns < 1 {
		return fmt.Errorf("effect duration %d must be at least 1 turn", turns)
	}

	if _, ok := s.RegionIndex[target]; ok {
		s.addRegionEffect(kind, target, magnitude, turns)
		return nil
	}

	if n, ok := s.NationIndex[target]; ok {
		for _, regionName := range n.Regions {
			s.addRegionEffect(kind, regionName, magnitude, turns)
		}
		return nil
	}

	return fmt.Errorf("effect target %q is neither a region nor a nation", target)
}

func (s *Simulation) addRegionEffect(kind EffectKind, regionName string, magnitude float64, turns int) {
	s.applyEffectDelta(kind, regionName, magnitude)
	s.Effects = append(s.Effects, &TemporaryEffect{
		ID:        uuid.NewString(),
		Kind:      kind,
		Target:    regionName,
		Magnitude: magnitude,
		TurnsLeft: turns,
	})
}

// expireEffects decrements every effect's counter and reverses expired ones.
func (s *Simulation) expireEffects() {
	n := 0
	for _, e := range s.Effects {
		e.TurnsLeft--
		if e.TurnsLeft > 0 {
			s.Effects[n] = e
			n++
			continue
		}
		s.applyEffectDelta(e.Kind, e.Target, -e.Magnitude)
		s.EmitEvent(fmt.Sprintf("%s effect on %s expired", e.Kind, e.Target), "effect")
	}
	s.Effects = s.Effects[:n]
}

func (s *Simulation) applyEffectDelta(kind EffectKind, regionName string, magnitude float64) {
	r := s.RegionIndex[regionName]
	if r == nil {
		slog.Warn("effect targets missing region", "region", regionName, "kind", kind)
		return
	}

	switch kind {
	case EffectSatisfaction:
		r.AdjustSatisfaction(magnitude)
	case EffectWealth:
		r.Accounts.Wealth += int64(math.Round(magnitude))
		if !s.Config.AllowNegativeWealth {
			r.Accounts.ClampWealth()
		}
	case EffectEfficiency:
		r.Efficiency += magnitude
		if r.Efficiency < 0 {
			r.Efficiency = 0
		}
	}
}

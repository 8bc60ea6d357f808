// Narrative outcome application — the closed set of mutations the dialogue
// and event layer may make against simulation state.
package engine

import "fmt"

// Outcome is a sealed variant: exactly the types below implement it. The
// narrative layer constructs outcomes; ApplyOutcome dispatches them with an
// exhaustive type switch.
type Outcome interface {
	outcome()
}

// AddResource grants a resource amount to a region.
type AddResource struct {
	Region   string
	Resource string
	Amount   float64
}

// RemoveResource takes a resource amount from a region. Fails without
// mutation when the region holds less than the requested amount.
type RemoveResource struct {
	Region   string
	Resource string
	Amount   float64
}

// AdjustRelation shifts one nation's relation toward another.
type AdjustRelation struct {
	Nation string
	Other  string
	Delta  float64
}

// AdjustSatisfaction shifts a region's satisfaction, clamped to [0, 1].
type AdjustSatisfaction struct {
	Region string
	Delta  float64
}

// RecordDecision stores a named decision for later reference.
type RecordDecision struct {
	Name   string
	Detail string
}

// ApplyTemporaryEffect sets a timed, self-reversing modifier on a region or
// nation-wide across a nation's members.
type ApplyTemporaryEffect struct {
	Kind      EffectKind
	Target    string
	Magnitude float64
	Turns     int
}

func (AddResource) outcome()          {}
func (RemoveResource) outcome()       {}
func (AdjustRelation) outcome()       {}
func (AdjustSatisfaction) outcome()   {}
func (RecordDecision) outcome()       {}
func (ApplyTemporaryEffect) outcome() {}

// ApplyOutcome mutates simulation state according to the outcome variant.
func (s *Simulation) ApplyOutcome(o Outcome) error {
	switch o := o.(type) {
	case AddResource:
		r := s.RegionIndex[o.Region]
		if r == nil || r.Ledger == nil {
			return fmt.Errorf("add resource: region %q not found", o.Region)
		}
		r.Ledger.Add(o.Resource, o.Amount)
		return nil

	case RemoveResource:
		r := s.RegionIndex[o.Region]
		if r == nil || r.Ledger == nil {
			return fmt.Errorf("remove resource: region %q not found", o.Region)
		}
		if !r.Ledger.Remove(o.Resource, o.Amount) {
			return fmt.Errorf("remove resource: region %q holds %.2f of %q, need %.2f",
				o.Region, r.Ledger.Amount(o.Resource), o.Resource, o.Amount)
		}
		return nil

	case AdjustRelation:
		if !s.AdjustRelation(o.Nation, o.Other, o.Delta) {
			return fmt.Errorf("adjust relation: nation %q not found", o.Nation)
		}
		return nil

	case AdjustSatisfaction:
		r := s.RegionIndex[o.Region]
		if r == nil {
			return fmt.Errorf("adjust satisfaction: region %q not found", o.Region)
		}
		r.AdjustSatisfaction(o.Delta)
		return nil

	case RecordDecision:
		s.RecordDecision(o.Name, o.Detail)
		return nil

	case ApplyTemporaryEffect:
		return s.AddTemporaryEffect(o.Kind, o.Target, o.Magnitude, o.Turns)

	default:
		return fmt.Errorf("unknown outcome type %T", o)
	}
}

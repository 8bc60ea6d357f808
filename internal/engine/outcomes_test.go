package engine

import (
	"math"
	"strings"
	"testing"

	"github.com/talgya/realm-sim/internal/nation"
	"github.com/talgya/realm-sim/internal/region"
)

func outcomeSim(t *testing.T) (*Simulation, *region.Region) {
	t.Helper()
	s := NewSimulation(nil, DefaultConfig())
	r := region.New("Ashford", "Valoria")
	if err := s.AddNation(nation.New("Valoria", "#aa3333")); err != nil {
		t.Fatal(err)
	}
	if err := s.AddNation(nation.New("Ostmark", "#3333aa")); err != nil {
		t.Fatal(err)
	}
	if err := s.AddRegion(r); err != nil {
		t.Fatal(err)
	}
	return s, r
}

func TestApplyOutcomeResources(t *testing.T) {
	s, r := outcomeSim(t)

	if err := s.ApplyOutcome(AddResource{Region: "Ashford", Resource: "Gold", Amount: 50}); err != nil {
		t.Fatalf("AddResource: %v", err)
	}
	if got := r.Ledger.Amount("Gold"); got != 50 {
		t.Errorf("Gold = %v, want 50", got)
	}

	if err := s.ApplyOutcome(RemoveResource{Region: "Ashford", Resource: "Gold", Amount: 20}); err != nil {
		t.Fatalf("RemoveResource: %v", err)
	}
	if got := r.Ledger.Amount("Gold"); got != 30 {
		t.Errorf("Gold = %v, want 30", got)
	}
}

func TestApplyOutcomeRemoveInsufficient(t *testing.T) {
	s, r := outcomeSim(t)
	r.Ledger.Add("Gold", 60)

	err := s.ApplyOutcome(RemoveResource{Region: "Ashford", Resource: "Gold", Amount: 100})
	if err == nil {
		t.Fatal("removal beyond holdings should fail")
	}
	// The error names both sides of the shortfall.
	if !strings.Contains(err.Error(), "60") || !strings.Contains(err.Error(), "100") {
		t.Errorf("error %q should state held and requested amounts", err)
	}
	if got := r.Ledger.Amount("Gold"); got != 60 {
		t.Errorf("Gold = %v, want unchanged 60", got)
	}
}

func TestApplyOutcomeRelations(t *testing.T) {
	s, _ := outcomeSim(t)

	if err := s.ApplyOutcome(AdjustRelation{Nation: "Valoria", Other: "Ostmark", Delta: -0.3}); err != nil {
		t.Fatalf("AdjustRelation: %v", err)
	}
	if got := s.Nation("Valoria").Relation("Ostmark"); got != -0.3 {
		t.Errorf("relation = %v, want -0.3 created from neutral", got)
	}
	// One-way: the reverse direction stays neutral.
	if got := s.Nation("Ostmark").Relation("Valoria"); got != 0 {
		t.Errorf("reverse relation = %v, want 0", got)
	}

	if err := s.ApplyOutcome(AdjustRelation{Nation: "Atlantis", Other: "Valoria", Delta: 1}); err == nil {
		t.Error("unknown nation should fail")
	}
}

func TestApplyOutcomeSatisfactionAndDecision(t *testing.T) {
	s, r := outcomeSim(t)

	if err := s.ApplyOutcome(AdjustSatisfaction{Region: "Ashford", Delta: 0.8}); err != nil {
		t.Fatalf("AdjustSatisfaction: %v", err)
	}
	if r.Satisfaction != 1.0 {
		t.Errorf("Satisfaction = %v, want clamped 1.0", r.Satisfaction)
	}

	if err := s.ApplyOutcome(RecordDecision{Name: "grain-tithe", Detail: "one tenth to the crown"}); err != nil {
		t.Fatalf("RecordDecision: %v", err)
	}
	if len(s.Decisions) != 1 || s.Decisions[0].Name != "grain-tithe" {
		t.Fatalf("Decisions = %+v", s.Decisions)
	}
	if s.Decisions[0].ID == "" {
		t.Error("decision should carry an id")
	}
}

func TestApplyOutcomeTemporaryEffect(t *testing.T) {
	s, r := outcomeSim(t)

	err := s.ApplyOutcome(ApplyTemporaryEffect{
		Kind:      EffectSatisfaction,
		Target:    "Ashford",
		Magnitude: 0.1,
		Turns:     2,
	})
	if err != nil {
		t.Fatalf("ApplyTemporaryEffect: %v", err)
	}
	if math.Abs(r.Satisfaction-0.6) > 1e-9 {
		t.Errorf("Satisfaction = %v, want 0.6", r.Satisfaction)
	}
	if len(s.Effects) != 1 {
		t.Errorf("Effects = %d, want 1", len(s.Effects))
	}
}

func TestApplyOutcomeUnknownRegions(t *testing.T) {
	s, _ := outcomeSim(t)

	cases := []Outcome{
		AddResource{Region: "Atlantis", Resource: "Gold", Amount: 1},
		RemoveResource{Region: "Atlantis", Resource: "Gold", Amount: 1},
		AdjustSatisfaction{Region: "Atlantis", Delta: 0.1},
	}
	for _, o := range cases {
		if err := s.ApplyOutcome(o); err == nil {
			t.Errorf("%T against unknown region should fail", o)
		}
	}
}

package card

import "testing"

func TestKind_Predicates(t *testing.T) {
	if !ExplodingKitten.IsHazard() {
		t.Fatalf("expected ExplodingKitten to be a hazard")
	}
	if !Defuse.IsDefuse() {
		t.Fatalf("expected Defuse to report IsDefuse")
	}
	for _, k := range CatKinds {
		if !k.IsCat() {
			t.Fatalf("expected %v to be a cat kind", k)
		}
		if !k.IsComboEligible() {
			t.Fatalf("expected cat kind %v to be combo-eligible", k)
		}
	}
	if Defuse.IsComboEligible() || ExplodingKitten.IsComboEligible() {
		t.Fatalf("defuse/hazard must not be combo-eligible")
	}
	for _, k := range ActionKinds {
		if !k.IsAction() {
			t.Fatalf("expected %v to be an action kind", k)
		}
	}
}

func TestKind_String(t *testing.T) {
	if Skip.String() != "Skip" {
		t.Fatalf("expected Skip, got %s", Skip.String())
	}
	if Kind(200).String() == "" {
		t.Fatalf("expected non-empty fallback string for unknown kind")
	}
}

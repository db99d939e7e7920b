package card

import "testing"

func TestDeck_PopInsertPreservesOrder(t *testing.T) {
	d := NewDeck([]Card{New(Skip), New(Attack), New(Favor)})
	top, ok := d.Pop()
	if !ok || top.Kind != Skip {
		t.Fatalf("expected to pop Skip, got %v ok=%v", top, ok)
	}
	if d.Len() != 2 {
		t.Fatalf("expected 2 remaining, got %d", d.Len())
	}

	d.Insert(1, New(Shuffle))
	got := d.Cards()
	want := []Kind{Attack, Shuffle, Favor}
	for i, k := range want {
		if got[i].Kind != k {
			t.Fatalf("index %d: expected %v, got %v", i, k, got[i].Kind)
		}
	}
}

func TestDeck_InsertAtBottomAndTop(t *testing.T) {
	d := NewDeck([]Card{New(Skip), New(Attack)})
	d.Insert(d.Len(), New(Nope)) // bottom
	if got := d.Cards(); got[len(got)-1].Kind != Nope {
		t.Fatalf("expected Nope at bottom, got %v", got)
	}
	d.Insert(0, New(Favor)) // top
	if got := d.Cards(); got[0].Kind != Favor {
		t.Fatalf("expected Favor at top, got %v", got)
	}
}

func TestDeck_PeekTopDoesNotMutate(t *testing.T) {
	d := NewDeck([]Card{New(Skip), New(Attack), New(Favor)})
	peeked := d.PeekTop(2)
	if len(peeked) != 2 {
		t.Fatalf("expected 2 peeked cards, got %d", len(peeked))
	}
	peeked[0] = New(Nope)
	if d.Cards()[0].Kind != Skip {
		t.Fatalf("peek mutation leaked into deck")
	}
}

func TestDeck_LastIndexOfKind(t *testing.T) {
	d := NewDeck([]Card{New(ExplodingKitten), New(Skip), New(ExplodingKitten), New(Favor)})
	if idx := d.LastIndexOfKind(ExplodingKitten); idx != 2 {
		t.Fatalf("expected last hazard index 2, got %d", idx)
	}
	if idx := d.LastIndexOfKind(Nope); idx != -1 {
		t.Fatalf("expected -1 for absent kind, got %d", idx)
	}
}

func TestPile_TakeKindAndContains(t *testing.T) {
	p := NewPile(New(Defuse), New(Skip))
	if !p.Contains(Defuse) {
		t.Fatalf("expected pile to contain Defuse")
	}
	c, ok := p.TakeKind(Defuse)
	if !ok || c.Kind != Defuse {
		t.Fatalf("expected to take Defuse, got %v ok=%v", c, ok)
	}
	if p.Contains(Defuse) {
		t.Fatalf("expected Defuse removed")
	}
}

func TestCountByKind(t *testing.T) {
	counts := CountByKind([]Card{New(Skip), New(Skip), New(Favor)})
	if counts[Skip] != 2 || counts[Favor] != 1 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

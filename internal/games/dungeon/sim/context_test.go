package sim

import (
	"math/rand"
	"testing"
)

func TestTokensAreUniqueAndReproducible(t *testing.T) {
	a := newTestContext(7)
	b := newTestContext(7)
	other := newTestContext(8)

	seen := make(map[Token]bool)
	for i := 0; i < 1000; i++ {
		ta, tb, to := a.NewToken(), b.NewToken(), other.NewToken()
		if seen[ta] {
			t.Fatalf("token %s handed out twice", ta)
		}
		seen[ta] = true
		if ta != tb {
			t.Fatalf("same seed produced different tokens at %d: %s vs %s", i, ta, tb)
		}
		if ta == to {
			t.Fatalf("different seeds produced the same token %s", ta)
		}
		if ta.IsZero() {
			t.Fatal("NewToken returned the zero token")
		}
	}
}

func TestEventSetRouting(t *testing.T) {
	ctx := newTestContext(1)
	tok := ctx.NewToken()
	set := NewEventSet(EvShootUp, EntityEvent(tok))

	if !set.Has(EvShootUp) || !set.Has(Named(TagShootUp)) {
		t.Error("named events should compare by tag")
	}
	if !set.Has(EntityEvent(tok)) {
		t.Error("entity event not found")
	}
	if set.Has(EntityEvent(ctx.NewToken())) {
		t.Error("unrelated token should not be present")
	}
	if set.Has(Named(tok.String())) {
		t.Error("a tag never matches a token, even with the same text")
	}

	var empty EventSet
	if empty.Has(EvShootUp) {
		t.Error("nil set should have no members")
	}
	if got := empty.Union(set); len(got) != 2 {
		t.Errorf("Union() has %d members, expected 2", len(got))
	}
}

func TestWeightedPick(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	if _, ok := WeightedPick[string](r, nil); ok {
		t.Error("empty options should report false")
	}
	if _, ok := WeightedPick(r, []Weighted[string]{{"a", 0}, {"b", -1}}); ok {
		t.Error("non-positive weights should report false")
	}

	for i := 0; i < 100; i++ {
		got, ok := WeightedPick(r, []Weighted[string]{{"never", 0}, {"always", 3}})
		if !ok || got != "always" {
			t.Fatalf("WeightedPick() = %q, %v, expected the only weighted option", got, ok)
		}
	}

	counts := map[string]int{}
	options := []Weighted[string]{{"common", 9}, {"rare", 1}}
	for i := 0; i < 10000; i++ {
		got, _ := WeightedPick(r, options)
		counts[got]++
	}
	if counts["common"] < 8500 || counts["rare"] < 500 {
		t.Errorf("distribution looks wrong: %v", counts)
	}
}

func TestContextLevel(t *testing.T) {
	ctx := newTestContext(1)

	if _, _, ok := ctx.Level(3); ok {
		t.Error("level past the table should not resolve outside endless mode")
	}
	if _, _, ok := ctx.Level(-1); ok {
		t.Error("negative level should not resolve")
	}

	ctx.Endless = true
	lvl, cycle, ok := ctx.Level(4)
	if !ok || cycle != 1 || lvl.Name != "Level 2" {
		t.Errorf("Level(4) = %q cycle %d ok %v, expected Level 2 cycle 1", lvl.Name, cycle, ok)
	}
	if got := ctx.budgetFor(lvl, 0, cycle); got != 15 {
		t.Errorf("budgetFor() = %d, expected 15", got)
	}
}

func TestLevelBudget(t *testing.T) {
	lvl := Level{Difficulties: []int{5, 6}}
	tests := []struct {
		room, expected int
	}{
		{-1, 5},
		{0, 5},
		{1, 6},
		{4, 6},
	}
	for _, tc := range tests {
		if got := lvl.Budget(tc.room); got != tc.expected {
			t.Errorf("Budget(%d) = %d, expected %d", tc.room, got, tc.expected)
		}
	}
	if got := (Level{}).Budget(0); got != 0 {
		t.Errorf("empty level Budget() = %d, expected 0", got)
	}
}

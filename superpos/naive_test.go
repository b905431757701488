// File: superpos/naive_test.go
package superpos

import (
	"math/rand"
	"testing"
)

// naiveWith builds a Naive over a 3-tile universe holding the given tiles.
func naiveWith(t *testing.T, tiles ...int) *Naive {
	t.Helper()
	s, err := NewNaive(3)
	if err != nil {
		t.Fatalf("NewNaive(3) error = %v", err)
	}
	for _, tile := range tiles {
		s.Add(tile)
	}

	return s
}

// TestNaive_Equality covers set equality, inequality, and emptiness.
func TestNaive_Equality(t *testing.T) {
	none := naiveWith(t)
	a := naiveWith(t, 0)
	ab := naiveWith(t, 0, 1)
	abc := naiveWith(t, 0, 1, 2)
	bc := naiveWith(t, 1, 2)

	if ab.Equal(abc) {
		t.Error("ab == abc; want inequality")
	}
	if !bc.Clone().Equal(bc) {
		t.Error("Clone(bc) != bc")
	}
	if !none.Equal(none.EmptyClone()) {
		t.Error("empty != EmptyClone")
	}
	if !none.IsEmpty() {
		t.Error("none.IsEmpty() = false")
	}
	if a.IsEmpty() || abc.IsEmpty() {
		t.Error("non-empty superposition reported empty")
	}
}

// TestNaive_MaskBy checks that masking removes exactly the states absent
// from the mask and reports change correctly.
func TestNaive_MaskBy(t *testing.T) {
	a := naiveWith(t, 0)
	ab := naiveWith(t, 0, 1)
	bc := naiveWith(t, 1, 2)
	ca := naiveWith(t, 2, 0)
	abc := naiveWith(t, 0, 1, 2)
	none := naiveWith(t)

	{
		x := abc.Clone()
		if !x.MaskBy(ab) {
			t.Error("abc.MaskBy(ab) = false; want change")
		}
		if !x.Equal(ab) {
			t.Errorf("abc.MaskBy(ab) left %v; want %v", x, ab)
		}
	}
	{
		x := a.Clone()
		if x.MaskBy(a) {
			t.Error("a.MaskBy(a) = true; want no change")
		}
		if !x.Equal(a) {
			t.Errorf("a.MaskBy(a) left %v; want %v", x, a)
		}
	}
	{
		x := ca.Clone()
		if !x.MaskBy(ab) {
			t.Error("ca.MaskBy(ab) = false; want change")
		}
		if !x.Equal(a) {
			t.Errorf("ca.MaskBy(ab) left %v; want %v", x, a)
		}
	}
	{
		x := bc.Clone()
		if !x.MaskBy(a) {
			t.Error("bc.MaskBy(a) = false; want change")
		}
		if !x.Equal(none) {
			t.Errorf("bc.MaskBy(a) left %v; want empty", x)
		}
	}
}

// TestNaive_Entropy verifies entropy = max(0, count-1).
func TestNaive_Entropy(t *testing.T) {
	cases := []struct {
		tiles   []int
		entropy float64
	}{
		{nil, 0},
		{[]int{1}, 0},
		{[]int{0, 2}, 1},
		{[]int{0, 1, 2}, 2},
	}
	for _, tc := range cases {
		s := naiveWith(t, tc.tiles...)
		if got := s.Entropy(); got != tc.entropy {
			t.Errorf("Entropy(%v) = %v; want %v", tc.tiles, got, tc.entropy)
		}
	}
}

// TestNaive_Observe verifies a singleton result drawn from the contents.
func TestNaive_Observe(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := naiveWith(t, 0, 1, 2)

	tile := s.Observe(rng)
	if s.TileCount() != 1 {
		t.Fatalf("TileCount after Observe = %d; want 1", s.TileCount())
	}
	if !s.Contains(tile) {
		t.Errorf("observed tile %d not contained afterwards", tile)
	}
	if tile < 0 || tile > 2 {
		t.Errorf("observed tile %d outside original contents", tile)
	}

	// Observing a singleton keeps the same tile.
	again := s.Observe(rng)
	if again != tile {
		t.Errorf("Observe on singleton = %d; want %d", again, tile)
	}
}

// TestNaive_String verifies the ascending diagnostic rendering.
func TestNaive_String(t *testing.T) {
	ca := naiveWith(t, 2, 0)
	if got := ca.String(); got != "Naive{0, 2}" {
		t.Errorf("String() = %q; want %q", got, "Naive{0, 2}")
	}
}

// TestNaive_SetToAllNone verifies the universe fill and clear.
func TestNaive_SetToAllNone(t *testing.T) {
	s := naiveWith(t)
	s.SetToAll()
	if s.TileCount() != 3 {
		t.Errorf("TileCount after SetToAll = %d; want 3", s.TileCount())
	}
	s.SetToAll() // idempotent
	if s.TileCount() != 3 {
		t.Errorf("TileCount after repeated SetToAll = %d; want 3", s.TileCount())
	}
	s.SetToNone()
	if s.TileCount() != 0 {
		t.Errorf("TileCount after SetToNone = %d; want 0", s.TileCount())
	}
}

// Package core defines the contracts shared by every tilesolve subpackage.
package core

import "math/rand"

// Relation tags a direction from a slot toward one of its neighbors.
// Relations are dense small integers; the topology that produced a Relation
// owns its geometric meaning and its pairing with a dual relation.
type Relation uint8

// Neighbor is the result of a successful topology lookup: the neighboring
// slot and the dual relation that travels back to the origin slot.
type Neighbor struct {
	Slot int      // dense index of the neighboring slot
	Dual Relation // relation from the neighbor back to the origin
}

// Topology is the neighbor oracle over a fixed set of densely indexed slots.
//
// Implementations guarantee duality: if NeighborOf(a, r) returns
// Neighbor{b, r'}, then NeighborOf(b, r') returns Neighbor{a, r}.
type Topology interface {
	// SlotCount returns the total number of slots.
	SlotCount() int

	// RelationCount returns the number of relation tags; valid relations
	// are Relation(0) … Relation(RelationCount()-1).
	RelationCount() int

	// NeighborOf returns the slot in relation rel with slot, along with the
	// dual relation, or ok=false at a domain boundary.
	NeighborOf(slot int, rel Relation) (n Neighbor, ok bool)
}

// TileSet is the capability contract of a tile superposition: the set of
// tiles still possible at one slot, over a dense universe [0, N).
//
// The type parameter is the implementing type itself (F-bounded), so that
// set-with-set operations stay monomorphic: a *superpos.Bit only ever meets
// another *superpos.Bit.
//
// Mutating contract: MaskBy may only remove tiles; Add and Union may only
// insert. Observe requires a non-empty receiver and leaves cardinality 1.
type TileSet[S any] interface {
	// SetToAll fills the superposition with every tile of the universe.
	SetToAll()
	// SetToNone empties the superposition.
	SetToNone()
	// Add inserts a single tile; inserting a present tile is a no-op.
	Add(tile int)
	// Union inserts every tile of other, reporting whether any was new.
	Union(other S) bool
	// MaskBy removes every tile absent from other, reporting whether any
	// tile was removed. This is the hot path of propagation.
	MaskBy(other S) bool
	// Contains reports membership of a single tile.
	Contains(tile int) bool
	// TileCount returns the cardinality, amortized O(1) between mutations.
	TileCount() int
	// UniverseSize returns N, the number of tiles in the universe.
	UniverseSize() int
	// Entropy returns max(0, TileCount()-1): zero once collapsed or empty.
	Entropy() float64
	// IsEmpty reports cardinality zero.
	IsEmpty() bool
	// Observe collapses the superposition to one tile drawn uniformly from
	// its contents and returns it. Panics on an empty receiver.
	Observe(rng *rand.Rand) int
	// Each visits the contained tiles; Bit visits in ascending order.
	Each(fn func(tile int))
	// Tiles returns the contained tiles as a fresh slice.
	Tiles() []int
	// Clone returns an independent copy.
	Clone() S
	// EmptyClone returns an empty superposition over the same universe.
	// This is how fresh superpositions are allocated during projection.
	EmptyClone() S
	// Equal reports set equality.
	Equal(other S) bool
}

// PairOracle answers whether tile x may face tile y when x reaches y via
// relX and y reaches x via relY.
type PairOracle interface {
	Allows(x int, relX Relation, y int, relY Relation) bool
}

// Ruleset is the admissibility oracle consumed by the solver. Beyond the
// per-pair predicate it projects a whole superposition across an arc.
type Ruleset[S TileSet[S]] interface {
	PairOracle

	// AllowedStates overwrites dst with every tile y such that some x in
	// src satisfies Allows(x, relX, y, relY). dst is caller-owned scratch
	// over the same universe as src; its previous content is discarded.
	AllowedStates(dst, src S, relX, relY Relation)
}

// ProjectStates is the reference implementation of Ruleset.AllowedStates:
// a plain scan of the |src| × N product. Optimized rulesets must agree with
// it; tests compare against it directly.
// Complexity: O(|src| × N) calls to Allows.
func ProjectStates[S TileSet[S]](oracle PairOracle, dst, src S, relX, relY Relation) {
	dst.SetToNone()
	n := dst.UniverseSize()
	tiles := src.Tiles()
	for y := 0; y < n; y++ {
		for _, x := range tiles {
			if oracle.Allows(x, relX, y, relY) {
				dst.Add(y)
				break
			}
		}
	}
}

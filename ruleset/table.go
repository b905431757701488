// Package ruleset: dense boolean adjacency table.
package ruleset

import (
	"fmt"

	"github.com/katalvlaran/tilesolve/core"
	"github.com/katalvlaran/tilesolve/ndarray"
)

// Table is a ruleset backed by a dense boolean array of shape (N, N, R):
// Allows(x, rX, y, rY) reads table[x, y, rX]. The rY argument is unused;
// the dual direction is implicit because the caller fills the table
// symmetrically across dual pairs.
type Table[S core.TileSet[S]] struct {
	table *ndarray.Array3[bool]
}

// NewTable wraps a (N, N, R) boolean table. The table is borrowed, not
// copied; it must stay immutable for the ruleset's lifetime.
// Returns ErrTableShape unless shape(0) == shape(1).
func NewTable[S core.TileSet[S]](table *ndarray.Array3[bool]) (*Table[S], error) {
	if table.Shape(0) != table.Shape(1) {
		return nil, fmt.Errorf("%w: adjacency table is %d×%d, want square",
			ErrTableShape, table.Shape(0), table.Shape(1))
	}

	return &Table[S]{table: table}, nil
}

// Allows reports table[x, y, relX].
// Complexity: O(1).
func (r *Table[S]) Allows(x int, relX core.Relation, y int, relY core.Relation) bool {
	_ = relY // dual direction is encoded by the caller's symmetry contract

	return r.table.At(x, y, int(relX))
}

// AllowedStates projects src across (relX, relY) into dst by the reference
// per-element scan.
// Complexity: O(|src| × N).
func (r *Table[S]) AllowedStates(dst, src S, relX, relY core.Relation) {
	core.ProjectStates[S](r, dst, src, relX, relY)
}

// VerifySymmetry asserts the caller's dual-symmetry contract: for every
// tile pair (x, y) and relation r, table[x, y, r] must equal
// table[y, x, dualOf(r)]. Returns a descriptive error on the first
// violation, nil otherwise.
// Complexity: O(N² × R).
func (r *Table[S]) VerifySymmetry(dualOf func(core.Relation) core.Relation) error {
	n, relCount := r.table.Shape(0), r.table.Shape(2)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for rel := 0; rel < relCount; rel++ {
				dual := int(dualOf(core.Relation(rel)))
				if r.table.At(x, y, rel) != r.table.At(y, x, dual) {
					return fmt.Errorf("%w: table[%d,%d,%d] != table[%d,%d,%d]",
						ErrTableSymmetry, x, y, rel, y, x, dual)
				}
			}
		}
	}

	return nil
}

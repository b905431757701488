// Package ruleset: signed-Wang edge labels.
package ruleset

import (
	"github.com/katalvlaran/tilesolve/core"
	"github.com/katalvlaran/tilesolve/ndarray"
)

// SignedWang is a ruleset where every tile side carries a signed integer
// label, stored in a (N, R) table. Two tiles connect across (rX, rY) iff
// their facing labels are exact negations: label[x, rX] == -label[y, rY].
// Matching "colors" therefore share an absolute value and opposite signs;
// label 0 only matches label 0.
type SignedWang[S core.TileSet[S]] struct {
	labels *ndarray.Array2[int]
}

// NewSignedWang wraps a (N, R) signed label table. The table is borrowed,
// not copied; it must stay immutable for the ruleset's lifetime.
func NewSignedWang[S core.TileSet[S]](labels *ndarray.Array2[int]) (*SignedWang[S], error) {
	// Any rectangular label table is accepted; it is not checked against a
	// tile universe here or at solver construction (only FastSignedWang
	// memoization checks its row count), and out-of-range lookups panic.
	return &SignedWang[S]{labels: labels}, nil
}

// Labels exposes the borrowed label table.
func (r *SignedWang[S]) Labels() *ndarray.Array2[int] { return r.labels }

// Allows reports label[x, relX] == -label[y, relY].
// Complexity: O(1).
func (r *SignedWang[S]) Allows(x int, relX core.Relation, y int, relY core.Relation) bool {
	return r.labels.At(x, int(relX)) == -r.labels.At(y, int(relY))
}

// AllowedStates projects src across (relX, relY) into dst by the reference
// per-element scan; FastSignedWang is the memoized alternative.
// Complexity: O(|src| × N).
func (r *SignedWang[S]) AllowedStates(dst, src S, relX, relY core.Relation) {
	core.ProjectStates[S](r, dst, src, relX, relY)
}

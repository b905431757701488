// Package ruleset: memoized signed-Wang projection for bitsets.
package ruleset

import (
	"fmt"

	"github.com/katalvlaran/tilesolve/core"
	"github.com/katalvlaran/tilesolve/ndarray"
	"github.com/katalvlaran/tilesolve/superpos"
)

// FastSignedWang carries the SignedWang semantics, specialized to
// *superpos.Bit. At construction it memoizes, for every (label L,
// relation rY) pair, the superposition of all tiles y whose label on rY is
// -L. AllowedStates then flags the memo entries reachable from the source
// superposition and unions the flagged entries in a single pass.
//
// This replaces the O(|S|·N) projection scan by
// O(|S| + R·maxLabel + popcount work), the dominant optimization for
// practical tilesets.
type FastSignedWang struct {
	labels   *ndarray.Array2[int]
	maxLabel int
	memo     []*superpos.Bit // (2·maxLabel+1) × R entries, laid out label-major
	flagged  []bool          // scratch reused across AllowedStates calls
}

// NewFastSignedWang memoizes a (N, R) signed label table over a universe of
// n tiles. The table is borrowed and must stay immutable.
// Returns ErrTableShape if the table's row count differs from n.
// Complexity: O(maxLabel·R·N) time, O(maxLabel·R·⌈N/64⌉) memory.
func NewFastSignedWang(labels *ndarray.Array2[int], n int) (*FastSignedWang, error) {
	if labels.Shape(0) != n {
		return nil, fmt.Errorf("%w: label table has %d rows, want %d tiles",
			ErrTableShape, labels.Shape(0), n)
	}
	relCount := labels.Shape(1)

	maxLabel := 0
	for tile := 0; tile < n; tile++ {
		for rel := 0; rel < relCount; rel++ {
			label := labels.At(tile, rel)
			if label < 0 {
				label = -label
			}
			if label > maxLabel {
				maxLabel = label
			}
		}
	}

	r := &FastSignedWang{
		labels:   labels,
		maxLabel: maxLabel,
		memo:     make([]*superpos.Bit, (2*maxLabel+1)*relCount),
		flagged:  make([]bool, (2*maxLabel+1)*relCount),
	}

	for label := -maxLabel; label <= maxLabel; label++ {
		for rel := 0; rel < relCount; rel++ {
			entry, err := superpos.NewBit(n)
			if err != nil {
				return nil, err
			}
			entry.SetToNone()
			for y := 0; y < n; y++ {
				if labels.At(y, rel) == -label {
					entry.Add(y)
				}
			}
			r.memo[(maxLabel+label)*relCount+rel] = entry
		}
	}

	return r, nil
}

// Labels exposes the borrowed label table.
func (r *FastSignedWang) Labels() *ndarray.Array2[int] { return r.labels }

// Allows reports label[x, relX] == -label[y, relY].
// Complexity: O(1).
func (r *FastSignedWang) Allows(x int, relX core.Relation, y int, relY core.Relation) bool {
	return r.labels.At(x, int(relX)) == -r.labels.At(y, int(relY))
}

// AllowedStates overwrites dst with the union of the memoized entries
// reachable from src: for every tile x in src the entry
// (label[x, relX], relY) is flagged, then all flagged entries are unioned
// in one pass over the memo.
// Complexity: O(|src| + R·maxLabel + popcount work).
func (r *FastSignedWang) AllowedStates(dst, src *superpos.Bit, relX, relY core.Relation) {
	dst.SetToNone()
	relCount := r.labels.Shape(1)

	for i := range r.flagged {
		r.flagged[i] = false
	}
	src.Each(func(x int) {
		label := r.labels.At(x, int(relX))
		r.flagged[(r.maxLabel+label)*relCount+int(relY)] = true
	})

	for i, use := range r.flagged {
		if use {
			dst.Union(r.memo[i])
		}
	}
}

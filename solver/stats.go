// Package solver: statistics and failure diagnostics.
package solver

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tilesolve/core"
)

// NeighborCell is one arc of a neighborhood snapshot: the superposition of
// a neighboring slot and the relation from that neighbor back toward the
// slot that became empty.
type NeighborCell[S core.TileSet[S]] struct {
	Super S
	Rel   core.Relation
}

// Neighborhood snapshots the slots around a slot that became empty during
// propagation. It is indexed by relation; a nil entry marks a domain
// boundary. Superpositions are deep copies taken at failure time, so the
// snapshot stays valid across restarts.
type Neighborhood[S core.TileSet[S]] []*NeighborCell[S]

// String renders the neighborhood for diagnostics.
func (n Neighborhood[S]) String() string {
	var sb strings.Builder
	sb.WriteString("Neighborhood{")
	for rel, cell := range n {
		if rel > 0 {
			sb.WriteString(", ")
		}
		if cell == nil {
			fmt.Fprintf(&sb, "%d: border", rel)
			continue
		}
		fmt.Fprintf(&sb, "%d: %v (dual %d)", rel, cell.Super, cell.Rel)
	}
	sb.WriteString("}")

	return sb.String()
}

// Stats records what happened during a Solve call. Counters accumulate
// across attempts; Reset clears them, restarts do not.
type Stats[S core.TileSet[S]] struct {
	// AttemptCount is the number of attempts started.
	AttemptCount int

	// ObserveCount is the number of observe() calls, including the final
	// one that finds nothing left to observe.
	ObserveCount int

	// ChoiceCount is the number of observations whose slot still held more
	// than one tile before the collapse — the branching points of a solve.
	// It counts decisions, not their branching factor.
	ChoiceCount int

	// ImpossibleNeighborhoods holds one snapshot per slot that became
	// empty, retained for upstream diagnostics to highlight problematic
	// regions.
	ImpossibleNeighborhoods []Neighborhood[S]
}

// Package topology: regular 2D grid.
package topology

import (
	"fmt"

	"github.com/katalvlaran/tilesolve/core"
)

// Grid is the simplest slot topology: a width×height rectangle where every
// slot sees up to four axis-adjacent neighbors. Slots are indexed row-major
// as x + y·width. It is immutable once built.
type Grid struct {
	width, height int
}

// NewGrid constructs a grid topology.
// Returns ErrGridSize unless both dimensions are positive.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrGridSize, width, height)
	}

	return &Grid{width: width, height: height}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Index maps (x, y) to the row-major slot index x + y·width.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int { return x + y*g.width }

// Coordinate converts a slot index back to (x, y).
// Complexity: O(1).
func (g *Grid) Coordinate(slot int) (x, y int) {
	return slot % g.width, slot / g.width
}

// SlotCount returns width·height.
func (g *Grid) SlotCount() int { return g.width * g.height }

// RelationCount returns the four grid relations.
func (g *Grid) RelationCount() int { return GridRelationCount }

// InBounds reports whether (x, y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// NeighborOf shifts slot one step along rel and pairs the result with the
// dual relation, or returns ok=false when the shift leaves the rectangle.
// Complexity: O(1).
func (g *Grid) NeighborOf(slot int, rel core.Relation) (core.Neighbor, bool) {
	x, y := g.Coordinate(slot)
	switch rel {
	case PosX:
		x++
	case PosY:
		y++
	case NegX:
		x--
	case NegY:
		y--
	default:
		return core.Neighbor{}, false
	}
	if !g.InBounds(x, y) {
		return core.Neighbor{}, false
	}

	return core.Neighbor{Slot: g.Index(x, y), Dual: GridDual(rel)}, true
}

// Package topology defines relation tags and sentinel errors for the grid
// and mesh slot topologies.
package topology

import (
	"errors"

	"github.com/katalvlaran/tilesolve/core"
)

// Sentinel errors for topology construction.
var (
	// ErrGridSize indicates non-positive grid dimensions.
	ErrGridSize = errors.New("topology: grid dimensions must be > 0")
	// ErrFaceData indicates malformed mesh face records.
	ErrFaceData = errors.New("topology: invalid mesh face data")
	// ErrDualMismatch indicates face data whose dual relations do not
	// travel back to the origin face.
	ErrDualMismatch = errors.New("topology: dual relation does not round-trip")
)

// Grid relations: the four axis directions of a 2D grid.
// PosX/NegX and PosY/NegY are dual pairs (dual = relation XOR 2 in index
// terms, but use GridDual rather than relying on the encoding).
const (
	PosX core.Relation = iota // toward x+1
	PosY                      // toward y+1
	NegX                      // toward x-1
	NegY                      // toward y-1

	// GridRelationCount is the number of grid relations.
	GridRelationCount = 4
)

// GridDual returns the dual of a grid relation: PosX↔NegX, PosY↔NegY.
func GridDual(rel core.Relation) core.Relation {
	switch rel {
	case PosX:
		return NegX
	case PosY:
		return NegY
	case NegX:
		return PosX
	default:
		return PosY
	}
}

// Mesh relations: an abstract enumeration of a face's sides. The mesh owner
// knows the geometric meaning of each side; the solver only needs the tags
// and their stored duals.
const (
	Neighbor0 core.Relation = iota
	Neighbor1
	Neighbor2
	Neighbor3

	// MeshRelationCount is the number of mesh relations.
	MeshRelationCount = 4
)

// NoFace is the sentinel marking an absent neighbor in a Face record.
const NoFace = -1

// Package topology: mesh face graph.
package topology

import (
	"fmt"

	"github.com/katalvlaran/tilesolve/core"
)

// Face is one polygonal face of a mesh, seen as a slot. Neighbors lists the
// face indices across each side in relation order (NoFace for an absent
// side); Duals stores, for each present neighbor, the relation that travels
// back from that neighbor to this face. Both slices have the same length,
// at most MeshRelationCount.
type Face struct {
	Index     int
	Neighbors []int
	Duals     []core.Relation
}

// Mesh is a slot topology over the face graph of a polygonal mesh. Face
// adjacency is computed by the caller (the surrounding mesh pipeline); the
// topology only serves lookups. It is immutable once built.
type Mesh struct {
	faces []Face
}

// NewMesh validates and wraps the face records. Faces are deep-copied so
// later caller mutation cannot skew lookups.
//
// Validation: Face.Index must equal the record's position; Neighbors and
// Duals must have equal length ≤ MeshRelationCount; neighbor indices must
// be NoFace or in range; and every present arc must round-trip, i.e.
// faces[n].Neighbors[dual] == face.Index. Returns ErrFaceData or
// ErrDualMismatch accordingly.
// Complexity: O(F).
func NewMesh(faces []Face) (*Mesh, error) {
	copied := make([]Face, len(faces))
	for i, face := range faces {
		if face.Index != i {
			return nil, fmt.Errorf("%w: face %d carries index %d", ErrFaceData, i, face.Index)
		}
		if len(face.Neighbors) != len(face.Duals) {
			return nil, fmt.Errorf("%w: face %d has %d neighbors but %d dual relations",
				ErrFaceData, i, len(face.Neighbors), len(face.Duals))
		}
		if len(face.Neighbors) > MeshRelationCount {
			return nil, fmt.Errorf("%w: face %d has %d sides, at most %d supported",
				ErrFaceData, i, len(face.Neighbors), MeshRelationCount)
		}
		for _, n := range face.Neighbors {
			if n != NoFace && (n < 0 || n >= len(faces)) {
				return nil, fmt.Errorf("%w: face %d references neighbor %d", ErrFaceData, i, n)
			}
		}
		copied[i] = Face{
			Index:     face.Index,
			Neighbors: append([]int(nil), face.Neighbors...),
			Duals:     append([]core.Relation(nil), face.Duals...),
		}
	}

	m := &Mesh{faces: copied}
	for i := range copied {
		for rel := range copied[i].Neighbors {
			n, ok := m.NeighborOf(i, core.Relation(rel))
			if !ok {
				continue
			}
			back, ok := m.NeighborOf(n.Slot, n.Dual)
			if !ok || back.Slot != i || int(back.Dual) != rel {
				return nil, fmt.Errorf("%w: face %d relation %d", ErrDualMismatch, i, rel)
			}
		}
	}

	return m, nil
}

// Faces exposes the validated face records, for diagnostics and tests.
func (m *Mesh) Faces() []Face { return m.faces }

// SlotCount returns the number of faces.
func (m *Mesh) SlotCount() int { return len(m.faces) }

// RelationCount returns the abstract side enumeration size.
func (m *Mesh) RelationCount() int { return MeshRelationCount }

// NeighborOf indexes face slot's neighbor list by rel and returns the
// neighbor with its stored dual relation, or ok=false when the relation
// exceeds the face's side count or the side has no neighbor.
// Complexity: O(1).
func (m *Mesh) NeighborOf(slot int, rel core.Relation) (core.Neighbor, bool) {
	face := &m.faces[slot]
	if int(rel) >= len(face.Neighbors) {
		return core.Neighbor{}, false
	}
	neighbor := face.Neighbors[rel]
	if neighbor == NoFace {
		return core.Neighbor{}, false
	}

	return core.Neighbor{Slot: neighbor, Dual: face.Duals[rel]}, true
}

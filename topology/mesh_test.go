// File: topology/mesh_test.go
package topology

import (
	"errors"
	"testing"

	"github.com/katalvlaran/tilesolve/core"
)

// cubeFaces builds the face graph of a cube: six faces, each adjacent to
// the four faces that are not its opposite (opposite of face i is i^1).
// Relation slots are assigned edge by edge, so duals round-trip by
// construction.
func cubeFaces(t *testing.T) []Face {
	t.Helper()
	faces := make([]Face, 6)
	for i := range faces {
		faces[i] = Face{
			Index:     i,
			Neighbors: []int{NoFace, NoFace, NoFace, NoFace},
			Duals:     make([]core.Relation, 4),
		}
	}

	next := make([]int, 6) // next free relation slot per face
	for a := 0; a < 6; a++ {
		for b := a + 1; b < 6; b++ {
			if b == a^1 {
				continue // opposite faces share no edge
			}
			ra, rb := next[a], next[b]
			next[a]++
			next[b]++
			faces[a].Neighbors[ra] = b
			faces[a].Duals[ra] = core.Relation(rb)
			faces[b].Neighbors[rb] = a
			faces[b].Duals[rb] = core.Relation(ra)
		}
	}
	for i, n := range next {
		if n != 4 {
			t.Fatalf("cube face %d has %d edges; want 4", i, n)
		}
	}

	return faces
}

// TestMesh_Cube verifies lookups and the duality law on the cube graph.
func TestMesh_Cube(t *testing.T) {
	m, err := NewMesh(cubeFaces(t))
	if err != nil {
		t.Fatalf("NewMesh(cube) error = %v", err)
	}

	if m.SlotCount() != 6 {
		t.Errorf("SlotCount = %d; want 6", m.SlotCount())
	}
	if m.RelationCount() != MeshRelationCount {
		t.Errorf("RelationCount = %d; want %d", m.RelationCount(), MeshRelationCount)
	}

	for face := 0; face < 6; face++ {
		for rel := core.Relation(0); rel < MeshRelationCount; rel++ {
			n, ok := m.NeighborOf(face, rel)
			if !ok {
				t.Fatalf("cube face %d relation %d absent; want present", face, rel)
			}
			if n.Slot == face^1 {
				t.Errorf("face %d neighbors its opposite %d", face, n.Slot)
			}
			back, ok := m.NeighborOf(n.Slot, n.Dual)
			if !ok || back.Slot != face || back.Dual != rel {
				t.Fatalf("duality broken at face %d relation %d", face, rel)
			}
		}
	}
}

// TestMesh_Sentinels verifies that absent sides and short neighbor lists
// produce ok=false rather than bogus neighbors.
func TestMesh_Sentinels(t *testing.T) {
	faces := []Face{
		{Index: 0, Neighbors: []int{1, NoFace}, Duals: []core.Relation{0, 0}},
		{Index: 1, Neighbors: []int{0}, Duals: []core.Relation{0}},
	}
	m, err := NewMesh(faces)
	if err != nil {
		t.Fatalf("NewMesh error = %v", err)
	}

	if _, ok := m.NeighborOf(0, Neighbor1); ok {
		t.Error("NeighborOf across NoFace sentinel reported a neighbor")
	}
	if _, ok := m.NeighborOf(1, Neighbor2); ok {
		t.Error("NeighborOf past the neighbor list reported a neighbor")
	}
	if n, ok := m.NeighborOf(0, Neighbor0); !ok || n.Slot != 1 || n.Dual != Neighbor0 {
		t.Errorf("NeighborOf(0, Neighbor0) = (%v, %v); want face 1 dual 0", n, ok)
	}
}

// TestNewMesh_Errors rejects malformed and non-dual face data.
func TestNewMesh_Errors(t *testing.T) {
	t.Run("IndexMismatch", func(t *testing.T) {
		_, err := NewMesh([]Face{{Index: 1}})
		if !errors.Is(err, ErrFaceData) {
			t.Errorf("error = %v; want ErrFaceData", err)
		}
	})

	t.Run("RaggedLists", func(t *testing.T) {
		_, err := NewMesh([]Face{{Index: 0, Neighbors: []int{NoFace}, Duals: nil}})
		if !errors.Is(err, ErrFaceData) {
			t.Errorf("error = %v; want ErrFaceData", err)
		}
	})

	t.Run("NeighborOutOfRange", func(t *testing.T) {
		_, err := NewMesh([]Face{{Index: 0, Neighbors: []int{7}, Duals: []core.Relation{0}}})
		if !errors.Is(err, ErrFaceData) {
			t.Errorf("error = %v; want ErrFaceData", err)
		}
	})

	t.Run("DualMismatch", func(t *testing.T) {
		faces := []Face{
			{Index: 0, Neighbors: []int{1}, Duals: []core.Relation{0}},
			{Index: 1, Neighbors: []int{0}, Duals: []core.Relation{1}}, // does not travel back
		}
		_, err := NewMesh(faces)
		if !errors.Is(err, ErrDualMismatch) {
			t.Errorf("error = %v; want ErrDualMismatch", err)
		}
	})
}

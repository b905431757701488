// File: ruleset/table_test.go
package ruleset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilesolve/core"
	"github.com/katalvlaran/tilesolve/ndarray"
	"github.com/katalvlaran/tilesolve/ruleset"
	"github.com/katalvlaran/tilesolve/superpos"
	"github.com/katalvlaran/tilesolve/topology"
)

// checkerboardTable builds the 2-tile adjacency table where equal tiles
// never face each other: the Pos relations are authored and the Neg
// relations filled by dual symmetry.
func checkerboardTable(t *testing.T) *ndarray.Array3[bool] {
	t.Helper()
	table, err := ndarray.NewArray3[bool](2, 2, topology.GridRelationCount)
	require.NoError(t, err)

	for _, rel := range []core.Relation{topology.PosX, topology.PosY} {
		table.Set(false, 0, 0, int(rel))
		table.Set(true, 0, 1, int(rel))
		table.Set(true, 1, 0, int(rel))
		table.Set(false, 1, 1, int(rel))
	}
	// Mirror across dual pairs: table[b,a,dual(r)] = table[a,b,r].
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			for _, rel := range []core.Relation{topology.PosX, topology.PosY} {
				table.Set(table.At(a, b, int(rel)), b, a, int(topology.GridDual(rel)))
			}
		}
	}

	return table
}

// naiveWith builds a Naive over 2 tiles holding the given tiles.
func naiveWith(t *testing.T, tiles ...int) *superpos.Naive {
	t.Helper()
	s, err := superpos.NewNaive(2)
	require.NoError(t, err)
	for _, tile := range tiles {
		s.Add(tile)
	}

	return s
}

// TestTable_Checkerboard ports the checkerboard consistency scenario: the
// per-pair predicate and the bulk projection over a Naive superposition.
func TestTable_Checkerboard(t *testing.T) {
	rules, err := ruleset.NewTable[*superpos.Naive](checkerboardTable(t))
	require.NoError(t, err)

	const any = topology.PosX // second relation is unused by Table

	assert.False(t, rules.Allows(0, topology.NegX, 0, any))
	assert.True(t, rules.Allows(0, topology.PosX, 1, any))
	assert.True(t, rules.Allows(0, topology.NegX, 1, any))
	assert.True(t, rules.Allows(1, topology.PosX, 0, any))
	assert.False(t, rules.Allows(1, topology.NegY, 1, any))

	onlyA := naiveWith(t, 0)
	onlyB := naiveWith(t, 1)
	both := naiveWith(t, 0, 1)

	dst := both.EmptyClone()
	rules.AllowedStates(dst, onlyB, topology.NegY, any)
	assert.True(t, dst.Equal(onlyA), "allowedStates(onlyB, NegY) = %v; want %v", dst, onlyA)

	rules.AllowedStates(dst, both, topology.NegY, any)
	assert.True(t, dst.Equal(both), "allowedStates(both, NegY) = %v; want %v", dst, both)

	rules.AllowedStates(dst, both.EmptyClone(), topology.PosX, any)
	assert.True(t, dst.IsEmpty(), "projection of the empty superposition must be empty")
}

// TestTable_VerifySymmetry accepts the mirrored table and rejects a table
// broken on one dual pair.
func TestTable_VerifySymmetry(t *testing.T) {
	table := checkerboardTable(t)
	rules, err := ruleset.NewTable[*superpos.Naive](table)
	require.NoError(t, err)
	assert.NoError(t, rules.VerifySymmetry(topology.GridDual))

	table.Set(true, 0, 0, int(topology.PosX)) // NegX side still says false
	assert.ErrorIs(t, rules.VerifySymmetry(topology.GridDual), ruleset.ErrTableSymmetry)
}

// TestTable_DualSymmetryLaw checks the ruleset law on the canonical dual
// pairs: allows(x, r, y, dual(r)) == allows(y, dual(r), x, r).
func TestTable_DualSymmetryLaw(t *testing.T) {
	rules, err := ruleset.NewTable[*superpos.Naive](checkerboardTable(t))
	require.NoError(t, err)

	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for rel := core.Relation(0); rel < topology.GridRelationCount; rel++ {
				dual := topology.GridDual(rel)
				assert.Equal(t,
					rules.Allows(x, rel, y, dual),
					rules.Allows(y, dual, x, rel),
					"x=%d y=%d rel=%d", x, y, rel)
			}
		}
	}
}

// TestNewTable_Shape rejects non-square adjacency tables.
func TestNewTable_Shape(t *testing.T) {
	table, err := ndarray.NewArray3[bool](2, 3, 4)
	require.NoError(t, err)
	_, err = ruleset.NewTable[*superpos.Naive](table)
	assert.ErrorIs(t, err, ruleset.ErrTableShape)
}

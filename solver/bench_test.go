// File: solver/bench_test.go
package solver_test

import (
	"testing"

	"github.com/katalvlaran/tilesolve/ndarray"
	"github.com/katalvlaran/tilesolve/ruleset"
	"github.com/katalvlaran/tilesolve/solver"
	"github.com/katalvlaran/tilesolve/superpos"
	"github.com/katalvlaran/tilesolve/topology"
)

// benchProductLabels builds the full product Wang tileset over a palette
// of p colors (p⁴ tiles); every side-constraint combination has a tile, so
// benchmark solves always succeed.
func benchProductLabels(b *testing.B, palette int) (*ndarray.Array2[int], int) {
	b.Helper()
	tiles := palette * palette * palette * palette
	labels, err := ndarray.NewArray2[int](tiles, topology.GridRelationCount)
	if err != nil {
		b.Fatalf("labels: %v", err)
	}
	tile := 0
	for e := 1; e <= palette; e++ {
		for w := 1; w <= palette; w++ {
			for n := 1; n <= palette; n++ {
				for s := 1; s <= palette; s++ {
					labels.Set(e, tile, int(topology.PosX))
					labels.Set(-w, tile, int(topology.NegX))
					labels.Set(n, tile, int(topology.PosY))
					labels.Set(-s, tile, int(topology.NegY))
					tile++
				}
			}
		}
	}

	return labels, tiles
}

// BenchmarkSolve_Grid16 measures a full solve of a 16×16 grid over the
// 16-tile product tileset with the memoized ruleset on bitsets.
func BenchmarkSolve_Grid16(b *testing.B) {
	labels, tiles := benchProductLabels(b, 2)
	rules, err := ruleset.NewFastSignedWang(labels, tiles)
	if err != nil {
		b.Fatalf("ruleset: %v", err)
	}
	grid, err := topology.NewGrid(16, 16)
	if err != nil {
		b.Fatalf("grid: %v", err)
	}
	proto, err := superpos.NewBit(tiles)
	if err != nil {
		b.Fatalf("prototype: %v", err)
	}
	s, err := solver.New(grid, rules, proto, solver.WithRandomSeed(42))
	if err != nil {
		b.Fatalf("solver: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !s.Solve(true) {
			b.Fatal("benchmark instance did not solve")
		}
	}
}

// BenchmarkSolve_ReferenceStack is the naive-superposition twin of
// BenchmarkSolve_Grid16 on a smaller grid, for order-of-magnitude
// comparisons between the two stacks.
func BenchmarkSolve_ReferenceStack(b *testing.B) {
	labels, tiles := benchProductLabels(b, 2)
	rules, err := ruleset.NewSignedWang[*superpos.Naive](labels)
	if err != nil {
		b.Fatalf("ruleset: %v", err)
	}
	grid, err := topology.NewGrid(8, 8)
	if err != nil {
		b.Fatalf("grid: %v", err)
	}
	proto, err := superpos.NewNaive(tiles)
	if err != nil {
		b.Fatalf("prototype: %v", err)
	}
	proto.SetToAll()
	s, err := solver.New(grid, rules, proto, solver.WithRandomSeed(42))
	if err != nil {
		b.Fatalf("solver: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !s.Solve(true) {
			b.Fatal("benchmark instance did not solve")
		}
	}
}

// Package tilesolve is a tile-based constraint solver: a Wave Function
// Collapse engine that assigns one tile to every slot of a topology so
// that all adjacency rules hold.
//
// 🚀 What is tilesolve?
//
//	A small, deterministic constraint-satisfaction core that brings together:
//
//	  • Superpositions: the set of tiles still possible at a slot,
//	    as a reference set (superpos.Naive) or packed bits (superpos.Bit)
//	  • Rulesets: dense boolean tables, signed-Wang edge labels, and a
//	    memoized signed-Wang specialization for bitsets
//	  • Topologies: a regular 2D grid and an arbitrary mesh face graph
//	  • The solver: least-entropy observation, arc-consistent propagation,
//	    bounded restarts, and failure diagnostics
//
// ✨ Why choose tilesolve?
//
//   - Deterministic          — same inputs and seed, same output, every run
//   - Allocation-conscious   — steady-state solving reuses one scratch buffer
//   - Extensible             — initial-constraint hook, step-wise driving
//   - Pure Go                — no cgo
//
// Everything is organized under flat subpackages:
//
//	ndarray/   — fixed-rank contiguous arrays backing rule tables
//	core/      — shared contracts: Relation, Topology, TileSet, Ruleset
//	superpos/  — naive and bitset tile superpositions
//	ruleset/   — dense, signed-Wang, and fast signed-Wang rulesets
//	topology/  — grid and mesh slot topologies
//	solver/    — the observe–propagate loop with restarts and statistics
//	variant/   — tile-variant expansion and diagnostic rendering
//
// Quick ASCII example:
//
//	    ┌─┬─┬─┐       every cell starts as {all tiles} and collapses
//	    ├─┼─┼─┤       to a single tile consistent with its four
//	    └─┴─┴─┘       neighbors under the ruleset.
//
// See cmd/analysis for a batch experiment runner that charts solver
// statistics over randomized instances.
package tilesolve

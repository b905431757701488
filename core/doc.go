// Package core defines the shared vocabulary of the solver: relations,
// slot topologies, tile-set superpositions, and rulesets.
//
// What:
//
//   - Relation tags a direction from a slot toward one neighbor; every
//     relation has a dual on the reverse arc, owned by the topology.
//   - Topology is the neighbor oracle over densely indexed slots.
//   - TileSet is the capability contract of a tile superposition; it is an
//     F-bounded constraint so the solver monomorphizes per implementation.
//   - Ruleset answers whether two tiles may face each other across a
//     relation pair and projects whole superpositions across an arc.
//
// Why:
//
//   - Keeping the contracts in one leaf package lets superpositions,
//     rulesets, topologies, and the solver evolve independently while the
//     solver stays generic over all of them.
//
// Invariants:
//
//   - Topology duality: if NeighborOf(a, r) = (b, r'), then
//     NeighborOf(b, r') = (a, r).
//   - Ruleset dual symmetry: Allows(x, r, y, r') ⇔ Allows(y, r', x, r) for
//     the canonical dual pair (r, r').
//   - ProjectStates is the per-element reference semantics of
//     Ruleset.AllowedStates; optimized implementations must match it.
package core

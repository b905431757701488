// Package topology implements the slot-neighbor oracles the solver walks.
//
// What:
//
//   - Grid: a width×height rectangle with four relations
//     (PosX, PosY, NegX, NegY) and row-major slot indices x + y·width.
//   - Mesh: an arbitrary face graph of a polygonal mesh, each face carrying
//     up to four neighbor indices (NoFace marks an absent side) and, per
//     neighbor, the dual relation that travels back.
//
// Why:
//
//   - The solver never inspects geometry; it only asks "who is next to slot
//     s along relation r, and how do they see me back". Grid answers with
//     coordinate arithmetic, Mesh with caller-provided adjacency.
//
// Invariants:
//
//   - Duality: NeighborOf(a, r) = (b, r') implies NeighborOf(b, r') = (a, r).
//     Grid guarantees it by construction; NewMesh validates it and rejects
//     inconsistent face data.
//   - NeighborOf returns ok=false exactly at domain boundaries.
//
// Complexity:
//
//   - NeighborOf: O(1) for both topologies.
//
// Errors:
//
//   - ErrGridSize: non-positive grid dimensions.
//   - ErrFaceData: malformed face records (index mismatch, ragged neighbor
//     lists, out-of-range neighbor).
//   - ErrDualMismatch: face data whose dual relations do not round-trip.
package topology

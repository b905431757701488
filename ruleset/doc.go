// Package ruleset implements the admissibility oracles that constrain
// which tile pairs may face each other across a relation pair.
//
// What:
//
//   - Table: a dense boolean (N, N, R) adjacency table. The second relation
//     of an Allows query is unused; the dual direction is encoded by the
//     caller's symmetry contract, which VerifySymmetry can assert.
//   - SignedWang: a signed edge-label (N, R) table. Two tiles connect
//     across (rX, rY) iff label[x, rX] == -label[y, rY].
//   - FastSignedWang: the SignedWang semantics memoized for *superpos.Bit.
//     For every (label, relation) pair it precomputes the superposition of
//     matching tiles, replacing the O(|S|·N) projection scan by
//     O(|S| + R·maxLabel + popcount work).
//
// Why:
//
//   - The projection AllowedStates runs once per propagation edge, which is
//     the dominant cost of a solve; the memoized signed-Wang variant is the
//     optimization that makes practical tilesets cheap.
//
// Invariants:
//
//   - Dual symmetry: Allows(x, r, y, r') == Allows(y, r', x, r) for every
//     canonical dual pair.
//   - Every AllowedStates agrees with core.ProjectStates.
//
// Errors:
//
//   - ErrTableShape: a rule table has inconsistent or unusable extents.
//   - ErrTableSymmetry: an adjacency table breaks the dual-symmetry contract.
package ruleset

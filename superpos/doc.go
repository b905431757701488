// Package superpos implements tile superpositions: the set of tiles still
// possible at one slot of the solver.
//
// What:
//
//   - Bit packs the universe into 64-bit words with a lazily cached
//     population count. This is the implementation the solver is meant to
//     run on; MaskBy (bitwise AND) is the hot path of propagation.
//   - Naive stores a plain set of tile ids. It is the reference oracle for
//     tests and educational reading, not optimized.
//
// Both satisfy core.TileSet of themselves and behave identically under the
// public contract: set equality, uniform observation, monotone masking.
//
// Why:
//
//   - Propagation touches every neighbor arc of every observed slot; word
//     operations and popcounts keep that loop branch-light, while the naive
//     twin keeps the semantics honest.
//
// Complexity (universe N, W = ⌈N/64⌉ words):
//
//   - Bit: Contains/Add O(1); MaskBy/Union/Equal O(W); TileCount O(W) when
//     stale, O(1) cached; Observe O(W + popcount work).
//   - Naive: Contains/Add O(1); MaskBy/Union O(N); Observe O(N log N).
//
// Invariants:
//
//   - Trailing unused bits of the last word are always zero.
//   - MaskBy only removes tiles; Add/Union only insert.
//   - Observe requires a non-empty receiver and leaves exactly one tile;
//     on an empty receiver it panics (callers uphold the precondition).
//
// Errors:
//
//   - ErrUniverseSize: a constructor received a non-positive universe size.
package superpos

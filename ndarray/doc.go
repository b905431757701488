// Package ndarray provides fixed-rank, fixed-shape contiguous arrays used
// as backing storage for rule tables.
//
// What:
//
//   - Array2[T] and Array3[T] wrap a flat slice with column-major strides
//     [1, s0, s0·s1]: the first coordinate varies fastest.
//   - Shape and strides are fixed at construction; there is no resizing.
//   - At/Set use value semantics, so T may freely be bool or int.
//
// Why:
//
//   - Rulesets index (tile, tile, relation) and (tile, relation) tables in
//     their hottest loops; a flat slice with precomputed strides keeps those
//     lookups branch-free and cache-friendly.
//
// Complexity:
//
//   - At / Set / Shape / Stride: O(1).
//   - Construction: O(s0·…·s_{D-1}) time and memory.
//
// Errors:
//
//   - ErrInvalidShape: a constructor received a non-positive extent.
//
// Out-of-range indices are programmer error and panic, like slice indexing.
package ndarray

// Package variant expands user-authored tiles into the concrete tile
// variants the solver operates over.
//
// What:
//
//   - Each authored tile may permit flips (X, Y) and 90°-increment
//     rotations; the expansion emits one concrete variant per permitted
//     combination, in a stable order: identity first, flip-X doubling,
//     flip-Y doubling, rotation quadrupling.
//   - List maps dense variant ids — the tile ids the solver sees — back to
//     (authored tile, transform) records.
//   - Repr renders the diagnostic string persisted by upstream tooling:
//     "N (tile #T, transform fX fY 90d)", with each transform token
//     present only when active; absence of all tokens denotes identity.
//
// Why:
//
//   - Solver diagnostics (impossible neighborhoods, logs) speak in variant
//     ids; this package is the dictionary that makes them readable.
//
// Complexity:
//
//   - Expansion: O(total variants); Count/Tile: O(1); Repr: O(1).
package variant

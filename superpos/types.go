// Package superpos defines sentinel errors shared by both implementations.
package superpos

import "errors"

// ErrUniverseSize indicates a non-positive tile-universe size.
var ErrUniverseSize = errors.New("superpos: universe size must be > 0")

// panicObserveEmpty is the message raised when Observe meets an empty
// superposition. The operation is undefined there; failing loudly beats
// corrupting solver state.
const panicObserveEmpty = "superpos: Observe on an empty superposition"

// panicTileRange is the message raised when a tile id falls outside the
// universe [0, N).
const panicTileRange = "superpos: tile id out of universe range"

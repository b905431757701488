// Package superpos: word-packed superposition.
package superpos

import (
	"fmt"
	"math/bits"
	"math/rand"
	"strings"
)

// wordBits is the width of one storage word.
const wordBits = 64

// Bit is a tile superposition packed into 64-bit words. Bit position i of
// the word sequence represents tile i; trailing unused bits of the last
// word are always zero. The cardinality is cached and invalidated by bulk
// mutations, so TileCount is amortized O(1).
type Bit struct {
	universe   int
	words      []uint64
	count      int  // cached cardinality, redundant with words
	countReady bool // whether count reflects words
}

// NewBit returns the full superposition over a universe of n tiles:
// every bit set, cardinality n. Returns ErrUniverseSize if n <= 0.
// Complexity: O(⌈n/64⌉).
func NewBit(n int) (*Bit, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrUniverseSize, n)
	}
	b := &Bit{
		universe: n,
		words:    make([]uint64, (n+wordBits-1)/wordBits),
	}
	b.SetToAll()

	return b, nil
}

// SetToAll sets every bit of the universe and clears the trailing unused
// bits of the last word. Idempotent; cardinality becomes the universe size.
// Complexity: O(W).
func (b *Bit) SetToAll() {
	for i := range b.words {
		b.words[i] = ^uint64(0)
	}
	if unused := len(b.words)*wordBits - b.universe; unused > 0 {
		b.words[len(b.words)-1] &= ^uint64(0) >> uint(unused)
	}
	b.count = b.universe
	b.countReady = true
}

// SetToNone clears every bit. Idempotent; cardinality becomes zero.
// Complexity: O(W).
func (b *Bit) SetToNone() {
	for i := range b.words {
		b.words[i] = 0
	}
	b.count = 0
	b.countReady = true
}

// Contains reports whether the given tile is in the superposition.
// Complexity: O(1).
func (b *Bit) Contains(tile int) bool {
	if tile < 0 || tile >= b.universe {
		panic(panicTileRange)
	}

	return b.words[tile/wordBits]&(1<<uint(tile%wordBits)) != 0
}

// Add sets the bit of a single tile, keeping the cached cardinality exact.
// Adding a present tile is a no-op. Complexity: O(1).
func (b *Bit) Add(tile int) {
	if tile < 0 || tile >= b.universe {
		panic(panicTileRange)
	}
	word, mask := tile/wordBits, uint64(1)<<uint(tile%wordBits)
	if b.words[word]&mask == 0 {
		b.words[word] |= mask
		if b.countReady {
			b.count++
		}
	}
}

// Union ORs other into the receiver and reports whether any new bit was
// set. A change invalidates the cached cardinality. Complexity: O(W).
func (b *Bit) Union(other *Bit) bool {
	changed := false
	for i, w := range other.words {
		merged := b.words[i] | w
		if merged != b.words[i] {
			b.words[i] = merged
			changed = true
		}
	}
	if changed {
		b.countReady = false
	}

	return changed
}

// MaskBy ANDs the receiver with other, keeping only tiles present in both,
// and reports whether any bit was cleared. A change invalidates the cached
// cardinality. This is the hot path of propagation. Complexity: O(W).
func (b *Bit) MaskBy(other *Bit) bool {
	changed := false
	for i, w := range other.words {
		masked := b.words[i] & w
		if masked != b.words[i] {
			b.words[i] = masked
			changed = true
		}
	}
	if changed {
		b.countReady = false
	}

	return changed
}

// TileCount returns the cardinality, recomputing the population count only
// when a bulk mutation left the cache stale.
// Complexity: O(W) when stale, O(1) cached.
func (b *Bit) TileCount() int {
	if !b.countReady {
		n := 0
		for _, w := range b.words {
			n += bits.OnesCount64(w)
		}
		b.count = n
		b.countReady = true
	}

	return b.count
}

// UniverseSize returns the number of tiles in the universe.
func (b *Bit) UniverseSize() int { return b.universe }

// IsEmpty reports cardinality zero.
func (b *Bit) IsEmpty() bool { return b.TileCount() == 0 }

// Entropy returns max(0, TileCount()-1). A collapsed or empty superposition
// has entropy zero and is never selected for observation.
func (b *Bit) Entropy() float64 {
	if n := b.TileCount(); n > 1 {
		return float64(n - 1)
	}

	return 0
}

// Observe draws k uniformly in [0, TileCount()) and collapses the
// superposition to its k-th set bit in ascending order, returning that
// tile. Panics on an empty superposition.
// Complexity: O(W + popcount work).
func (b *Bit) Observe(rng *rand.Rand) int {
	n := b.TileCount()
	if n == 0 {
		panic(panicObserveEmpty)
	}
	k := rng.Intn(n)

	tile := -1
	for i, w := range b.words {
		pc := bits.OnesCount64(w)
		if k >= pc {
			k -= pc
			continue
		}
		// The k-th set bit lives in this word.
		for ; ; k-- {
			low := bits.TrailingZeros64(w)
			if k == 0 {
				tile = i*wordBits + low
				break
			}
			w &= w - 1 // drop lowest set bit
		}
		break
	}

	b.SetToNone()
	b.Add(tile)

	return tile
}

// Each visits the contained tiles in strictly ascending order.
// Complexity: O(W + TileCount()).
func (b *Bit) Each(fn func(tile int)) {
	for i, w := range b.words {
		for w != 0 {
			low := bits.TrailingZeros64(w)
			fn(i*wordBits + low)
			w &= w - 1
		}
	}
}

// Tiles returns the contained tiles as a fresh ascending slice.
func (b *Bit) Tiles() []int {
	out := make([]int, 0, b.TileCount())
	b.Each(func(tile int) { out = append(out, tile) })

	return out
}

// Clone returns an independent copy sharing no storage.
func (b *Bit) Clone() *Bit {
	words := make([]uint64, len(b.words))
	copy(words, b.words)

	return &Bit{universe: b.universe, words: words, count: b.count, countReady: b.countReady}
}

// EmptyClone returns an empty superposition over the same universe.
func (b *Bit) EmptyClone() *Bit {
	return &Bit{universe: b.universe, words: make([]uint64, len(b.words)), count: 0, countReady: true}
}

// Equal reports word-wise equality, which is set equality given the
// trailing-bits invariant.
func (b *Bit) Equal(other *Bit) bool {
	if b.universe != other.universe {
		return false
	}
	for i, w := range b.words {
		if other.words[i] != w {
			return false
		}
	}

	return true
}

// String renders the superposition for diagnostics, e.g. "Bit{0, 2, 5}".
func (b *Bit) String() string {
	var sb strings.Builder
	sb.WriteString("Bit{")
	first := true
	b.Each(func(tile int) {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", tile)
		first = false
	})
	sb.WriteString("}")

	return sb.String()
}

// Package variant implements the tile-variant expansion list.
package variant

import (
	"fmt"
	"strings"
)

// Orientation is a rotation in 90° increments.
type Orientation int

// Orientations, counterclockwise.
const (
	Deg0 Orientation = iota
	Deg90
	Deg180
	Deg270

	orientationCount = 4
)

// Transform is one concrete placement transform of an authored tile.
// The zero value is the identity.
type Transform struct {
	FlipX       bool
	FlipY       bool
	Orientation Orientation
}

// TransformedTile binds an authored tile index to one permitted transform;
// it is what a concrete variant id resolves to.
type TransformedTile struct {
	TileIndex int
	Transform Transform
}

// Spec describes one authored tile as fed to the expansion: which
// transforms it permits and whether it is excluded from the tileset.
type Spec struct {
	FlipX    bool // permit mirroring along X
	FlipY    bool // permit mirroring along Y
	Rotation bool // permit 90°-increment rotations
	Ignore   bool // exclude this tile from the expansion
}

// List is the expanded variant list: the dense tile universe the solver
// operates over, with a mapping back to authored tiles and transforms.
type List struct {
	variants []TransformedTile
}

// NewList expands the authored tiles. For each non-ignored tile the
// transform set starts at the identity and is doubled by flip-X, doubled
// by flip-Y, then quadrupled by rotation, in that order — so variant ids
// are stable for a given authoring sequence.
func NewList(tiles []Spec) *List {
	l := &List{}
	for tileIndex, tile := range tiles {
		if tile.Ignore {
			continue
		}

		transforms := []Transform{{}}
		if tile.FlipX {
			prev := transforms
			transforms = make([]Transform, 0, 2*len(prev))
			for _, tr := range prev {
				transforms = append(transforms, tr)
				tr.FlipX = !tr.FlipX
				transforms = append(transforms, tr)
			}
		}
		if tile.FlipY {
			prev := transforms
			transforms = make([]Transform, 0, 2*len(prev))
			for _, tr := range prev {
				transforms = append(transforms, tr)
				tr.FlipY = !tr.FlipY
				transforms = append(transforms, tr)
			}
		}
		if tile.Rotation {
			prev := transforms
			transforms = make([]Transform, 0, orientationCount*len(prev))
			for _, tr := range prev {
				base := tr.Orientation
				for i := 0; i < orientationCount; i++ {
					tr.Orientation = Orientation((int(base) + i) % orientationCount)
					transforms = append(transforms, tr)
				}
			}
		}

		for _, tr := range transforms {
			l.variants = append(l.variants, TransformedTile{TileIndex: tileIndex, Transform: tr})
		}
	}

	return l
}

// Count returns the number of concrete variants — the solver's universe
// size.
func (l *List) Count() int { return len(l.variants) }

// Tile resolves a variant id to its authored tile and transform.
func (l *List) Tile(variant int) TransformedTile { return l.variants[variant] }

// Repr renders the diagnostic form of a variant:
// "N (tile #T, transform fX fY 90d)". Transform tokens appear only when
// active; a bare "transform)" denotes the identity.
func (l *List) Repr(variant int) string {
	var sb strings.Builder
	tt := l.Tile(variant)

	fmt.Fprintf(&sb, "%d (tile #%d, transform", variant, tt.TileIndex)

	if tt.Transform.FlipX {
		sb.WriteString(" fX")
	}
	if tt.Transform.FlipY {
		sb.WriteString(" fY")
	}

	switch tt.Transform.Orientation {
	case Deg0:
	case Deg90:
		sb.WriteString(" 90d")
	case Deg180:
		sb.WriteString(" 180d")
	case Deg270:
		sb.WriteString(" 270d")
	}

	sb.WriteString(")")

	return sb.String()
}

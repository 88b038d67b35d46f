package snake

import (
	"math/rand"

	"github.com/vovakirdan/term-snake/internal/core"
)

// Playfield dimensions. Walls sit on row/column 0 and on Width/Height;
// the interior is [1, Width-1] x [1, Height-1].
const (
	Width  = 50
	Height = 30
)

// WinLength is the body length that ends the session in victory.
const WinLength = 10

// HitWall reports whether p lies on or beyond the border.
func HitWall(p core.Point) bool {
	return p.X >= Width || p.X < 1 || p.Y < 1 || p.Y >= Height
}

// Collides reports whether two cells are the same.
func Collides(a, b core.Point) bool {
	return a.Equal(b)
}

// RandomInterior returns a uniformly distributed interior cell.
func RandomInterior(rng *rand.Rand) core.Point {
	return core.Point{
		X: 1 + rng.Intn(Width-1),
		Y: 1 + rng.Intn(Height-1),
	}
}

// Package core provides fundamental types shared by the game logic and the
// terminal platform. It has no external dependencies (especially no Bubble Tea)
// so the game rules stay pure and testable.
package core

import "fmt"

// Point is a cell coordinate on the playfield.
// X grows to the right, Y grows downwards, (0, 0) is the top-left wall corner.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Equal reports whether both coordinates match exactly.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Contains reports whether p lies in any of the given points.
func Contains(points []Point, p Point) bool {
	for _, q := range points {
		if q.Equal(p) {
			return true
		}
	}
	return false
}

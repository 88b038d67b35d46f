package snake

import "github.com/vovakirdan/term-snake/internal/core"

// Snake is an ordered body of items, head at index 0.
// The body is never empty.
type Snake struct {
	body      []Item
	direction Direction
}

// NewSnake creates a one-segment snake heading up.
func NewSnake(head Item) *Snake {
	return &Snake{
		body:      []Item{head},
		direction: DirUp,
	}
}

// Head returns the first segment.
func (s *Snake) Head() Item {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Body returns a copy of all segments, head first.
func (s *Snake) Body() []Item {
	out := make([]Item, len(s.body))
	copy(out, s.body)
	return out
}

// Positions returns the cells covered by the body, head first.
func (s *Snake) Positions() []core.Point {
	out := make([]core.Point, len(s.body))
	for i, seg := range s.body {
		out[i] = seg.Pos
	}
	return out
}

// Occupies reports whether any segment covers p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if Collides(seg.Pos, p) {
			return true
		}
	}
	return false
}

// HitsBody reports whether p lands on any segment other than the head.
func (s *Snake) HitsBody(p core.Point) bool {
	for i, seg := range s.body {
		if i != 0 && Collides(seg.Pos, p) {
			return true
		}
	}
	return false
}

// NextHead returns the cell the head moves to on the next step.
// Movement wraps at the outer edge of the field (0 and Width/Height), not at
// the wall; wall death normally ends the run before wrapping can happen.
func (s *Snake) NextHead() core.Point {
	head := s.Head().Pos
	switch s.direction {
	case DirUp:
		if head.Y == 0 {
			return core.Pt(head.X, Height-1)
		}
		return head.Add(0, -1)
	case DirDown:
		if head.Y == Height {
			return core.Pt(head.X, 1)
		}
		return head.Add(0, 1)
	case DirLeft:
		if head.X == 0 {
			return core.Pt(Width-1, head.Y)
		}
		return head.Add(-1, 0)
	default:
		if head.X == Width {
			return core.Pt(1, head.Y)
		}
		return head.Add(1, 0)
	}
}

// Move advances the snake one cell. Without growth the tail is dropped
// before the new head is prepended; with growth the length increases by one.
func (s *Snake) Move(grow bool) {
	next := s.NextHead()
	head := NewItem(GlyphSnake, core.ColorBlue, next.X, next.Y)

	if !grow {
		s.body = s.body[:len(s.body)-1]
	}
	s.body = append([]Item{head}, s.body...)
}

// Shrink removes the tail segment. A one-segment snake is left unchanged and
// Shrink reports false.
func (s *Snake) Shrink() bool {
	if len(s.body) <= 1 {
		return false
	}
	s.body = s.body[:len(s.body)-1]
	return true
}

// ChangeDirection turns the snake according to an arrow key.
// Reversing onto itself and non-arrow keys leave the heading unchanged.
// Reports whether the heading changed.
func (s *Snake) ChangeDirection(k core.Key) bool {
	dir, ok := directionForKey(k)
	if !ok || dir == s.direction.Opposite() || dir == s.direction {
		return false
	}
	s.direction = dir
	return true
}

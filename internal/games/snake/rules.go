package snake

import "github.com/vovakirdan/term-snake/internal/core"

// Status is the state of a session.
type Status int

const (
	StatusRunning Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// OutcomeFor derives the end state from the final body length alone,
// regardless of what ended the run.
func OutcomeFor(length int) Status {
	if length >= WinLength {
		return StatusWon
	}
	return StatusLost
}

// Verdict holds every collision fact for one tick, all computed against the
// body as it was before the move.
type Verdict struct {
	NextHead      core.Point
	WillGrow      bool
	HitWall       bool
	HitBomb       bool
	SelfCollision bool
}

// Evaluate inspects the next step of s without changing anything.
func Evaluate(s *Snake, food Item, bomb *Bomb) Verdict {
	next := s.NextHead()
	return Verdict{
		NextHead:      next,
		WillGrow:      Collides(next, food.Pos),
		HitWall:       HitWall(next),
		HitBomb:       bomb != nil && bomb.Armed() && Collides(next, bomb.Pos),
		SelfCollision: s.HitsBody(next),
	}
}

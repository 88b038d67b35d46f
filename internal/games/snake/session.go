package snake

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
)

// Session is one game from the first tick to won or lost.
// Restarting means creating a new Session; a finished session is never reused.
type Session struct {
	id     string
	seed   int64
	cfg    config.Config
	rng    *rand.Rand
	tick   uint64
	status Status

	snake *Snake
	food  Item
	bomb  *Bomb
}

// NewSession creates a fresh game: food in the middle of the field, a
// one-segment snake six rows below it heading up, and an armed bomb at a
// random interior cell.
func NewSession(cfg config.Config, seed int64, now time.Time) *Session {
	rng := rand.New(rand.NewSource(seed))
	s := &Session{
		id:     uuid.NewString(),
		seed:   seed,
		cfg:    cfg,
		rng:    rng,
		status: StatusRunning,
		food:   NewItem(GlyphFood, core.ColorBlue, Width/2, Height/2),
		snake:  NewSnake(NewItem(GlyphSnake, core.ColorRed, Width/2, Height/2+6)),
	}
	s.bomb = NewBomb(RandomInterior(rng), cfg.Bomb.Timeout(), now)
	return s
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Seed returns the RNG seed the session was created with.
func (s *Session) Seed() int64 { return s.seed }

// Status returns the current session state.
func (s *Session) Status() Status { return s.status }

// Snake returns the player's snake.
func (s *Session) Snake() *Snake { return s.snake }

// Food returns the food item.
func (s *Session) Food() Item { return s.food }

// Bomb returns the hazard.
func (s *Session) Bomb() *Bomb { return s.bomb }

// NextSeed draws a seed for the session that replaces this one.
func (s *Session) NextSeed() int64 {
	return s.rng.Int63()
}

// UpdateBomb runs the hazard lifecycle for this tick: an armed bomb past its
// timeout hides, and a hidden bomb may reappear at a new random cell.
func (s *Session) UpdateBomb(now time.Time) {
	s.bomb.Expire(now)

	if !s.bomb.Visible && s.rng.Float64() < s.cfg.Bomb.RespawnChance {
		s.bomb.Rearm(RandomInterior(s.rng), now)
	}
}

// Interval returns how long the current tick waits for input.
func (s *Session) Interval() time.Duration {
	return s.cfg.Pace.Interval(s.snake.Direction().IsVertical(), s.snake.Len())
}

// HandleKey forwards a key to the snake's steering.
func (s *Session) HandleKey(k core.Key) {
	if s.status != StatusRunning {
		return
	}
	s.snake.ChangeDirection(k)
}

// Advance resolves collisions for the next step and either commits the move
// or ends the session. Rules apply in a fixed order: food, wall, bomb, self.
func (s *Session) Advance() Status {
	if s.status != StatusRunning {
		return s.status
	}
	s.tick++

	v := Evaluate(s.snake, s.food, s.bomb)

	if v.WillGrow {
		s.relocateFood(v.NextHead)
		if s.snake.Len()+1 >= WinLength {
			s.snake.Move(true)
			return s.end()
		}
	} else if v.HitWall && s.snake.Len() < WinLength {
		return s.end()
	}

	if v.HitBomb {
		if !s.snake.Shrink() {
			return s.end()
		}
		s.bomb.Disarm()
	}

	if v.SelfCollision {
		return s.end()
	}

	s.snake.Move(v.WillGrow)
	return s.status
}

// end stops the session; the outcome depends only on the final length.
func (s *Session) end() Status {
	s.status = OutcomeFor(s.snake.Len())
	return s.status
}

// relocateFood moves the food to a random interior cell that is not covered
// by the snake or by the head about to be placed.
func (s *Session) relocateFood(nextHead core.Point) {
	for {
		p := RandomInterior(s.rng)
		if !s.snake.Occupies(p) && !Collides(p, nextHead) {
			s.food.Pos = p
			return
		}
	}
}

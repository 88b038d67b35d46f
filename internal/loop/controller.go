package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/games/snake"
)

// ErrHardQuit is returned by Run when the player aborts with Ctrl+Q or Ctrl+C.
var ErrHardQuit = errors.New("loop: hard quit")

// Phase is a state of the controller.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseEnded
	PhaseAwaitingChoice
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	case PhaseAwaitingChoice:
		return "awaiting_choice"
	default:
		return "unknown"
	}
}

// Controller runs sessions against an Adapter.
type Controller struct {
	adapter Adapter
	cfg     config.Config
	logger  *log.Logger
	now     func() time.Time
	seed    int64
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithClock replaces time.Now for bomb timing.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithSeed sets the seed of the first session. Later sessions draw their
// seed from the previous one.
func WithSeed(seed int64) Option {
	return func(c *Controller) {
		c.seed = seed
	}
}

// New creates a controller.
func New(a Adapter, cfg config.Config, opts ...Option) *Controller {
	c := &Controller{
		adapter: a,
		cfg:     cfg,
		logger:  log.New(io.Discard),
		now:     time.Now,
		seed:    time.Now().UnixNano(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run enters game mode and plays until the player leaves.
// It returns nil when the player quits from the end screen, ErrHardQuit on the
// hard quit combo, and any adapter or context error otherwise. Game mode is
// left before Run returns in every case.
func (c *Controller) Run(ctx context.Context) (err error) {
	if err := c.adapter.EnterGameMode(); err != nil {
		return fmt.Errorf("loop: enter game mode: %w", err)
	}
	defer func() {
		if leaveErr := c.adapter.LeaveGameMode(); leaveErr != nil && err == nil {
			err = fmt.Errorf("loop: leave game mode: %w", leaveErr)
		}
	}()

	session := c.newSession(c.seed)
	phase := PhaseRunning

	for {
		switch phase {
		case PhaseRunning:
			status, err := c.play(ctx, session)
			if err != nil {
				return err
			}
			c.logger.Info("session ended",
				"session", session.ID(),
				"status", status,
				"length", session.Snake().Len(),
			)
			phase = PhaseEnded

		case PhaseEnded:
			if err := session.RenderEnd(c.adapter); err != nil {
				return fmt.Errorf("loop: render end screen: %w", err)
			}
			phase = PhaseAwaitingChoice

		case PhaseAwaitingChoice:
			restart, err := c.awaitChoice(ctx)
			if err != nil {
				return err
			}
			if !restart {
				c.logger.Info("player quit", "session", session.ID())
				return nil
			}
			c.logger.Debug("restart requested", "session", session.ID())
			session = c.newSession(session.NextSeed())
			phase = PhaseRunning
		}
	}
}

func (c *Controller) newSession(seed int64) *snake.Session {
	s := snake.NewSession(c.cfg, seed, c.now())
	c.logger.Info("session started", "session", s.ID(), "seed", seed)
	return s
}

// play runs ticks until the session ends.
func (c *Controller) play(ctx context.Context, s *snake.Session) (snake.Status, error) {
	for {
		if err := s.Render(c.adapter); err != nil {
			return 0, fmt.Errorf("loop: render: %w", err)
		}

		s.UpdateBomb(c.now())

		key, ok, err := c.adapter.PollKey(ctx, s.Interval())
		if err != nil {
			return 0, fmt.Errorf("loop: poll key: %w", err)
		}
		if ok {
			if key == core.KeyHardQuit {
				c.logger.Warn("hard quit", "session", s.ID(), "length", s.Snake().Len())
				return 0, ErrHardQuit
			}
			s.HandleKey(key)
		}

		if status := s.Advance(); status != snake.StatusRunning {
			c.logger.Debug("final state", "snapshot", s.Snapshot())
			return status, nil
		}
	}
}

// awaitChoice blocks until Esc (false) or r (true). The hard quit combo
// returns ErrHardQuit; other keys are ignored.
func (c *Controller) awaitChoice(ctx context.Context) (bool, error) {
	for {
		key, err := c.adapter.ReadKey(ctx)
		if err != nil {
			return false, fmt.Errorf("loop: read key: %w", err)
		}
		switch key {
		case core.KeyEscape:
			return false, nil
		case core.KeyRestart:
			return true, nil
		case core.KeyHardQuit:
			c.logger.Warn("hard quit on end screen")
			return false, ErrHardQuit
		}
	}
}

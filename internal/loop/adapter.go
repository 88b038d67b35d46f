// Package loop drives snake sessions: it owns the per-tick sequence, the
// end screen and restarts, and guarantees the terminal is released on every
// exit path.
package loop

import (
	"context"
	"time"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/games/snake"
)

// Adapter is the terminal collaborator consumed by the controller.
type Adapter interface {
	snake.Canvas

	// EnterGameMode acquires the terminal: raw input, alternate screen,
	// hidden cursor.
	EnterGameMode() error

	// LeaveGameMode restores the terminal. It must be safe to call more than once.
	LeaveGameMode() error

	// PollKey waits up to timeout for a key. ok is false when the timeout
	// elapsed without input.
	PollKey(ctx context.Context, timeout time.Duration) (key core.Key, ok bool, err error)

	// ReadKey blocks until a key arrives.
	ReadKey(ctx context.Context) (core.Key, error)
}

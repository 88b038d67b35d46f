// Package tui provides the Bubble Tea integration for the snake game.
// Terminal owns raw mode, the alternate screen and the hidden cursor for the
// lifetime of a run; the game loop talks to it through plain method calls.
package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term-snake/internal/core"
)

var (
	// ErrClosed is returned once the Bubble Tea program has stopped.
	ErrClosed = errors.New("tui: terminal closed")

	// ErrNotEntered is returned when the terminal is used outside game mode.
	ErrNotEntered = errors.New("tui: game mode not entered")
)

// shutdownGrace is how long LeaveGameMode waits for a clean exit before
// killing the program.
const shutdownGrace = time.Second

// Terminal renders frames and reads keys through a Bubble Tea program.
type Terminal struct {
	keys   KeyMap
	opts   []tea.ProgramOption
	screen *core.Screen
	events chan core.Key

	program *tea.Program
	done    chan struct{}
	runErr  error

	leaveOnce sync.Once
	leaveErr  error
}

// NewTerminal creates a terminal with a width x height frame buffer.
// Extra program options are appended to the defaults (alternate screen, no
// signal handler).
func NewTerminal(width, height int, opts ...tea.ProgramOption) *Terminal {
	return &Terminal{
		keys:   DefaultKeyMap(),
		opts:   opts,
		screen: core.NewScreen(width, height),
		events: make(chan core.Key, 16),
	}
}

// EnterGameMode starts the Bubble Tea program.
func (t *Terminal) EnterGameMode() error {
	if t.done != nil {
		return errors.New("tui: game mode already entered")
	}

	// Signals are handled by the caller's context so teardown stays in one place
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithoutSignalHandler()}, t.opts...)
	t.program = tea.NewProgram(newModel(t.keys, t.events), opts...)
	t.done = make(chan struct{})

	go func() {
		_, err := t.program.Run()
		t.runErr = err
		close(t.done)
	}()
	return nil
}

// LeaveGameMode stops the program and restores the terminal.
// Only the first call does anything.
func (t *Terminal) LeaveGameMode() error {
	if t.done == nil {
		return nil
	}
	t.leaveOnce.Do(func() {
		t.program.Quit()
		select {
		case <-t.done:
		case <-time.After(shutdownGrace):
			t.program.Kill()
			<-t.done
		}
		if t.runErr != nil && !errors.Is(t.runErr, tea.ErrProgramKilled) {
			t.leaveErr = fmt.Errorf("tui: program: %w", t.runErr)
		}
	})
	return t.leaveErr
}

// ClearFrame wipes the frame buffer.
func (t *Terminal) ClearFrame() error {
	t.screen.Clear()
	return nil
}

// DrawGlyph places one colored rune in the frame buffer.
func (t *Terminal) DrawGlyph(x, y int, glyph rune, color core.Color) error {
	t.screen.SetColored(x, y, glyph, color)
	return nil
}

// Flush sends the frame buffer to the program for display.
func (t *Terminal) Flush() error {
	if t.done == nil {
		return ErrNotEntered
	}
	select {
	case <-t.done:
		return t.closedErr()
	default:
	}
	t.program.Send(frameMsg(RenderScreen(t.screen)))
	return nil
}

// PollKey waits up to timeout for a key press.
func (t *Terminal) PollKey(ctx context.Context, timeout time.Duration) (core.Key, bool, error) {
	if t.done == nil {
		return core.KeyNone, false, ErrNotEntered
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case k := <-t.events:
		return k, true, nil
	case <-timer.C:
		return core.KeyNone, false, nil
	case <-t.done:
		return core.KeyNone, false, t.closedErr()
	case <-ctx.Done():
		return core.KeyNone, false, ctx.Err()
	}
}

// ReadKey blocks until a key press arrives.
func (t *Terminal) ReadKey(ctx context.Context) (core.Key, error) {
	if t.done == nil {
		return core.KeyNone, ErrNotEntered
	}

	select {
	case k := <-t.events:
		return k, nil
	case <-t.done:
		return core.KeyNone, t.closedErr()
	case <-ctx.Done():
		return core.KeyNone, ctx.Err()
	}
}

// closedErr reports why the program stopped. Call only after done is closed.
func (t *Terminal) closedErr() error {
	if t.runErr != nil {
		return fmt.Errorf("%w: %w", ErrClosed, t.runErr)
	}
	return ErrClosed
}

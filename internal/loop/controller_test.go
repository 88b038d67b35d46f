package loop

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/games/snake"
)

var errScriptDone = errors.New("script exhausted")

// fakeAdapter replays scripted keys and renders into a core.Screen.
type fakeAdapter struct {
	screen   *core.Screen
	polls    []core.Key // KeyNone means "timeout"
	reads    []core.Key
	pollErr  error
	enterErr error

	entered   int
	left      int
	pollCount int
	timeouts  []time.Duration
	frames    []string
}

func newFakeAdapter() *fakeAdapter {
	return &fakeAdapter{screen: core.NewScreen(snake.FrameWidth, snake.FrameHeight)}
}

func (f *fakeAdapter) EnterGameMode() error {
	if f.enterErr != nil {
		return f.enterErr
	}
	f.entered++
	return nil
}

func (f *fakeAdapter) LeaveGameMode() error {
	f.left++
	return nil
}

func (f *fakeAdapter) ClearFrame() error {
	f.screen.Clear()
	return nil
}

func (f *fakeAdapter) DrawGlyph(x, y int, glyph rune, color core.Color) error {
	f.screen.SetColored(x, y, glyph, color)
	return nil
}

func (f *fakeAdapter) Flush() error {
	f.frames = append(f.frames, f.screen.String())
	return nil
}

func (f *fakeAdapter) PollKey(ctx context.Context, timeout time.Duration) (core.Key, bool, error) {
	if f.pollErr != nil {
		return core.KeyNone, false, f.pollErr
	}
	f.pollCount++
	if f.pollCount > 10000 {
		return core.KeyNone, false, errScriptDone
	}
	f.timeouts = append(f.timeouts, timeout)
	if len(f.polls) == 0 {
		return core.KeyNone, false, nil
	}
	k := f.polls[0]
	f.polls = f.polls[1:]
	return k, k != core.KeyNone, nil
}

func (f *fakeAdapter) ReadKey(ctx context.Context) (core.Key, error) {
	if len(f.reads) == 0 {
		return core.KeyNone, errScriptDone
	}
	k := f.reads[0]
	f.reads = f.reads[1:]
	return k, nil
}

func (f *fakeAdapter) lastFrame() string {
	if len(f.frames) == 0 {
		return ""
	}
	return f.frames[len(f.frames)-1]
}

func fixedClock() func() time.Time {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time { return now }
}

// newTestController disables the bomb: it hides on the first tick and never
// comes back, so scripted runs are not affected by where it spawned.
func newTestController(a Adapter) *Controller {
	cfg := config.Default()
	cfg.Bomb.TimeoutMs = 0
	cfg.Bomb.RespawnChance = 0
	return New(a, cfg, WithSeed(42), WithClock(fixedClock()))
}

func TestHardQuit(t *testing.T) {
	a := newFakeAdapter()
	a.polls = []core.Key{core.KeyNone, core.KeyHardQuit}

	err := newTestController(a).Run(context.Background())
	if !errors.Is(err, ErrHardQuit) {
		t.Fatalf("Run() = %v, expected ErrHardQuit", err)
	}
	if a.entered != 1 || a.left != 1 {
		t.Errorf("game mode entered %d / left %d times, expected 1 / 1", a.entered, a.left)
	}
	if a.pollCount != 2 {
		t.Errorf("hard quit should stop polling, polled %d times", a.pollCount)
	}
}

func TestHardQuitOnEndScreen(t *testing.T) {
	a := newFakeAdapter()
	a.polls = []core.Key{core.KeyLeft}
	a.reads = []core.Key{core.KeyDown, core.KeyHardQuit, core.KeyEscape}

	err := newTestController(a).Run(context.Background())
	if !errors.Is(err, ErrHardQuit) {
		t.Fatalf("Run() = %v, expected ErrHardQuit", err)
	}
	if a.left != 1 {
		t.Errorf("game mode should be left once, got %d", a.left)
	}
	if len(a.reads) != 1 {
		t.Errorf("reading should stop at the hard quit, %d reads left", len(a.reads))
	}
}

func TestLoseThenQuit(t *testing.T) {
	a := newFakeAdapter()
	// Steer left into the wall
	a.polls = []core.Key{core.KeyLeft}
	a.reads = []core.Key{core.KeyOther, core.KeyDown, core.KeyEscape}

	if err := newTestController(a).Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v, expected nil", err)
	}
	if a.left != 1 {
		t.Errorf("game mode should be left once, got %d", a.left)
	}
	if len(a.reads) != 0 {
		t.Errorf("unused scripted reads: %v", a.reads)
	}
	if !strings.Contains(a.lastFrame(), "GAME OVER") {
		t.Errorf("last frame should be the game over screen:\n%s", a.lastFrame())
	}
}

func TestRestartStartsFreshSession(t *testing.T) {
	a := newFakeAdapter()
	a.polls = []core.Key{core.KeyLeft}
	a.reads = []core.Key{core.KeyRestart, core.KeyEscape}

	if err := newTestController(a).Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v, expected nil", err)
	}

	endScreens := 0
	firstEnd := -1
	for i, frame := range a.frames {
		if strings.Contains(frame, "r - Restart") {
			endScreens++
			if firstEnd < 0 {
				firstEnd = i
			}
		}
	}
	if endScreens != 2 {
		t.Fatalf("expected 2 end screens, got %d", endScreens)
	}

	// The frame after the first end screen belongs to a brand-new session:
	// one segment back at the start cell (unless the bomb covers it).
	next := a.frames[firstEnd+1]
	if !strings.Contains(next, "HP: 1") {
		t.Errorf("restarted session should start with one segment:\n%s", next)
	}
	rows := strings.Split(next, "\n")
	if c := rows[21][25]; c != snake.GlyphSnake && c != snake.GlyphBomb {
		t.Errorf("restarted snake should be at (25,21), found %q", c)
	}
	if a.entered != 1 || a.left != 1 {
		t.Errorf("restart must not re-enter game mode: entered %d, left %d", a.entered, a.left)
	}
}

func TestPollUsesAdaptiveInterval(t *testing.T) {
	a := newFakeAdapter()
	a.polls = []core.Key{core.KeyNone, core.KeyLeft, core.KeyNone, core.KeyHardQuit}

	_ = newTestController(a).Run(context.Background())

	expected := []time.Duration{
		149 * time.Millisecond, // heading up, one segment
		149 * time.Millisecond,
		99 * time.Millisecond, // heading left after the turn
		99 * time.Millisecond,
	}
	if len(a.timeouts) != len(expected) {
		t.Fatalf("got %d polls, expected %d", len(a.timeouts), len(expected))
	}
	for i, want := range expected {
		if a.timeouts[i] != want {
			t.Errorf("poll %d timeout = %v, expected %v", i, a.timeouts[i], want)
		}
	}
}

func TestAdapterErrorLeavesGameMode(t *testing.T) {
	a := newFakeAdapter()
	a.pollErr = context.Canceled

	err := newTestController(a).Run(context.Background())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() = %v, expected context.Canceled", err)
	}
	if a.left != 1 {
		t.Errorf("game mode should be left after an error, got %d", a.left)
	}
}

func TestReadErrorOnEndScreen(t *testing.T) {
	a := newFakeAdapter()
	a.polls = []core.Key{core.KeyLeft}

	err := newTestController(a).Run(context.Background())
	if !errors.Is(err, errScriptDone) {
		t.Fatalf("Run() = %v, expected read error", err)
	}
	if a.left != 1 {
		t.Errorf("game mode should be left after an error, got %d", a.left)
	}
}

func TestEnterFailure(t *testing.T) {
	a := newFakeAdapter()
	a.enterErr = errors.New("no tty")

	if err := newTestController(a).Run(context.Background()); err == nil {
		t.Fatal("Run() should fail when game mode cannot be entered")
	}
	if a.left != 0 {
		t.Errorf("game mode was never entered, LeaveGameMode called %d times", a.left)
	}
	if len(a.frames) != 0 {
		t.Error("nothing should be drawn without game mode")
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseAwaitingChoice.String() != "awaiting_choice" {
		t.Errorf("unexpected name %q", PhaseAwaitingChoice.String())
	}
}

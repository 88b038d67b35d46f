package snake

import (
	"time"

	"github.com/vovakirdan/term-snake/internal/core"
)

// Bomb is a transient hazard. It is armed (visible) after each spawn, hides
// itself once Timeout has elapsed, and hides immediately when the head runs
// into it.
type Bomb struct {
	Item
	Visible bool
	Timeout time.Duration
	armedAt time.Time
}

// NewBomb creates an armed bomb at pos.
func NewBomb(pos core.Point, timeout time.Duration, now time.Time) *Bomb {
	return &Bomb{
		Item:    NewItem(GlyphBomb, core.ColorRed, pos.X, pos.Y),
		Visible: true,
		Timeout: timeout,
		armedAt: now,
	}
}

// Armed reports whether the bomb is visible and dangerous.
func (b *Bomb) Armed() bool {
	return b.Visible
}

// Expire hides an armed bomb whose timeout has elapsed.
// Reports whether the bomb was hidden by this call.
func (b *Bomb) Expire(now time.Time) bool {
	if !b.Visible || now.Sub(b.armedAt) < b.Timeout {
		return false
	}
	b.Visible = false
	return true
}

// Disarm hides the bomb immediately.
func (b *Bomb) Disarm() {
	b.Visible = false
}

// Rearm shows the bomb at pos and restarts its timer.
func (b *Bomb) Rearm(pos core.Point, now time.Time) {
	b.Pos = pos
	b.Visible = true
	b.armedAt = now
}

// Draw places the bomb on the canvas when it is visible.
func (b *Bomb) Draw(c Canvas) error {
	if !b.Visible {
		return nil
	}
	return b.Item.Draw(c)
}

package snake

import (
	"fmt"

	"github.com/vovakirdan/term-snake/internal/core"
)

// Canvas is the drawing surface a session renders onto.
// Coordinates are grid cells; Flush makes the drawn frame visible.
type Canvas interface {
	ClearFrame() error
	DrawGlyph(x, y int, glyph rune, color core.Color) error
	Flush() error
}

// Position of the HP status line, right of the field.
const (
	statusX = Width + 5
	statusY = Height - 5
)

// Frame size that fits the field, the border and the status line.
const (
	FrameWidth  = Width + 16
	FrameHeight = Height + 1
)

// Render draws a full frame: food, snake, border, status line and bomb.
func (s *Session) Render(c Canvas) error {
	if err := s.draw(c); err != nil {
		return err
	}
	return c.Flush()
}

// RenderEnd draws the final frame with the end screen on top of it.
func (s *Session) RenderEnd(c Canvas) error {
	if err := s.draw(c); err != nil {
		return err
	}
	if err := drawEndScreen(c, s.status); err != nil {
		return err
	}
	return c.Flush()
}

func (s *Session) draw(c Canvas) error {
	if err := c.ClearFrame(); err != nil {
		return err
	}
	if err := s.food.Draw(c); err != nil {
		return err
	}
	for _, seg := range s.snake.body {
		if err := seg.Draw(c); err != nil {
			return err
		}
	}
	if err := drawBorder(c); err != nil {
		return err
	}
	if err := drawText(c, statusX, statusY, fmt.Sprintf("HP: %d", s.snake.Len()), core.ColorRed); err != nil {
		return err
	}
	return s.bomb.Draw(c)
}

// drawBorder draws the wall on rows 0 and Height and columns 0 and Width.
func drawBorder(c Canvas) error {
	for x := 0; x <= Width; x++ {
		if err := c.DrawGlyph(x, 0, GlyphWall, core.ColorYellow); err != nil {
			return err
		}
		if err := c.DrawGlyph(x, Height, GlyphWall, core.ColorYellow); err != nil {
			return err
		}
	}
	for y := 0; y <= Height; y++ {
		if err := c.DrawGlyph(0, y, GlyphWall, core.ColorYellow); err != nil {
			return err
		}
		if err := c.DrawGlyph(Width, y, GlyphWall, core.ColorYellow); err != nil {
			return err
		}
	}
	return nil
}

// drawEndScreen draws the centered result and the two choices.
func drawEndScreen(c Canvas, status Status) error {
	title, color := "GAME OVER", core.ColorRed
	if status == StatusWon {
		title, color = "You Win!", core.ColorGreen
	}

	lines := []struct {
		x, y  int
		text  string
		color core.Color
	}{
		{Width/2 - 5, Height/2 - 1, title, color},
		{Width/2 - 6, Height / 2, "r - Restart", core.ColorWhite},
		{Width/2 - 5, Height/2 + 1, "Esc - Quit", core.ColorWhite},
	}
	for _, l := range lines {
		if err := drawText(c, l.x, l.y, l.text, l.color); err != nil {
			return err
		}
	}
	return nil
}

func drawText(c Canvas, x, y int, text string, color core.Color) error {
	i := 0
	for _, r := range text {
		if err := c.DrawGlyph(x+i, y, r, color); err != nil {
			return err
		}
		i++
	}
	return nil
}

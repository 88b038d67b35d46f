package snake

import "github.com/vovakirdan/term-snake/internal/core"

// Glyphs drawn for each entity.
const (
	GlyphFood  = '$'
	GlyphSnake = 'X'
	GlyphBomb  = 'O'
	GlyphWall  = '='
)

// Item is a renderable point: a glyph with a color at a grid cell.
type Item struct {
	Glyph rune
	Color core.Color
	Pos   core.Point
}

// NewItem creates an item at (x, y).
func NewItem(glyph rune, color core.Color, x, y int) Item {
	return Item{Glyph: glyph, Color: color, Pos: core.Pt(x, y)}
}

// Draw places the item on the canvas.
func (it Item) Draw(c Canvas) error {
	return c.DrawGlyph(it.Pos.X, it.Pos.Y, it.Glyph, it.Color)
}

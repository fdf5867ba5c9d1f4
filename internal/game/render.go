package game

import "github.com/ringworld/sim/internal/world"

// Layer is the render-system payload.
type Layer struct {
	Name string
}

// Sprite is the drawable fragment the demo's render system produces. The
// presenter maps color names and offsets to terminal cells.
type Sprite struct {
	Glyph rune
	Color string
}

// DrawSprite is the demo's draw function.
func DrawSprite(_ world.ID, _ float64, ent Entity, _ Layer) Sprite {
	return Sprite{Glyph: ent.Glyph, Color: ent.Color}
}

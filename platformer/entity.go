// Package platformer holds the gameplay core: entities, enemy patrol, the
// per-frame player update and the screen controller that sequences a run.
// It does no I/O.
package platformer

import (
	"image/color"

	"github.com/automoto/platformer/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Renderer is the drawing surface entities paint themselves onto.
type Renderer interface {
	FillRect(x, y, w, h float64, clr color.RGBA)
}

// Entity is a coloured axis-aligned rectangle. Platforms and collectibles are
// plain entities; the player and enemies embed one.
type Entity struct {
	Position dmath.Vec2 // top-left corner
	Size     dmath.Vec2
	Color    color.RGBA
}

// NewEntity returns an entity at (x, y) with the given size and colour.
func NewEntity(x, y, w, h float64, clr color.RGBA) Entity {
	return Entity{
		Position: dmath.Vec2{X: x, Y: y},
		Size:     dmath.Vec2{X: w, Y: h},
		Color:    clr,
	}
}

// Bounds returns the entity's bounding box.
func (e *Entity) Bounds() gamemath.Rect {
	return gamemath.Rect{X: e.Position.X, Y: e.Position.Y, W: e.Size.X, H: e.Size.Y}
}

// Overlaps reports whether the two bounding boxes intersect. Touching edges
// do not count.
func (e *Entity) Overlaps(o *Entity) bool {
	return e.Bounds().Overlaps(o.Bounds())
}

// Draw fills the entity's rectangle.
func (e *Entity) Draw(r Renderer) {
	r.FillRect(e.Position.X, e.Position.Y, e.Size.X, e.Size.Y, e.Color)
}

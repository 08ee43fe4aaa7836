package systems

import (
	"image/color"

	cfg "github.com/automoto/platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// screenRenderer draws world-space rectangles onto the screen through the
// camera offset, skipping anything outside the viewport.
type screenRenderer struct {
	dst        *ebiten.Image
	offX, offY float64
	viewW      float64
	viewH      float64
}

func (r *screenRenderer) FillRect(x, y, w, h float64, clr color.RGBA) {
	sx, sy := x+r.offX, y+r.offY
	if sx+w < 0 || sy+h < 0 || sx > r.viewW || sy > r.viewH {
		return
	}
	vector.FillRect(r.dst, float32(sx), float32(sy), float32(w), float32(h), clr, false)
}

func newScreenRenderer(e *ecs.ECS, screen *ebiten.Image) *screenRenderer {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX, offY := cameraOffset(e, width, height)
	return &screenRenderer{
		dst:   screen,
		offX:  offX,
		offY:  offY,
		viewW: float64(width),
		viewH: float64(height),
	}
}

// DrawWorld renders platforms, collectibles, enemies and then the player.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	c := getController(e)
	if c == nil {
		return
	}

	r := newScreenRenderer(e, screen)
	c.Arena().Draw(r)
	c.Player().Draw(r)
}

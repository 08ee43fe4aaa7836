package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugOutline = color.RGBA{0, 200, 255, 255}
	debugText    = color.RGBA{60, 60, 60, 255}
	debugDrawOp  = &text.DrawOptions{}
)

// DrawDebug outlines every bounding box and prints the player's state in the
// top-right corner. Enabled with --debug.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	c := getController(e)
	if c == nil {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX, offY := cameraOffset(e, width, height)
	stroke := func(x, y, w, h float64) {
		vector.StrokeRect(screen, float32(x+offX), float32(y+offY), float32(w), float32(h), 2, debugOutline, false)
	}

	a := c.Arena()
	for _, p := range a.Platforms {
		stroke(p.Position.X, p.Position.Y, p.Size.X, p.Size.Y)
	}
	for _, it := range a.Collectibles {
		stroke(it.Position.X, it.Position.Y, it.Size.X, it.Size.Y)
	}
	for _, en := range a.Enemies {
		stroke(en.StartX()-en.MoveRange, en.Position.Y+en.Size.Y, 2*en.MoveRange+en.Size.X, 1)
		stroke(en.Position.X, en.Position.Y, en.Size.X, en.Size.Y)
	}
	p := c.Player()
	stroke(p.Position.X, p.Position.Y, p.Size.X, p.Size.Y)

	lines := fmt.Sprintf("pos %.1f, %.1f\nvel %.1f, %.1f\nground %v\nstate %v\nfps %.0f",
		p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y, p.OnGround, c.State(), ebiten.ActualFPS())

	debugDrawOp.GeoM.Reset()
	debugDrawOp.GeoM.Translate(float64(width)-20, 20)
	debugDrawOp.PrimaryAlign = text.AlignEnd
	debugDrawOp.LineSpacing = 24
	debugDrawOp.ColorScale.Reset()
	debugDrawOp.ColorScale.ScaleWithColor(debugText)
	text.Draw(screen, lines, fonts.Small.Get(), debugDrawOp)
}

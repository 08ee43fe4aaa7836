package systems

import (
	"fmt"

	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

var hudDrawOp = &text.DrawOptions{}

// DrawHUD renders the collected counter in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	c := getController(e)
	if c == nil {
		return
	}
	a := c.Arena()

	hudDrawOp.GeoM.Reset()
	hudDrawOp.GeoM.Translate(cfg.HUD.X, cfg.HUD.Y)
	hudDrawOp.ColorScale.Reset()
	hudDrawOp.ColorScale.ScaleWithColor(cfg.HUD.TextColor)
	text.Draw(screen, fmt.Sprintf("Collected: %d / %d", a.Collected, a.Total), fonts.HUD.Get(), hudDrawOp)

	drawToast(e, screen)
}

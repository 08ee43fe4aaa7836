package systems

import (
	"fmt"

	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/platformer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

var summaryDrawOp = &text.DrawOptions{}

// UpdateGameOver returns to the menu when select is pressed. The Main Menu
// button does the same through the UI.
func UpdateGameOver(e *ecs.ECS) {
	c := getController(e)
	if c == nil {
		return
	}
	if GetAction(getOrCreateInput(e), cfg.ActionMenuSelect).JustPressed {
		c.Restart()
	}
}

// GameOverTitle is the headline for a finished playthrough.
func GameOverTitle(state platformer.GameState) string {
	if state == platformer.StateWon {
		return cfg.GameOver.WonTitle
	}
	return cfg.GameOver.LostTitle
}

// DrawGameOver renders the outcome and the final count.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.GameOver.BackgroundColor)

	c := getController(e)
	if c == nil {
		return
	}
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	drawCenteredTitle(screen, GameOverTitle(c.State()), width/2, height/3, cfg.GameOver.TitleColor, 1)

	summary := fmt.Sprintf("Collected: %d / %d", c.Arena().Collected, c.Arena().Total)
	if msg := c.Message(); msg != "" {
		summary = msg + "   " + summary
	}
	summaryDrawOp.GeoM.Reset()
	summaryDrawOp.GeoM.Translate(width/2, height/3+cfg.GameOver.TitleSize+20)
	summaryDrawOp.PrimaryAlign = text.AlignCenter
	summaryDrawOp.ColorScale.Reset()
	summaryDrawOp.ColorScale.ScaleWithColor(cfg.HUD.TextColor)
	text.Draw(screen, summary, fonts.HUD.Get(), summaryDrawOp)
}

package systems

import (
	"image/color"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

var titleDrawOp = &text.DrawOptions{}

// UpdateMenu handles the menu's keyboard shortcuts: select starts the level,
// back quits. Mouse clicks are handled by the menu UI.
func UpdateMenu(e *ecs.ECS) {
	menu := GetOrCreateMenu(e)
	menu.Alpha, _, _ = menu.Pulse.Update(1)

	c := getController(e)
	if c == nil {
		return
	}
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		c.Start()
		return
	}
	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		c.Quit()
	}
}

// DrawMenu clears the screen and draws the pulsing title.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	menu := GetOrCreateMenu(e)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	drawCenteredTitle(screen, cfg.Menu.Title, float64(width)/2, float64(height)/4, cfg.Menu.TitleColor, menu.Alpha)
}

// GetOrCreateMenu returns the menu singleton, creating it with a looping
// pulse the first time.
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
		half := cfg.Menu.PulseFrames / 2
		pulse := gween.NewSequence()
		pulse.Add(
			gween.New(1, 0.55, half, ease.InOutSine),
			gween.New(0.55, 1, half, ease.InOutSine),
		)
		pulse.SetLoop(-1)
		components.Menu.SetValue(entry, components.MenuData{Pulse: pulse, Alpha: 1})
	}
	return components.Menu.Get(entry)
}

func drawCenteredTitle(screen *ebiten.Image, title string, x, y float64, clr color.RGBA, alpha float32) {
	titleDrawOp.GeoM.Reset()
	titleDrawOp.GeoM.Translate(x, y)
	titleDrawOp.PrimaryAlign = text.AlignCenter
	titleDrawOp.ColorScale.Reset()
	titleDrawOp.ColorScale.ScaleWithColor(clr)
	titleDrawOp.ColorScale.ScaleAlpha(alpha)
	text.Draw(screen, title, fonts.Title.Get(), titleDrawOp)
}

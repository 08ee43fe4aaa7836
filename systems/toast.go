package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

var toastDrawOp = &text.DrawOptions{}

// ShowToast displays msg at full opacity, then fades it out. A repeat of the
// message already showing restarts the hold.
func ShowToast(e *ecs.ECS, msg string) {
	toast := getOrCreateToast(e)
	toast.Text = msg
	toast.Alpha = 1

	// The hold is a flat tween so the sequence alone decides when to fade.
	seq := gween.NewSequence()
	seq.Add(
		gween.New(1, 1, cfg.Toast.HoldFrames, ease.Linear),
		gween.New(1, 0, cfg.Toast.FadeFrames, ease.InQuad),
	)
	toast.Fade = seq
}

// UpdateToast advances the fade by one frame.
func UpdateToast(e *ecs.ECS) {
	toast := getOrCreateToast(e)
	if toast.Fade == nil {
		return
	}

	alpha, _, done := toast.Fade.Update(1)
	toast.Alpha = alpha
	if done {
		toast.Fade = nil
		toast.Alpha = 0
		toast.Text = ""
	}
}

func drawToast(e *ecs.ECS, screen *ebiten.Image) {
	toast := getOrCreateToast(e)
	if toast.Text == "" || toast.Alpha <= 0 {
		return
	}

	toastDrawOp.GeoM.Reset()
	toastDrawOp.GeoM.Translate(float64(screen.Bounds().Dx())/2, cfg.Toast.Y)
	toastDrawOp.PrimaryAlign = text.AlignCenter
	toastDrawOp.ColorScale.Reset()
	toastDrawOp.ColorScale.ScaleWithColor(cfg.Toast.TextColor)
	toastDrawOp.ColorScale.ScaleAlpha(toast.Alpha)
	text.Draw(screen, toast.Text, fonts.Toast.Get(), toastDrawOp)
}

func getOrCreateToast(e *ecs.ECS) *components.ToastData {
	entry, ok := components.Toast.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Toast))
	}
	return components.Toast.Get(entry)
}

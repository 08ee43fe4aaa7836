package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ToastData is the fading collision message shown over the level.
type ToastData struct {
	Text  string
	Alpha float32
	Fade  *gween.Sequence // nil when nothing is showing
}

var Toast = donburi.NewComponentType[ToastData]()

package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MenuData drives the title pulse on the main menu.
type MenuData struct {
	Pulse *gween.Sequence
	Alpha float32
}

var Menu = donburi.NewComponentType[MenuData]()

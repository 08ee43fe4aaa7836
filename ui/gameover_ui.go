package ui

import (
	"github.com/automoto/platformer/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// GameOverUI is the single Main Menu button shown after a playthrough.
type GameOverUI struct {
	UI         *ebitenui.UI
	OnMainMenu func()

	buttonFace text.Face
}

// NewGameOverUI creates the game over button.
func NewGameOverUI(onMainMenu func()) *GameOverUI {
	gui := &GameOverUI{
		OnMainMenu: onMainMenu,
		buttonFace: fonts.Button.Get(),
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	column := newColumn(widget.AnchorLayoutPositionCenter)
	column.AddChild(newButton("Main Menu", &gui.buttonFace, gui.OnMainMenu))
	root.AddChild(column)

	gui.UI = &ebitenui.UI{Container: root}
	return gui
}

// Update runs the ebitenui input handling.
func (gui *GameOverUI) Update() {
	gui.UI.Update()
}

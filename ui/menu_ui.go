package ui

import (
	"fmt"

	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MenuUI holds the ebitenui buttons of the main menu. The title is drawn by
// the menu renderer underneath.
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnStart func()
	OnExit  func()

	fullscreenButton *widget.Button
	windowButton     *widget.Button

	buttonFace text.Face
}

// NewMenuUI creates the main menu buttons.
func NewMenuUI(onStart, onExit func()) *MenuUI {
	mui := &MenuUI{
		OnStart:    onStart,
		OnExit:     onExit,
		buttonFace: fonts.Button.Get(),
	}
	mui.buildUI()
	return mui
}

func (mui *MenuUI) buildUI() {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))

	column := newColumn(widget.AnchorLayoutPositionCenter)
	column.AddChild(newButton("Start", &mui.buttonFace, mui.OnStart))

	mui.fullscreenButton = newButton(fullscreenLabel(systems.CurrentSettings().Fullscreen), &mui.buttonFace, func() {
		systems.ToggleFullscreen()
		mui.UpdateUI()
	})
	column.AddChild(mui.fullscreenButton)

	mui.windowButton = newButton(windowLabel(), &mui.buttonFace, func() {
		systems.CycleResolution()
		mui.UpdateUI()
	})
	column.AddChild(mui.windowButton)

	column.AddChild(newButton("Exit", &mui.buttonFace, mui.OnExit))
	root.AddChild(column)

	mui.UI = &ebitenui.UI{Container: root}
	mui.UpdateUI()
}

// UpdateUI refreshes the button labels from the current settings.
func (mui *MenuUI) UpdateUI() {
	s := systems.CurrentSettings()
	if t := mui.fullscreenButton.Text(); t != nil {
		t.Label = fullscreenLabel(s.Fullscreen)
	}
	if t := mui.windowButton.Text(); t != nil {
		t.Label = windowLabel()
	}
	mui.windowButton.GetWidget().Disabled = s.Fullscreen
}

// Update runs the ebitenui input handling.
func (mui *MenuUI) Update() {
	mui.UI.Update()
}

func fullscreenLabel(on bool) string {
	state := "Off"
	if on {
		state = "On"
	}
	return fmt.Sprintf("Fullscreen: %s", state)
}

func windowLabel() string {
	return "Window: " + systems.ResolutionLabel()
}

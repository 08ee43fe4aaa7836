package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{"none", "left", "right", "jump", "select", "back"}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputBinding lists the keys and standard-layout pad buttons for one action.
type InputBinding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings, indexed by action.
type InputConfig struct {
	Bindings [ActionCount]InputBinding
	// Left stick travel (0..1) below which the stick counts as centred
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func keys(k ...ebiten.Key) []ebiten.Key { return k }

func buttons(b ...ebiten.StandardGamepadButton) []ebiten.StandardGamepadButton { return b }

func init() {
	Input.AnalogDeadzone = 0.25

	// Arrows and A/D move; the stick is merged in by the input system.
	Input.Bindings[ActionMoveLeft] = InputBinding{
		Keys:    keys(ebiten.KeyLeft, ebiten.KeyA),
		Buttons: buttons(ebiten.StandardGamepadButtonLeftLeft),
	}
	Input.Bindings[ActionMoveRight] = InputBinding{
		Keys:    keys(ebiten.KeyRight, ebiten.KeyD),
		Buttons: buttons(ebiten.StandardGamepadButtonLeftRight),
	}
	Input.Bindings[ActionJump] = InputBinding{
		Keys:    keys(ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW),
		Buttons: buttons(ebiten.StandardGamepadButtonRightBottom),
	}
	Input.Bindings[ActionMenuSelect] = InputBinding{
		Keys:    keys(ebiten.KeyEnter, ebiten.KeyNumpadEnter),
		Buttons: buttons(ebiten.StandardGamepadButtonCenterRight, ebiten.StandardGamepadButtonRightBottom),
	}
	Input.Bindings[ActionMenuBack] = InputBinding{
		Keys:    keys(ebiten.KeyEscape),
		Buttons: buttons(ebiten.StandardGamepadButtonRightRight),
	}
}

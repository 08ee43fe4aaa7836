package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/platformer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Gamepad IDs are refreshed into this slice every poll.
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads into the Input singleton. It runs
// first in every scene so later systems see this frame's actions.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	input.Previous = input.Current
	var keyboardUsed, gamepadUsed bool
	for id := range input.Current {
		binding := cfg.Input.Bindings[id]
		onKeys := anyKeyPressed(binding.Keys)
		onPad := anyButtonPressed(gamepadIDs, binding.Buttons)
		input.Current[id] = onKeys || onPad
		keyboardUsed = keyboardUsed || onKeys
		gamepadUsed = gamepadUsed || onPad
	}

	if stick := stickDirection(gamepadIDs); stick != 0 {
		if stick < 0 {
			input.Current[cfg.ActionMoveLeft] = true
		} else {
			input.Current[cfg.ActionMoveRight] = true
		}
		gamepadUsed = true
	}

	switch {
	case gamepadUsed:
		input.LastInputMethod = components.InputGamepad
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}

	// A key held across a scene change must not fire on the new scene.
	if !input.Primed {
		input.Previous = input.Current
		input.Primed = true
	}
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyButtonPressed(pads []ebiten.GamepadID, buttons []ebiten.StandardGamepadButton) bool {
	for _, id := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range buttons {
			if ebiten.IsStandardGamepadButtonPressed(id, b) {
				return true
			}
		}
	}
	return false
}

// stickDirection is -1, 0 or 1 for the left stick's horizontal axis on the
// first pad pushed past the deadzone.
func stickDirection(pads []ebiten.GamepadID) int {
	for _, id := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		switch {
		case h < -cfg.Input.AnalogDeadzone:
			return -1
		case h > cfg.Input.AnalogDeadzone:
			return 1
		}
	}
	return 0
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction derives the edge flags for id from this frame and the last.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// PlayerInput maps the polled actions onto the player's control snapshot.
func PlayerInput(input *components.InputData) platformer.Input {
	return platformer.Input{
		Left:  GetAction(input, cfg.ActionMoveLeft).Pressed,
		Right: GetAction(input, cfg.ActionMoveRight).Pressed,
		Jump:  GetAction(input, cfg.ActionJump).JustPressed,
	}
}

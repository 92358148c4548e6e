package systems

import (
	"strings"

	"github.com/automoto/laserdefender/components"
	cfg "github.com/automoto/laserdefender/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Actions driven by each direction of the left stick
var stickActions = struct {
	left, right, up, down []cfg.ActionID
}{
	left:  []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMenuLeft},
	right: []cfg.ActionID{cfg.ActionMoveRight, cfg.ActionMenuRight},
	up:    []cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMenuUp},
	down:  []cfg.ActionID{cfg.ActionMoveDown, cfg.ActionMenuDown},
}

var gamepadIDs []ebiten.GamepadID

var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls keyboard and gamepads into the Input singleton.
// Must run before any system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	keyboardUsed := pollKeyboard(&input.Current)

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	var lastPad ebiten.GamepadID
	gamepadUsed := false
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		buttons := pollGamepadButtons(&input.Current, id)
		stick := applyStick(&input.Current, h, v, cfg.Input.AnalogDeadzone)
		if buttons || stick {
			gamepadUsed = true
			lastPad = id
		}
	}

	switch {
	case gamepadUsed:
		input.LastInputMethod = getControllerType(lastPad)
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

func pollKeyboard(current *[cfg.ActionCount]bool) bool {
	used := false
	for action, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				current[action] = true
				used = true
			}
		}
	}
	return used
}

func pollGamepadButtons(current *[cfg.ActionCount]bool, id ebiten.GamepadID) bool {
	used := false
	for action, binding := range cfg.Input.Bindings {
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				current[action] = true
				used = true
			}
		}
	}
	return used
}

// applyStick presses the movement and menu actions for a stick deflected past
// the deadzone and reports whether it was.
func applyStick(current *[cfg.ActionCount]bool, horizontal, vertical, deadzone float64) bool {
	var pressed []cfg.ActionID
	if horizontal < -deadzone {
		pressed = append(pressed, stickActions.left...)
	}
	if horizontal > deadzone {
		pressed = append(pressed, stickActions.right...)
	}
	if vertical < -deadzone {
		pressed = append(pressed, stickActions.up...)
	}
	if vertical > deadzone {
		pressed = append(pressed, stickActions.down...)
	}
	for _, action := range pressed {
		current[action] = true
	}
	return len(pressed) > 0
}

func getControllerType(id ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[id]; ok {
		return method
	}
	method := controllerFromName(ebiten.GamepadName(id))
	controllerTypeCache[id] = method
	return method
}

// controllerFromName picks the button glyph family for a pad. Anything that
// is not a PlayStation pad gets Xbox labels.
func controllerFromName(name string) components.InputMethod {
	name = strings.ToLower(name)
	for _, hint := range []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"} {
		if strings.Contains(name, hint) {
			return components.InputPlayStation
		}
	}
	return components.InputXbox
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the state of an action, comparing this frame with the last
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

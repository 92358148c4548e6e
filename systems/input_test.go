package systems

import (
	"testing"

	"github.com/automoto/laserdefender/components"
	cfg "github.com/automoto/laserdefender/config"
	"github.com/stretchr/testify/assert"
)

func TestApplyStick(t *testing.T) {
	tests := []struct {
		name    string
		h, v    float64
		want    []cfg.ActionID
		pressed bool
	}{
		{name: "centred", h: 0, v: 0},
		{name: "inside deadzone", h: 0.2, v: -0.2},
		{name: "left", h: -0.9, want: []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMenuLeft}, pressed: true},
		{name: "down right", h: 0.5, v: 0.5, want: []cfg.ActionID{
			cfg.ActionMoveRight, cfg.ActionMenuRight, cfg.ActionMoveDown, cfg.ActionMenuDown,
		}, pressed: true},
		{name: "up", v: -1, want: []cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMenuUp}, pressed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var current [cfg.ActionCount]bool
			assert.Equal(t, tt.pressed, applyStick(&current, tt.h, tt.v, 0.25))

			var want [cfg.ActionCount]bool
			for _, a := range tt.want {
				want[a] = true
			}
			assert.Equal(t, want, current)
		})
	}
}

func TestControllerFromName(t *testing.T) {
	assert.Equal(t, components.InputPlayStation, controllerFromName("Sony DualSense Wireless Controller"))
	assert.Equal(t, components.InputPlayStation, controllerFromName("PS4 Controller"))
	assert.Equal(t, components.InputXbox, controllerFromName("Xbox Wireless Controller"))
	assert.Equal(t, components.InputXbox, controllerFromName(""))
}

func TestGetAction_Edges(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionFire] = true
	assert.Equal(t, components.ActionState{Pressed: true, JustPressed: true}, GetAction(input, cfg.ActionFire))

	input.Previous = input.Current
	assert.Equal(t, components.ActionState{Pressed: true}, GetAction(input, cfg.ActionFire))

	input.Current = [cfg.ActionCount]bool{}
	assert.Equal(t, components.ActionState{JustReleased: true}, GetAction(input, cfg.ActionFire))
}

package systems

import (
	"testing"

	"github.com/automoto/laserdefender/components"
	cfg "github.com/automoto/laserdefender/config"
	"github.com/automoto/laserdefender/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestDamageFlash_FadesOut(t *testing.T) {
	e, _ := newTestECS(t)
	ship := factory.CreateShip(e, 160, 500)

	TriggerDamageFlash(ship)
	flash := components.Flash.Get(ship)
	assert.Equal(t, float32(1), flash.Amount)

	UpdateEffects(e)
	assert.Less(t, flash.Amount, float32(1))
	assert.Greater(t, flash.Amount, float32(0))

	frames := int(cfg.Combat.DamageFlashSeconds*float32(cfg.C.TPS)) + 1
	for i := 0; i < frames; i++ {
		UpdateEffects(e)
	}
	assert.Nil(t, flash.Fade)
	assert.Equal(t, float32(0), flash.Amount)
}

func TestScreenShake_DecaysToRest(t *testing.T) {
	e, _ := newTestECS(t)
	cameraEntry := components.Camera.MustFirst(e.World)
	camera := components.Camera.Get(cameraEntry)
	start := camera.Position

	TriggerScreenShake(e, 4, 10)
	UpdateCamera(e)
	assert.NotZero(t, camera.Offset.X)
	assert.Equal(t, start, camera.Position, "shake never moves the listener")

	for i := 0; i < 10; i++ {
		UpdateCamera(e)
	}
	assert.False(t, cameraEntry.HasComponent(components.ScreenShake))
	assert.Zero(t, camera.Offset.X)
	assert.Zero(t, camera.Offset.Y)
}

func TestScreenShake_WeakerShakeDoesNotOverride(t *testing.T) {
	e, _ := newTestECS(t)
	cameraEntry := components.Camera.MustFirst(e.World)

	TriggerScreenShake(e, 4, 10)
	TriggerScreenShake(e, 1, 30)

	shake := components.ScreenShake.Get(cameraEntry)
	assert.Equal(t, 4.0, shake.Intensity)
	assert.Equal(t, 10, shake.Duration)
}

func TestHealthBar_Expires(t *testing.T) {
	e, _ := newTestECS(t)
	ship := factory.CreateShip(e, 160, 500)
	ship.AddComponent(components.HealthBar)
	components.HealthBar.Get(ship).TimeToLive = 2

	UpdateEffects(e)
	assert.True(t, ship.HasComponent(components.HealthBar))
	UpdateEffects(e)
	assert.False(t, ship.HasComponent(components.HealthBar))
}

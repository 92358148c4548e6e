package systems

import (
	"testing"

	"github.com/automoto/laserdefender/components"
	cfg "github.com/automoto/laserdefender/config"
	"github.com/automoto/laserdefender/systems/factory"
	"github.com/automoto/laserdefender/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateShip_FiringPlaysShootingSound(t *testing.T) {
	e, backend := newTestECS(t)
	factory.CreateShip(e, 160, 500)

	pressAction(e, cfg.ActionFire)
	UpdateShip(e)

	assert.Equal(t, 1, count(e.World, tags.Laser))
	assert.Equal(t, []cfg.SoundID{cfg.SoundShoot}, pendingSFX(e))

	UpdateAudio(e)
	require.Len(t, backend.requests, 1)
	assert.Same(t, shotClip, backend.requests[0].Clip)

	laserEntry := tags.Laser.MustFirst(e.World)
	laser := components.Laser.Get(laserEntry)
	assert.True(t, laser.FromShip)
	assert.Less(t, components.Velocity.Get(laserEntry).Y, 0.0, "player lasers travel up")
}

func TestUpdateShip_FireCooldown(t *testing.T) {
	e, _ := newTestECS(t)
	factory.CreateShip(e, 160, 500)

	pressAction(e, cfg.ActionFire)
	for i := 0; i < cfg.Ship.FireCooldown; i++ {
		UpdateShip(e)
	}
	assert.Equal(t, 1, count(e.World, tags.Laser))

	UpdateShip(e)
	assert.Equal(t, 2, count(e.World, tags.Laser))
}

func TestUpdateShip_StaysOnScreen(t *testing.T) {
	e, _ := newTestECS(t)
	ship := factory.CreateShip(e, 20, 500)

	pressAction(e, cfg.ActionMoveLeft)
	for i := 0; i < 100; i++ {
		UpdateShip(e)
	}

	obj := components.Object.Get(ship)
	assert.InDelta(t, cfg.Ship.Padding, obj.X, 1e-9)
	assert.Empty(t, pendingSFX(e), "moving makes no sound")
}

func TestUpdateShip_NoShipIsNoop(t *testing.T) {
	e, _ := newTestECS(t)
	pressAction(e, cfg.ActionFire)
	assert.NotPanics(t, func() { UpdateShip(e) })
	assert.Equal(t, 0, count(e.World, tags.Laser))
}

package systems

import (
	"testing"

	"github.com/automoto/laserdefender/assets"
	"github.com/automoto/laserdefender/components"
	cfg "github.com/automoto/laserdefender/config"
	"github.com/automoto/laserdefender/systems/factory"
	"github.com/automoto/laserdefender/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateLasers_EnemyLaserHitsShip(t *testing.T) {
	e, _ := newTestECS(t)
	ship := factory.CreateShip(e, 160, 500)
	factory.CreateLaser(e, 160, 495, 2, 10, false)

	UpdateLasers(e)

	assert.Equal(t, 0, count(e.World, tags.Laser), "laser is spent on hit")
	require.True(t, ship.HasComponent(components.DamageEvent))
	ev := components.DamageEvent.Get(ship)
	assert.Equal(t, 10, ev.Amount)
	assert.False(t, ev.FromShip)
}

func TestUpdateLasers_ShipLaserIgnoresShip(t *testing.T) {
	e, _ := newTestECS(t)
	ship := factory.CreateShip(e, 160, 500)
	factory.CreateLaser(e, 160, 500, -1, 10, true)

	UpdateLasers(e)

	assert.Equal(t, 1, count(e.World, tags.Laser))
	assert.False(t, ship.HasComponent(components.DamageEvent))
}

func TestUpdateLasers_ShipLaserHitsEnemy(t *testing.T) {
	e, _ := newTestECS(t)
	enemy := factory.CreateEnemy(e, assets.EnemySpawn{X: 100, Y: 100, EnemyType: "scout"})
	obj := components.Object.Get(enemy)
	obj.Y = 100
	obj.Update()

	factory.CreateLaser(e, 100, obj.Y+obj.H+2, -cfg.Laser.Speed, cfg.Laser.Damage, true)
	UpdateLasers(e)

	require.True(t, enemy.HasComponent(components.DamageEvent))
	assert.True(t, components.DamageEvent.Get(enemy).FromShip)
	assert.Equal(t, 0, count(e.World, tags.Laser))
}

func TestUpdateLasers_NearMissInSameCell(t *testing.T) {
	e, _ := newTestECS(t)
	ship := factory.CreateShip(e, 160, 500)
	obj := components.Object.Get(ship)

	// Just right of the ship, close enough to share a collision cell
	factory.CreateLaser(e, obj.X+obj.W+3, 500, 0, 10, false)
	UpdateLasers(e)

	assert.False(t, ship.HasComponent(components.DamageEvent))
	assert.Equal(t, 1, count(e.World, tags.Laser))
}

func TestUpdateLasers_CullsOffscreen(t *testing.T) {
	e, _ := newTestECS(t)
	factory.CreateLaser(e, 100, -cfg.Laser.CullMargin+1, -cfg.Laser.Speed, 10, true)

	UpdateLasers(e)

	assert.Equal(t, 0, count(e.World, tags.Laser))
}

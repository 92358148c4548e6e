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

func TestUpdateCombat_ShipHitPlaysDamageSound(t *testing.T) {
	e, backend := newTestECS(t)
	ship := factory.CreateShip(e, 160, 500)

	addDamage(ship, 10, false)
	UpdateCombat(e)
	UpdateAudio(e)

	hp := components.Health.Get(ship)
	assert.Equal(t, cfg.Ship.Health-10, hp.Current)
	assert.Equal(t, cfg.Ship.InvulnFrames, components.Ship.Get(ship).InvulnFrames)
	assert.False(t, ship.HasComponent(components.DamageEvent))
	assert.Equal(t, float32(1), components.Flash.Get(ship).Amount)

	require.Len(t, backend.requests, 1)
	assert.Same(t, hitClip, backend.requests[0].Clip)
	assert.InDelta(t, 1.0, backend.requests[0].Volume, 1e-9)

	cameraEntry := components.Camera.MustFirst(e.World)
	assert.True(t, cameraEntry.HasComponent(components.ScreenShake))
}

func TestUpdateCombat_InvulnerableShipIgnoresDamage(t *testing.T) {
	e, backend := newTestECS(t)
	ship := factory.CreateShip(e, 160, 500)
	components.Ship.Get(ship).InvulnFrames = 5

	addDamage(ship, 10, false)
	UpdateCombat(e)
	UpdateAudio(e)

	assert.Equal(t, cfg.Ship.Health, components.Health.Get(ship).Current)
	assert.False(t, ship.HasComponent(components.DamageEvent))
	assert.Empty(t, backend.requests)
}

func TestUpdateCombat_KillScoresForShip(t *testing.T) {
	e, _ := newTestECS(t)
	level := &assets.Level{Waves: []assets.Wave{{Number: 1}}}
	levelEntry := factory.CreateLevel(e, level)
	enemy := factory.CreateEnemy(e, assets.EnemySpawn{X: 100, Y: 100, EnemyType: "scout"})

	addDamage(enemy, 15, true)
	UpdateCombat(e)
	require.True(t, enemy.Valid())
	assert.Equal(t, 5, components.Health.Get(enemy).Current)
	assert.True(t, enemy.HasComponent(components.HealthBar))

	addDamage(enemy, 15, true)
	UpdateCombat(e)

	assert.False(t, enemy.Valid())
	assert.Equal(t, 0, count(e.World, tags.Enemy))

	score := components.Score.Get(levelEntry)
	assert.Equal(t, cfg.Enemy.Types["scout"].Score, score.Points)
	assert.Equal(t, 1, score.Kills)
	assert.Equal(t, []cfg.SoundID{cfg.SoundDamage, cfg.SoundDamage}, pendingSFX(e))
}

func TestUpdateCombat_DestroyedShipLeavesSpace(t *testing.T) {
	e, _ := newTestECS(t)
	ship := factory.CreateShip(e, 160, 500)
	obj := components.Object.Get(ship).Object

	addDamage(ship, cfg.Ship.Health*2, false)
	UpdateCombat(e)

	assert.False(t, ship.Valid())
	_, alive := tags.Ship.First(e.World)
	assert.False(t, alive)

	space := components.Space.Get(components.Space.MustFirst(e.World))
	for _, o := range space.Objects() {
		assert.NotSame(t, obj, o)
	}
}

func TestAddDamage_MergesEventsInOneFrame(t *testing.T) {
	e, _ := newTestECS(t)
	ship := factory.CreateShip(e, 160, 500)

	addDamage(ship, 10, false)
	addDamage(ship, 5, false)

	ev := components.DamageEvent.Get(ship)
	assert.Equal(t, 15, ev.Amount)
}

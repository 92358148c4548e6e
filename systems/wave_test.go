package systems

import (
	"testing"

	"github.com/automoto/laserdefender/assets"
	"github.com/automoto/laserdefender/components"
	cfg "github.com/automoto/laserdefender/config"
	"github.com/automoto/laserdefender/systems/factory"
	"github.com/automoto/laserdefender/tags"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func twoWaveLevel() *assets.Level {
	return &assets.Level{
		Width:  cfg.C.Width,
		Height: cfg.C.Height,
		Waves: []assets.Wave{
			{Number: 1, Spawns: []assets.EnemySpawn{{X: 80, Y: 100}, {X: 240, Y: 100}}},
			{Number: 2, Spawns: []assets.EnemySpawn{{X: 160, Y: 120, EnemyType: "gunship"}}},
		},
	}
}

func clearEnemies(w donburi.World) {
	var entities []donburi.Entity
	tags.Enemy.Each(w, func(entry *donburi.Entry) {
		entities = append(entities, entry.Entity())
	})
	for _, ent := range entities {
		w.Remove(ent)
	}
}

func TestUpdateWaves_SpawnsAndAdvances(t *testing.T) {
	e, _ := newTestECS(t)
	levelEntry := factory.CreateLevel(e, twoWaveLevel())

	UpdateWaves(e)
	assert.Equal(t, 2, count(e.World, tags.Enemy))

	// Still enemies alive, nothing new
	UpdateWaves(e)
	assert.Equal(t, 2, count(e.World, tags.Enemy))

	clearEnemies(e.World)
	UpdateWaves(e)
	wave := components.Wave.Get(levelEntry)
	assert.Equal(t, 1, wave.Cleared)
	assert.Equal(t, 1, wave.Index)
	assert.Equal(t, 0, count(e.World, tags.Enemy), "pause before the next wave")

	for i := 0; i < cfg.Wave.DelayFrames; i++ {
		UpdateWaves(e)
	}
	assert.Equal(t, 1, count(e.World, tags.Enemy))
	enemy := components.Enemy.Get(tags.Enemy.MustFirst(e.World))
	assert.Equal(t, "gunship", enemy.TypeName)
}

func TestUpdateWaves_LoopsAfterLastWave(t *testing.T) {
	e, _ := newTestECS(t)
	levelEntry := factory.CreateLevel(e, twoWaveLevel())
	wave := components.Wave.Get(levelEntry)
	wave.Index = 1

	UpdateWaves(e)
	clearEnemies(e.World)
	UpdateWaves(e)

	assert.Equal(t, 0, wave.Index)
	assert.Equal(t, 1, wave.Cleared)
}

func TestCreateEnemy_UnknownTypeFallsBack(t *testing.T) {
	e, _ := newTestECS(t)
	enemy := factory.CreateEnemy(e, assets.EnemySpawn{X: 10, Y: 10, EnemyType: "mothership"})
	assert.Equal(t, cfg.Enemy.DefaultType, components.Enemy.Get(enemy).TypeName)
}

package factory

import (
	"github.com/automoto/laserdefender/archetypes"
	"github.com/automoto/laserdefender/assets"
	"github.com/automoto/laserdefender/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity that tracks waves and score
func CreateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})
	components.Wave.SetValue(entry, components.WaveData{})
	components.Score.SetValue(entry, components.ScoreData{})
	return entry
}

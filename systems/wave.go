package systems

import (
	"github.com/automoto/laserdefender/components"
	cfg "github.com/automoto/laserdefender/config"
	"github.com/automoto/laserdefender/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWaves spawns the next wave once the field is clear. After the last
// wave the level starts over from the first.
func UpdateWaves(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil || len(level.Waves) == 0 {
		return
	}
	wave := components.Wave.Get(levelEntry)

	if wave.Spawned {
		if _, alive := components.Enemy.First(ecs.World); alive {
			return
		}
		wave.Spawned = false
		wave.Cleared++
		wave.Index = (wave.Index + 1) % len(level.Waves)
		wave.DelayTimer = cfg.Wave.DelayFrames
	}

	if wave.DelayTimer > 0 {
		wave.DelayTimer--
		return
	}

	for _, spawn := range level.Waves[wave.Index].Spawns {
		factory.CreateEnemy(ecs, spawn)
	}
	wave.Spawned = true
}

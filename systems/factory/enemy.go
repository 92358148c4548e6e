package factory

import (
	"log"
	"math/rand"

	"github.com/automoto/laserdefender/archetypes"
	"github.com/automoto/laserdefender/assets"
	"github.com/automoto/laserdefender/components"
	"github.com/automoto/laserdefender/config"
	"github.com/automoto/laserdefender/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy above the screen that flies in to its spawn line
func CreateEnemy(ecs *ecs.ECS, spawn assets.EnemySpawn) *donburi.Entry {
	typeName := spawn.EnemyType
	typeConfig, ok := config.Enemy.Types[typeName]
	if !ok {
		if typeName != "" {
			log.Printf("Warning: unknown enemy type %q, using %q", typeName, config.Enemy.DefaultType)
		}
		typeName = config.Enemy.DefaultType
		typeConfig = config.Enemy.Types[typeName]
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	w, h := typeConfig.Width, typeConfig.Height
	startY := config.Enemy.SpawnY
	obj := resolv.NewObject(spawn.X-w/2, startY, w, h, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Health.SetValue(enemy, components.HealthData{
		Current: typeConfig.Health,
		Max:     typeConfig.Health,
	})

	strafe := 1.0
	if spawn.X > float64(config.C.Width)/2 {
		strafe = -1.0
	}

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:     typeName,
		TypeConfig:   &typeConfig,
		Entry:        gween.New(float32(startY), float32(spawn.Y-h/2), typeConfig.EntrySeconds, ease.OutQuad),
		StrafeDir:    strafe,
		FireCooldown: NextEnemyFireCooldown(&typeConfig),
	})

	return enemy
}

// NextEnemyFireCooldown picks a random delay between the type's bounds
func NextEnemyFireCooldown(tc *config.EnemyTypeConfig) int {
	spread := tc.FireCooldownMax - tc.FireCooldownMin
	if spread <= 0 {
		return tc.FireCooldownMin
	}
	return tc.FireCooldownMin + rand.Intn(spread+1)
}

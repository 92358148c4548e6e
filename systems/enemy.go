package systems

import (
	"github.com/automoto/laserdefender/components"
	cfg "github.com/automoto/laserdefender/config"
	"github.com/automoto/laserdefender/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies flies enemies in along their entry tween, then strafes and fires.
func UpdateEnemies(e *ecs.ECS) {
	dt := 1 / float32(cfg.C.TPS)

	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		obj := components.Object.Get(entry)

		if enemy.Entry != nil {
			y, done := enemy.Entry.Update(dt)
			obj.Y = float64(y)
			obj.Update()
			if done {
				enemy.Entry = nil
			}
			// No firing until in position
			return
		}

		obj.X += enemy.StrafeDir * enemy.TypeConfig.StrafeSpeed
		if obj.X < 0 {
			obj.X = 0
			enemy.StrafeDir = 1
		}
		if right := float64(cfg.C.Width) - obj.W; obj.X > right {
			obj.X = right
			enemy.StrafeDir = -1
		}
		obj.Update()

		enemy.FireCooldown--
		if enemy.FireCooldown <= 0 {
			factory.CreateLaser(e, obj.X+obj.W/2, obj.Y+obj.H, enemy.TypeConfig.LaserSpeed, enemy.TypeConfig.LaserDamage, false)
			PlaySFX(e, cfg.SoundShoot)
			enemy.FireCooldown = factory.NextEnemyFireCooldown(enemy.TypeConfig)
		}
	})
}

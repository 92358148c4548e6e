package factory

import (
	"github.com/automoto/laserdefender/archetypes"
	"github.com/automoto/laserdefender/components"
	"github.com/automoto/laserdefender/config"
	"github.com/automoto/laserdefender/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLaser spawns a laser bolt centred on (x, y) travelling vertically at speedY.
func CreateLaser(ecs *ecs.ECS, x, y, speedY float64, damage int, fromShip bool) *donburi.Entry {
	laser := archetypes.Laser.Spawn(ecs)

	tag := tags.ResolvEnemyLaser
	if fromShip {
		tag = tags.ResolvShipLaser
	}

	w, h := config.Laser.Width, config.Laser.Height
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tag)
	obj.Data = laser
	components.Object.SetValue(laser, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Velocity.SetValue(laser, components.VelocityData{Y: speedY})
	components.Laser.SetValue(laser, components.LaserData{
		Damage:   damage,
		FromShip: fromShip,
	})

	return laser
}

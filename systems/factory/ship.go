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

// CreateShip spawns the player ship centred on (x, y)
func CreateShip(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	ship := archetypes.Ship.Spawn(ecs)

	w, h := config.Ship.Width, config.Ship.Height
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvShip)
	obj.Data = ship // Link for O(1) lookup
	components.Object.SetValue(ship, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Health.SetValue(ship, components.HealthData{
		Current: config.Ship.Health,
		Max:     config.Ship.Health,
	})
	components.Ship.SetValue(ship, components.ShipData{})

	return ship
}

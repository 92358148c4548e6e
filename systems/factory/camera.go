package factory

import (
	"github.com/automoto/laserdefender/archetypes"
	"github.com/automoto/laserdefender/components"
	"github.com/automoto/laserdefender/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns a camera centred on the screen
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.NewVec2(float64(config.C.Width)/2, float64(config.C.Height)/2),
	})
	return camera
}

package scenes

import (
	"log"

	"github.com/automoto/laserdefender/sound"
	"github.com/automoto/laserdefender/systems"
	"github.com/automoto/laserdefender/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Services are the process-wide collaborators every scene shares
type Services struct {
	Registry    *sound.Registry
	SFX         sound.Settings // clip settings for each scene's audio player
	Preferences *systems.Preferences

	// LiveOneShots reports how many one-shots are still playing. May be nil.
	LiveOneShots func() int
	Quit         func()
}

// ClipResolver turns a clip configuration into playable settings
type ClipResolver interface {
	Invalidate()
	Settings(c sound.Config) sound.Settings
}

// ApplyReloads drains configs delivered by a config watcher without blocking.
// Each one reconfigures the live player and becomes the settings for players
// built by later scenes. It reports false once either channel is closed.
func (svc *Services) ApplyReloads(configs <-chan sound.Config, errs <-chan error, clips ClipResolver) bool {
	for {
		select {
		case c, ok := <-configs:
			if !ok {
				return false
			}
			clips.Invalidate()
			settings := clips.Settings(c)
			svc.SFX = settings
			if player, ok := svc.Registry.Instance(); ok {
				player.Configure(settings)
			}
			log.Printf("[Audio] Reloaded clip configuration")
		case err, ok := <-errs:
			if !ok {
				return false
			}
			log.Printf("Warning: Could not reload clip configuration: %v", err)
		default:
			return true
		}
	}
}

// newSceneECS creates a world with a camera and this scene's audio player.
// Only the first scene's player ever becomes live.
func newSceneECS(svc *Services) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateCamera(e)
	systems.AttachAudioPlayer(e, svc.Registry, svc.Registry.New(svc.SFX))
	return e
}

// listenerPosition is the camera of e. Scenes are configured on their first
// update, which always precedes any sound they trigger.
func listenerPosition(e *ecs.ECS) math.Vec2 {
	return systems.ListenerPosition(e.World)
}

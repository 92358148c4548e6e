package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/laserdefender/config"
	"github.com/automoto/laserdefender/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	services     *Services
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, svc *Services) *MenuScene {
	return &MenuScene{sceneChanger: sc, services: svc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) ListenerPosition() math.Vec2 {
	return listenerPosition(ms.ecs)
}

func (ms *MenuScene) configure() {
	ms.ecs = newSceneECS(ms.services)

	createWorldScene := func() interface{} {
		return NewWorldScene(ms.sceneChanger, ms.services)
	}

	// Audio system runs first so queued sounds play from this scene's camera
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateOverlay)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createWorldScene, ms.services.Preferences, ms.services.Quit))

	ms.ecs.AddRenderer(cfg.Default, systems.NewDrawMenu(ms.services.Preferences))
	ms.ecs.AddRenderer(cfg.Default, systems.NewDrawAudioOverlay(ms.services.Registry, ms.services.LiveOneShots))
}

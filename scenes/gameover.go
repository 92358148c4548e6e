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

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	services     *Services
	finalScore   int
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, svc *Services, finalScore int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, services: svc, finalScore: finalScore}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) ListenerPosition() math.Vec2 {
	return listenerPosition(gs.ecs)
}

func (gs *GameOverScene) configure() {
	gs.ecs = newSceneECS(gs.services)
	systems.GetOrCreateGameOver(gs.ecs).FinalScore = gs.finalScore

	// Scene factories
	createWorldScene := func() interface{} {
		return NewWorldScene(gs.sceneChanger, gs.services)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger, gs.services)
	}

	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.UpdateOverlay)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createWorldScene, createMenuScene))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
	gs.ecs.AddRenderer(cfg.Default, systems.NewDrawAudioOverlay(gs.services.Registry, gs.services.LiveOneShots))
}

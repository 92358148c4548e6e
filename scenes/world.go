package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/laserdefender/assets"
	"github.com/automoto/laserdefender/components"
	cfg "github.com/automoto/laserdefender/config"
	"github.com/automoto/laserdefender/systems"
	"github.com/automoto/laserdefender/systems/factory"
	"github.com/automoto/laserdefender/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Frames between the ship's destruction and the game over screen
const gameOverDelay = 60

var (
	levelsOnce sync.Once
	levels     []assets.Level
)

// WorldScene is the playfield
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	services     *Services
	once         sync.Once

	deadFrames int
}

// NewWorldScene creates a new world scene
func NewWorldScene(sc SceneChanger, svc *Services) *WorldScene {
	return &WorldScene{sceneChanger: sc, services: svc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if _, alive := tags.Ship.First(ws.ecs.World); alive {
		return
	}
	ws.deadFrames++
	if ws.deadFrames >= gameOverDelay {
		ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, ws.services, ws.score()))
	}
}

func (ws *WorldScene) score() int {
	entry, ok := components.Score.First(ws.ecs.World)
	if !ok {
		return 0
	}
	return components.Score.Get(entry).Points
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) ListenerPosition() math.Vec2 {
	return listenerPosition(ws.ecs)
}

func (ws *WorldScene) configure() {
	levelsOnce.Do(func() {
		levels = assets.NewLevelLoader().MustLoadLevels()
	})
	level := &levels[0]

	e := newSceneECS(ws.services)

	// Audio system runs first so queued sounds play from this scene's camera
	e.AddSystem(systems.UpdateAudio)

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateOverlay)
	e.AddSystem(systems.UpdateWaves)
	e.AddSystem(systems.UpdateShip)
	e.AddSystem(systems.UpdateEnemies)
	e.AddSystem(systems.UpdateLasers)
	e.AddSystem(systems.UpdateCombat)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawEntities)
	e.AddRenderer(cfg.Default, systems.DrawEnemyHealthBars)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.NewDrawAudioOverlay(ws.services.Registry, ws.services.LiveOneShots))

	factory.CreateSpace(e, level.Width, level.Height, 16, 16)
	factory.CreateLevel(e, level)
	factory.CreateShip(e, level.PlayerSpawn.X, level.PlayerSpawn.Y)

	ws.ecs = e
}

package systems

import (
	"image/color"

	"github.com/automoto/laserdefender/components"
	cfg "github.com/automoto/laserdefender/config"
	"github.com/automoto/laserdefender/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawBackground clears the playfield
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Space)
}

// DrawEntities renders the ship, enemies and lasers as filled rectangles,
// offset by the camera's screen shake.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	offX, offY := cameraOffset(ecs)

	tags.Laser.Each(ecs.World, func(e *donburi.Entry) {
		laser := components.Laser.Get(e)
		c := cfg.Laser.EnemyColor
		if laser.FromShip {
			c = cfg.Laser.PlayerColor
		}
		fillObject(screen, components.Object.Get(e), offX, offY, c)
	})

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		fillObject(screen, components.Object.Get(e), offX, offY, flashTint(e, enemy.TypeConfig.Color))
	})

	if shipEntry, ok := tags.Ship.First(ecs.World); ok {
		c := cfg.LightBlue
		// Blink while invulnerable
		if ship := components.Ship.Get(shipEntry); ship.InvulnFrames > 0 && ship.InvulnFrames%4 < 2 {
			c = cfg.White
		}
		fillObject(screen, components.Object.Get(shipEntry), offX, offY, flashTint(shipEntry, c))
	}
}

func cameraOffset(ecs *ecs.ECS) (float32, float32) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return float32(camera.Offset.X), float32(camera.Offset.Y)
}

func fillObject(screen *ebiten.Image, o *components.ObjectData, offX, offY float32, c color.RGBA) {
	vector.FillRect(screen,
		float32(o.X)+offX, float32(o.Y)+offY,
		float32(o.W), float32(o.H),
		c, false)
}

// flashTint blends c toward red by the entity's current flash amount
func flashTint(e *donburi.Entry, c color.RGBA) color.RGBA {
	if !e.HasComponent(components.Flash) {
		return c
	}
	t := components.Flash.Get(e).Amount
	if t <= 0 {
		return c
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t)
	}
	return color.RGBA{
		R: lerp(c.R, cfg.Red.R),
		G: lerp(c.G, cfg.Red.G),
		B: lerp(c.B, cfg.Red.B),
		A: c.A,
	}
}

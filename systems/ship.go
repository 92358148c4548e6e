package systems

import (
	"math"

	"github.com/automoto/laserdefender/components"
	cfg "github.com/automoto/laserdefender/config"
	"github.com/automoto/laserdefender/systems/factory"
	"github.com/automoto/laserdefender/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateShip moves the player ship from input and fires while fire is held.
func UpdateShip(e *ecs.ECS) {
	shipEntry, ok := tags.Ship.First(e.World)
	if !ok {
		return // destroyed, game over is pending
	}
	input := getOrCreateInput(e)
	ship := components.Ship.Get(shipEntry)
	obj := components.Object.Get(shipEntry)

	if ship.InvulnFrames > 0 {
		ship.InvulnFrames--
	}
	if ship.FireCooldown > 0 {
		ship.FireCooldown--
	}

	var dx, dy float64
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		dx--
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		dx++
	}
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		dy--
	}
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		dy++
	}
	// Same speed on diagonals
	if dx != 0 && dy != 0 {
		dx *= math.Sqrt2 / 2
		dy *= math.Sqrt2 / 2
	}

	pad := cfg.Ship.Padding
	obj.X = clamp(obj.X+dx*cfg.Ship.Speed, pad, float64(cfg.C.Width)-obj.W-pad)
	obj.Y = clamp(obj.Y+dy*cfg.Ship.Speed, pad, float64(cfg.C.Height)-obj.H-pad)
	obj.Update()

	if GetAction(input, cfg.ActionFire).Pressed && ship.FireCooldown == 0 {
		factory.CreateLaser(e, obj.X+obj.W/2, obj.Y, -cfg.Laser.Speed, cfg.Laser.Damage, true)
		PlaySFX(e, cfg.SoundShoot)
		ship.FireCooldown = cfg.Ship.FireCooldown
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

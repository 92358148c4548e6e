package systems

import (
	"github.com/automoto/laserdefender/components"
	cfg "github.com/automoto/laserdefender/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances damage flashes and health bar timers
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateHealthBars(ecs)
}

// updateFlashEffects steps each flash fade and drops finished ones
func updateFlashEffects(ecs *ecs.ECS) {
	dt := 1 / float32(cfg.C.TPS)

	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Fade == nil {
			return
		}
		amount, done := flash.Fade.Update(dt)
		flash.Amount = amount
		if done {
			flash.Fade = nil
			flash.Amount = 0
		}
	})
}

func updateHealthBars(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		bar := components.HealthBar.Get(e)
		bar.TimeToLive--
		if bar.TimeToLive <= 0 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.HealthBar)
	}
}

// TriggerDamageFlash restarts the red flash on an entity
func TriggerDamageFlash(entry *donburi.Entry) {
	if !entry.HasComponent(components.Flash) {
		entry.AddComponent(components.Flash)
	}
	flash := components.Flash.Get(entry)
	flash.Fade = gween.New(1, 0, cfg.Combat.DamageFlashSeconds, ease.OutQuad)
	flash.Amount = 1
}

package systems

import (
	"github.com/automoto/laserdefender/components"
	cfg "github.com/automoto/laserdefender/config"
	"github.com/automoto/laserdefender/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat applies queued damage events, plays the damage sound and
// removes whatever was destroyed.
func UpdateCombat(ecs *ecs.ECS) {
	var hit []*donburi.Entry
	components.DamageEvent.Each(ecs.World, func(e *donburi.Entry) {
		hit = append(hit, e)
	})

	var destroyed []*donburi.Entry
	for _, e := range hit {
		dmg := *components.DamageEvent.Get(e)
		// Remove the event so it is processed only once
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)

		if e.HasComponent(components.Ship) {
			ship := components.Ship.Get(e)
			if ship.InvulnFrames > 0 {
				continue
			}
			ship.InvulnFrames = cfg.Ship.InvulnFrames
			TriggerScreenShake(ecs, cfg.ScreenShake.PlayerDamageIntensity, cfg.ScreenShake.PlayerDamageDuration)
		}

		hp := components.Health.Get(e)
		hp.Current = max(0, hp.Current-dmg.Amount)

		PlaySFX(ecs, cfg.SoundDamage)
		TriggerDamageFlash(e)

		// If the entity is an enemy, show the health bar
		if e.HasComponent(tags.Enemy) {
			donburi.Add(e, components.HealthBar, &components.HealthBarData{
				TimeToLive: cfg.Combat.HealthBarDuration,
			})
		}

		if hp.Current == 0 {
			if e.HasComponent(tags.Enemy) && dmg.FromShip {
				addScore(ecs, components.Enemy.Get(e).TypeConfig.Score)
			}
			destroyed = append(destroyed, e)
		}
	}

	for _, e := range destroyed {
		destroyObject(ecs, e)
	}
}

func addScore(ecs *ecs.ECS, points int) {
	levelEntry, ok := components.Score.First(ecs.World)
	if !ok {
		return
	}
	score := components.Score.Get(levelEntry)
	score.Points += points
	score.Kills++
}

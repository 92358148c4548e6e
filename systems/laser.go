package systems

import (
	"github.com/automoto/laserdefender/components"
	cfg "github.com/automoto/laserdefender/config"
	"github.com/automoto/laserdefender/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLasers moves lasers, culls them off-screen and turns hits into DamageEvents.
func UpdateLasers(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	margin := cfg.Laser.CullMargin
	width := float64(cfg.C.Width)
	height := float64(cfg.C.Height)

	components.Laser.Each(ecs.World, func(e *donburi.Entry) {
		velocity := components.Velocity.Get(e)
		obj := components.Object.Get(e)

		obj.X += velocity.X
		obj.Y += velocity.Y
		obj.Update()

		if obj.X < -margin || obj.X > width+margin ||
			obj.Y < -margin || obj.Y > height+margin {
			toRemove = append(toRemove, e)
			return
		}

		if checkLaserCollisions(e, obj) {
			toRemove = append(toRemove, e)
		}
	})

	for _, laser := range toRemove {
		destroyObject(ecs, laser)
	}
}

// checkLaserCollisions applies damage to the first valid target and reports whether the laser was spent
func checkLaserCollisions(laserEntry *donburi.Entry, obj *components.ObjectData) bool {
	laser := components.Laser.Get(laserEntry)

	target := tags.ResolvShip
	if laser.FromShip {
		target = tags.ResolvEnemy
	}

	check := obj.Check(0, 0, target)
	if check == nil {
		return false
	}

	for _, hit := range check.ObjectsByTags(target) {
		// Check only narrows by cell, so confirm the boxes actually touch
		if !overlaps(obj.Object, hit) {
			continue
		}
		entry, ok := hit.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.Valid() {
			continue
		}
		addDamage(entry, laser.Damage, laser.FromShip)
		return true
	}
	return false
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// addDamage queues damage on an entity, merging with damage already queued this frame
func addDamage(entry *donburi.Entry, amount int, fromShip bool) {
	if entry.HasComponent(components.DamageEvent) {
		ev := components.DamageEvent.Get(entry)
		ev.Amount += amount
		ev.FromShip = ev.FromShip || fromShip
		return
	}
	donburi.Add(entry, components.DamageEvent, &components.DamageEventData{
		Amount:   amount,
		FromShip: fromShip,
	})
}

// destroyObject removes an entity and its collision object
func destroyObject(ecs *ecs.ECS, entry *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		obj := components.Object.Get(entry)
		if obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(entry.Entity())
}

package components

import "github.com/yohamta/donburi"

type DamageEventData struct {
	Amount   int
	FromShip bool // true when the player ship fired the laser (for scoring)
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()

package components

import "github.com/yohamta/donburi"

// ShipData is the player-controlled ship
type ShipData struct {
	FireCooldown int // Frames until the next shot is allowed
	InvulnFrames int // Invulnerability frames timer
}

var Ship = donburi.NewComponentType[ShipData]()

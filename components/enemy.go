package components

import (
	"github.com/automoto/laserdefender/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string                  // "scout", "gunship"
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration

	// Entry flight, nil once the enemy has reached its line
	Entry *gween.Tween

	StrafeDir    float64 // -1 or 1 while strafing
	FireCooldown int     // Frames until the next shot
}

var Enemy = donburi.NewComponentType[EnemyData]()

package tags

import "github.com/yohamta/donburi"

var (
	Ship  = donburi.NewTag().SetName("Ship")
	Enemy = donburi.NewTag().SetName("Enemy")
	Laser = donburi.NewTag().SetName("Laser")
)

// Resolv tags for collision checks
const (
	ResolvShip       = "Ship"
	ResolvEnemy      = "Enemy"
	ResolvShipLaser  = "ShipLaser"
	ResolvEnemyLaser = "EnemyLaser"
)

package components

import "github.com/yohamta/donburi"

type LaserData struct {
	Damage   int
	FromShip bool // Player lasers hit enemies, enemy lasers hit the ship
}

var Laser = donburi.NewComponentType[LaserData]()

package components

import "github.com/yohamta/donburi"

// VelocityData moves an object by a fixed amount every frame
type VelocityData struct {
	X, Y float64
}

var Velocity = donburi.NewComponentType[VelocityData]()

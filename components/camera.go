package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the view centre; it doubles as the audio listener position.
type CameraData struct {
	Position math.Vec2
	Offset   math.Vec2 // Screen shake offset applied when drawing
}

var Camera = donburi.NewComponentType[CameraData]()

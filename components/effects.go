package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tracks the damage flash; Fade eases the red tint from 1 to 0
type FlashData struct {
	Fade   *gween.Tween
	Amount float32 // current tint strength (0 = none, 1 = full red)
}

var Flash = donburi.NewComponentType[FlashData]()

package components

import "github.com/yohamta/donburi"

// OverlayData toggles the audio debug overlay
type OverlayData struct {
	Visible bool
}

var Overlay = donburi.NewComponentType[OverlayData]()

package components

import (
	cfg "github.com/automoto/laserdefender/config"
	"github.com/automoto/laserdefender/sound"
	"github.com/yohamta/donburi"
)

// AudioData stores the world's handle to the live audio player (singleton component)
type AudioData struct {
	Player     *sound.AudioPlayer // nil until the scene's player has been initialized
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()

package systems

import (
	"github.com/automoto/laserdefender/components"
	cfg "github.com/automoto/laserdefender/config"
	"github.com/automoto/laserdefender/sound"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// AttachAudioPlayer initializes a scene's audio player and stores the live
// instance in the world. When another scene already owns the live player,
// the scene's own player is discarded and the existing one is used instead.
func AttachAudioPlayer(e *ecs.ECS, registry *sound.Registry, player *sound.AudioPlayer) {
	player.Initialize()

	audioData := GetOrCreateAudio(e)
	if live, ok := registry.Instance(); ok {
		audioData.Player = live
	}
}

// UpdateAudio plays every queued SFX through the live audio player
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}

	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(audioData.Player, soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(player *sound.AudioPlayer, soundID cfg.SoundID) {
	if player == nil {
		return
	}

	switch soundID {
	case cfg.SoundShoot:
		player.PlayShootingClip()
	case cfg.SoundDamage:
		player.PlayDamageClip()
	}
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, id cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, id)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// ListenerPosition is where one-shots are heard from: the world's camera.
// Every scene creates a camera before anything can play.
func ListenerPosition(w donburi.World) math.Vec2 {
	cameraEntry := components.Camera.MustFirst(w)
	return components.Camera.Get(cameraEntry).Position
}

func listenerPosition(e *ecs.ECS) (math.Vec2, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return math.Vec2{}, false
	}
	return components.Camera.Get(cameraEntry).Position, true
}

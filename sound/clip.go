package sound

import "math"

// Volume bounds for every clip category.
const (
	MinVolume     = 0.0
	MaxVolume     = 1.0
	DefaultVolume = 1.0
)

// Clip is a pre-decoded sound effect. A nil *Clip is an unset clip.
type Clip struct {
	Name string
	PCM  []byte // 16-bit little endian stereo at the audio context sample rate
}

// ClampVolume forces v into [MinVolume, MaxVolume]. NaN falls back to DefaultVolume.
func ClampVolume(v float64) float64 {
	if math.IsNaN(v) {
		return DefaultVolume
	}
	return math.Max(MinVolume, math.Min(MaxVolume, v))
}

// Settings are the authoring-time fields of an AudioPlayer.
type Settings struct {
	ShootingClip   *Clip
	ShootingVolume float64
	DamageClip     *Clip
	DamageVolume   float64
}

// DefaultSettings has no clips and full volume for both categories.
func DefaultSettings() Settings {
	return Settings{
		ShootingVolume: DefaultVolume,
		DamageVolume:   DefaultVolume,
	}
}

func (s Settings) clamped() Settings {
	s.ShootingVolume = ClampVolume(s.ShootingVolume)
	s.DamageVolume = ClampVolume(s.DamageVolume)
	return s
}

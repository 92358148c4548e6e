package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Weapons fire, player and enemy alike
	SoundShoot
	// Any ship taking a hit
	SoundDamage
)

func (s SoundID) String() string {
	switch s {
	case SoundShoot:
		return "shoot"
	case SoundDamage:
		return "damage"
	default:
		return "none"
	}
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int

	// Embedded clip configuration, relative to the assets package
	SFXConfigPath string

	// On-disk clip configuration that overrides the embedded one and is
	// watched for changes. Empty means embedded only.
	SFXOverridePath string
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		SFXConfigPath: "audio/sfx.yaml",
	}
}

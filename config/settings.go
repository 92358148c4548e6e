package config

// SettingsConfig contains user-adjustable settings configuration
type SettingsConfig struct {
	VolumeSteps        []float64
	DefaultVolumeIndex int
	SaveKey            string
	AppName            string
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		VolumeSteps:        []float64{0, 0.25, 0.5, 0.75, 1.0},
		DefaultVolumeIndex: 3,
		SaveKey:            "settings",
		AppName:            "laserdefender",
	}
}

package sound

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// ClipConfig names one clip asset and the volume it plays at.
type ClipConfig struct {
	Clip   string   `yaml:"clip"`
	Volume *float64 `yaml:"volume,omitempty"`
}

// Level returns the configured volume, DefaultVolume when omitted.
func (c ClipConfig) Level() float64 {
	if c.Volume == nil {
		return DefaultVolume
	}
	return *c.Volume
}

// Config is the on-disk form of Settings. Clips are asset paths.
type Config struct {
	Shooting ClipConfig `yaml:"shooting"`
	Damage   ClipConfig `yaml:"damage"`
}

// ParseConfig decodes a YAML clip configuration. Out of range volumes are
// clamped and reported.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing sfx config: %w", err)
	}
	clampClipVolume("shooting", &c.Shooting)
	clampClipVolume("damage", &c.Damage)
	return c, nil
}

// LoadConfigFile reads and parses a clip configuration from disk.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading sfx config %s: %w", path, err)
	}
	return ParseConfig(data)
}

func clampClipVolume(name string, c *ClipConfig) {
	if c.Volume == nil {
		return
	}
	v := ClampVolume(*c.Volume)
	if v != *c.Volume {
		log.Printf("Warning: %s volume %v outside [0,1], using %v", name, *c.Volume, v)
	}
	c.Volume = &v
}

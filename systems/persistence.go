package systems

import (
	"encoding/json"
	"log"
	"math"

	cfg "github.com/automoto/laserdefender/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume float64 `json:"sfxVolume"`
	Muted     bool    `json:"muted"`
}

// ItemStore is the subset of gdata.Manager the settings use
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SettingsStore reads and writes SavedSettings. A nil store does nothing.
type SettingsStore struct {
	items ItemStore
}

// OpenSettingsStore initializes the gdata manager for settings storage
func OpenSettingsStore() (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return nil, err
	}
	return NewSettingsStore(m), nil
}

// NewSettingsStore wraps an existing item store
func NewSettingsStore(items ItemStore) *SettingsStore {
	return &SettingsStore{items: items}
}

// Load loads settings from disk. Missing or unreadable settings return nil.
func (s *SettingsStore) Load() (*SavedSettings, error) {
	if s == nil || s.items == nil {
		return nil, nil
	}

	data, err := s.items.LoadItem(cfg.Settings.SaveKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// Save saves settings to disk
func (s *SettingsStore) Save(settings *SavedSettings) error {
	if s == nil || s.items == nil {
		return nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := s.items.SaveItem(cfg.Settings.SaveKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// Mixer receives the effective master SFX volume
type Mixer interface {
	SetMasterVolume(v float64)
}

// Preferences are the user's audio settings, shared by every scene
type Preferences struct {
	VolumeIndex int
	Muted       bool

	mixer Mixer
	store *SettingsStore
}

// NewPreferences creates default preferences bound to a mixer and store.
// Either may be nil.
func NewPreferences(mixer Mixer, store *SettingsStore) *Preferences {
	return &Preferences{
		VolumeIndex: cfg.Settings.DefaultVolumeIndex,
		mixer:       mixer,
		store:       store,
	}
}

// LoadSaved applies previously saved settings and pushes them to the mixer
func (p *Preferences) LoadSaved() {
	saved, err := p.store.Load()
	if err == nil && saved != nil {
		p.VolumeIndex = nearestVolumeStep(saved.SFXVolume)
		p.Muted = saved.Muted
	}
	p.apply()
}

// Volume returns the effective master SFX volume
func (p *Preferences) Volume() float64 {
	if p.Muted {
		return 0
	}
	return cfg.Settings.VolumeSteps[p.VolumeIndex]
}

// StepVolume moves the volume by delta steps, clamped to the available steps
func (p *Preferences) StepVolume(delta int) {
	idx := p.VolumeIndex + delta
	idx = max(0, min(len(cfg.Settings.VolumeSteps)-1, idx))
	if idx == p.VolumeIndex {
		return
	}
	p.VolumeIndex = idx
	p.Muted = false
	p.commit()
}

// ToggleMute flips the mute flag
func (p *Preferences) ToggleMute() {
	p.Muted = !p.Muted
	p.commit()
}

func (p *Preferences) commit() {
	p.apply()
	_ = p.store.Save(&SavedSettings{
		SFXVolume: cfg.Settings.VolumeSteps[p.VolumeIndex],
		Muted:     p.Muted,
	})
}

func (p *Preferences) apply() {
	if p.mixer != nil {
		p.mixer.SetMasterVolume(p.Volume())
	}
}

func nearestVolumeStep(v float64) int {
	best := 0
	for i, step := range cfg.Settings.VolumeSteps {
		if math.Abs(step-v) < math.Abs(cfg.Settings.VolumeSteps[best]-v) {
			best = i
		}
	}
	return best
}

package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/automoto/laserdefender/sound"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed all:audio
var audioFS embed.FS

// AudioLoader handles loading and caching of audio clips. Sources are
// searched in order, so an on-disk directory can shadow the embedded assets.
type AudioLoader struct {
	sampleRate int
	sources    []fs.FS
	clipCache  map[string]*sound.Clip
}

// NewAudioLoader creates a loader that decodes at the given sample rate and
// reads from the embedded assets.
func NewAudioLoader(sampleRate int) *AudioLoader {
	return &AudioLoader{
		sampleRate: sampleRate,
		sources:    []fs.FS{audioFS},
		clipCache:  make(map[string]*sound.Clip),
	}
}

// PrependSource makes fsys the first place clips and configs are looked up.
func (l *AudioLoader) PrependSource(fsys fs.FS) {
	l.sources = append([]fs.FS{fsys}, l.sources...)
}

// Invalidate drops every cached clip so the next load re-reads the sources.
func (l *AudioLoader) Invalidate() {
	clear(l.clipCache)
}

// LoadConfig reads the clip configuration at path.
func (l *AudioLoader) LoadConfig(configPath string) (sound.Config, error) {
	data, err := l.readFile(configPath)
	if err != nil {
		return sound.Config{}, err
	}
	return sound.ParseConfig(data)
}

// LoadClip decodes a clip, caching the decoded bytes for instant playback.
// An empty path is an unset clip and returns nil without error.
func (l *AudioLoader) LoadClip(clipPath string) (*sound.Clip, error) {
	if clipPath == "" {
		return nil, nil
	}
	if clip, ok := l.clipCache[clipPath]; ok {
		return clip, nil
	}

	data, err := l.readFile(clipPath)
	if err != nil {
		return nil, err
	}

	var stream io.Reader
	ext := strings.ToLower(path.Ext(clipPath))

	switch ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(l.sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", clipPath, err)
		}
		stream = s

	case ".wav":
		s, err := wav.DecodeWithSampleRate(l.sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", clipPath, err)
		}
		stream = s

	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", clipPath, err)
	}

	clip := &sound.Clip{Name: path.Base(clipPath), PCM: decoded}
	l.clipCache[clipPath] = clip
	return clip, nil
}

// Settings resolves a clip configuration. Clips that fail to load are
// logged and left unset, which makes them silent.
func (l *AudioLoader) Settings(c sound.Config) sound.Settings {
	return sound.Settings{
		ShootingClip:   l.tryClip(c.Shooting.Clip),
		ShootingVolume: c.Shooting.Level(),
		DamageClip:     l.tryClip(c.Damage.Clip),
		DamageVolume:   c.Damage.Level(),
	}
}

func (l *AudioLoader) tryClip(clipPath string) *sound.Clip {
	clip, err := l.LoadClip(clipPath)
	if err != nil {
		log.Printf("Warning: Could not load clip %s: %v", clipPath, err)
		return nil
	}
	return clip
}

func (l *AudioLoader) readFile(name string) ([]byte, error) {
	var lastErr error
	for _, src := range l.sources {
		data, err := fs.ReadFile(src, name)
		if err == nil {
			return data, nil
		}
		lastErr = err
		if !errors.Is(err, fs.ErrNotExist) {
			break
		}
	}
	return nil, fmt.Errorf("failed to read audio file %s: %w", name, lastErr)
}

package sound

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/features/math"
)

type oneShot interface {
	IsPlaying() bool
	Close() error
}

// EbitenBackend plays clips through an Ebitengine audio context. Every clip
// gets its own player which is closed once playback finishes.
type EbitenBackend struct {
	context *audio.Context
	master  float64
	live    []oneShot
}

// NewEbitenBackend creates a backend playing through ctx.
func NewEbitenBackend(ctx *audio.Context) *EbitenBackend {
	return &EbitenBackend{
		context: ctx,
		master:  DefaultVolume,
	}
}

// SetMasterVolume scales every one-shot started afterwards.
func (b *EbitenBackend) SetMasterVolume(v float64) {
	b.master = ClampVolume(v)
}

// MasterVolume returns the current master SFX volume.
func (b *EbitenBackend) MasterVolume() float64 {
	return b.master
}

// PlayOneShot starts clip at volume scaled by the master volume. The engine
// plays one-shots unpositioned, so at is not used.
func (b *EbitenBackend) PlayOneShot(clip *Clip, _ math.Vec2, volume float64) {
	b.Update()

	gain := b.gain(volume)
	if gain <= 0 || len(clip.PCM) == 0 {
		return
	}

	player := b.context.NewPlayerFromBytes(clip.PCM)
	player.SetVolume(gain)
	player.Play()
	b.live = append(b.live, player)
}

func (b *EbitenBackend) gain(volume float64) float64 {
	return ClampVolume(volume) * b.master
}

// Update closes players that have finished. Call once per tick.
func (b *EbitenBackend) Update() {
	b.live = reap(b.live)
}

// Live returns the number of one-shots still playing.
func (b *EbitenBackend) Live() int {
	return len(b.live)
}

// Close stops and releases every outstanding player.
func (b *EbitenBackend) Close() error {
	var first error
	for _, p := range b.live {
		if err := p.Close(); err != nil && first == nil {
			first = err
		}
	}
	b.live = b.live[:0]
	return first
}

func reap(live []oneShot) []oneShot {
	kept := live[:0]
	for _, p := range live {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		_ = p.Close()
	}
	for i := len(kept); i < len(live); i++ {
		live[i] = nil
	}
	return kept
}

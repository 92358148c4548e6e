package sound

import "github.com/yohamta/donburi/features/math"

// Backend plays a clip once at a world position. It owns the lifetime of
// whatever temporary playback resource it creates.
type Backend interface {
	PlayOneShot(clip *Clip, at math.Vec2, volume float64)
}

// Listener reports where sound is heard from, usually the active camera.
type Listener interface {
	ListenerPosition() math.Vec2
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func() math.Vec2

func (f ListenerFunc) ListenerPosition() math.Vec2 { return f() }

// State is the lifecycle state of an AudioPlayer.
type State int

const (
	StateUninitialized State = iota
	StateActive
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateDestroyed:
		return "destroyed"
	default:
		return "uninitialized"
	}
}

// AudioPlayer plays the shooting and damage one-shots. Only the instance the
// Registry holds as active produces sound.
type AudioPlayer struct {
	registry *Registry
	settings Settings
	state    State
}

// Initialize activates the player. If the registry already has a live player
// this one is destroyed instead. Repeated calls do nothing. A player not
// built by Registry.New has nowhere to play and is destroyed.
func (p *AudioPlayer) Initialize() {
	if p.state != StateUninitialized {
		return
	}
	if p.registry == nil {
		p.state = StateDestroyed
		return
	}
	p.registry.claim(p)
}

// State returns the lifecycle state.
func (p *AudioPlayer) State() State {
	return p.state
}

// Settings returns the clamped authoring-time fields.
func (p *AudioPlayer) Settings() Settings {
	return p.settings
}

// Configure replaces the clips and volumes. Volumes are clamped.
func (p *AudioPlayer) Configure(s Settings) {
	p.settings = s.clamped()
}

// PlayShootingClip plays the shooting clip at the shooting volume.
func (p *AudioPlayer) PlayShootingClip() {
	p.playClip(p.settings.ShootingClip, p.settings.ShootingVolume)
}

// PlayDamageClip plays the damage clip at the damage volume.
func (p *AudioPlayer) PlayDamageClip() {
	p.playClip(p.settings.DamageClip, p.settings.DamageVolume)
}

func (p *AudioPlayer) playClip(clip *Clip, volume float64) {
	if clip == nil || p.state != StateActive {
		return
	}
	at := p.registry.listener.ListenerPosition()
	p.registry.backend.PlayOneShot(clip, at, volume)
}

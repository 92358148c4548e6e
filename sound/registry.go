package sound

import (
	"fmt"
	"io"
)

// Registry owns the single live AudioPlayer for the process. The composition
// root creates one and hands it to every scene that wants to trigger sounds.
type Registry struct {
	backend  Backend
	listener Listener
	active   *AudioPlayer

	activations int
	discarded   int
}

// Stats counts Initialize calls that reached the registry.
type Stats struct {
	Activations int
	Discarded   int
}

// NewRegistry creates a registry whose players play through backend at the
// position reported by listener.
func NewRegistry(backend Backend, listener Listener) *Registry {
	return &Registry{
		backend:  backend,
		listener: listener,
	}
}

// New returns an uninitialized player bound to this registry.
func (r *Registry) New(s Settings) *AudioPlayer {
	return &AudioPlayer{
		registry: r,
		settings: s.clamped(),
	}
}

// Instance returns the live player, if any.
func (r *Registry) Instance() (*AudioPlayer, bool) {
	return r.active, r.active != nil
}

// Stats returns activation counters.
func (r *Registry) Stats() Stats {
	return Stats{Activations: r.activations, Discarded: r.discarded}
}

// Shutdown destroys the live player and closes the backend when it holds
// resources. A later Initialize may activate a new player.
func (r *Registry) Shutdown() error {
	if r.active != nil {
		r.active.state = StateDestroyed
		r.active = nil
	}
	if c, ok := r.backend.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("closing audio backend: %w", err)
		}
	}
	return nil
}

func (r *Registry) claim(p *AudioPlayer) {
	r.activations++
	if r.active != nil {
		p.state = StateDestroyed
		r.discarded++
		return
	}
	p.state = StateActive
	r.active = p
}

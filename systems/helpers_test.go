package systems

import (
	"testing"

	"github.com/automoto/laserdefender/components"
	cfg "github.com/automoto/laserdefender/config"
	"github.com/automoto/laserdefender/sound"
	"github.com/automoto/laserdefender/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

type playRequest struct {
	Clip   *sound.Clip
	At     math.Vec2
	Volume float64
}

type recordingBackend struct {
	requests []playRequest
}

func (b *recordingBackend) PlayOneShot(clip *sound.Clip, at math.Vec2, volume float64) {
	b.requests = append(b.requests, playRequest{Clip: clip, At: at, Volume: volume})
}

var (
	shotClip = &sound.Clip{Name: "shot.wav", PCM: []byte{1, 2, 3, 4}}
	hitClip  = &sound.Clip{Name: "hit.wav", PCM: []byte{5, 6, 7, 8}}
)

func testSettings() sound.Settings {
	return sound.Settings{
		ShootingClip:   shotClip,
		ShootingVolume: 0.8,
		DamageClip:     hitClip,
		DamageVolume:   1.0,
	}
}

// newTestECS builds a world with a camera, a collision space and a live audio
// player. The registry listens to this world's camera.
func newTestECS(t *testing.T) (*ecs.ECS, *recordingBackend) {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateCamera(e)
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)

	backend := &recordingBackend{}
	registry := sound.NewRegistry(backend, sound.ListenerFunc(func() math.Vec2 {
		return ListenerPosition(e.World)
	}))
	AttachAudioPlayer(e, registry, registry.New(testSettings()))

	player, ok := registry.Instance()
	require.True(t, ok)
	require.Equal(t, sound.StateActive, player.State())
	return e, backend
}

func pressAction(e *ecs.ECS, action cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[action] = true
}

func releaseAll(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
}

func pendingSFX(e *ecs.ECS) []cfg.SoundID {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return nil
	}
	return components.Audio.Get(entry).PendingSFX
}

func count[T any](w donburi.World, c *donburi.ComponentType[T]) int {
	n := 0
	c.Each(w, func(*donburi.Entry) { n++ })
	return n
}

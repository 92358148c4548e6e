package systems

import (
	"fmt"

	"github.com/automoto/laserdefender/components"
	cfg "github.com/automoto/laserdefender/config"
	"github.com/automoto/laserdefender/fonts"
	"github.com/automoto/laserdefender/sound"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOverlay toggles the audio overlay. The choice carries over to the
// worlds of later scenes.
func UpdateOverlay(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionToggleOverlay).JustPressed {
		overlay := GetOrCreateOverlay(e)
		overlay.Visible = !overlay.Visible
		cfg.Debug.ShowOverlay = overlay.Visible
	}
}

// NewDrawAudioOverlay shows the audio registry state and the number of
// one-shots still playing. live may be nil.
func NewDrawAudioOverlay(registry *sound.Registry, live func() int) ecs.Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !GetOrCreateOverlay(e).Visible {
			return
		}

		stats := registry.Stats()
		state := sound.StateUninitialized
		if player, ok := registry.Instance(); ok {
			state = player.State()
		}
		lines := []string{
			fmt.Sprintf("player: %s", state),
			fmt.Sprintf("activations: %d", stats.Activations),
			fmt.Sprintf("discarded: %d", stats.Discarded),
		}
		if live != nil {
			lines = append(lines, fmt.Sprintf("live one-shots: %d", live()))
		}
		if pos, ok := listenerPosition(e); ok {
			lines = append(lines, fmt.Sprintf("listener: %.0f,%.0f", pos.X, pos.Y))
		}

		width := float32(screen.Bounds().Dx())
		boxH := float32(len(lines)*12 + 6)
		vector.FillRect(screen, width-150, 30, 144, boxH, cfg.BlackOverlay, false)

		face := fonts.Small.Get()
		for i, line := range lines {
			text.Draw(screen, line, face, int(width)-144, 42+i*12, cfg.Yellow)
		}
	}
}

// GetOrCreateOverlay returns the singleton Overlay component, creating if needed
func GetOrCreateOverlay(e *ecs.ECS) *components.OverlayData {
	if _, ok := components.Overlay.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Overlay))
		components.Overlay.SetValue(ent, components.OverlayData{
			Visible: cfg.Debug.ShowOverlay,
		})
	}

	ent, _ := components.Overlay.First(e.World)
	return components.Overlay.Get(ent)
}

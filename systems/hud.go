package systems

import (
	"fmt"

	"github.com/automoto/laserdefender/components"
	cfg "github.com/automoto/laserdefender/config"
	"github.com/automoto/laserdefender/fonts"
	"github.com/automoto/laserdefender/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the ship's health bar, score and wave counter
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	m := float32(cfg.UI.Margin)
	w := float32(cfg.UI.HealthBarWidth)
	h := float32(cfg.UI.HealthBarHeight)

	vector.FillRect(screen, m, m, w, h, cfg.UI.HealthBarBG, false)
	if shipEntry, ok := tags.Ship.First(ecs.World); ok {
		hp := components.Health.Get(shipEntry)
		ratio := float32(hp.Current) / float32(hp.Max)
		vector.FillRect(screen, m, m, w*ratio, h, cfg.UI.HealthBarFG, false)
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	score := components.Score.Get(levelEntry)
	wave := components.Wave.Get(levelEntry)

	face := fonts.Regular.Get()
	width := screen.Bounds().Dx()
	scoreText := fmt.Sprintf("%06d", score.Points)
	text.Draw(screen, scoreText, face, width-int(m)-len(scoreText)*7, int(m)+10, cfg.UI.TextColor)
	text.Draw(screen, fmt.Sprintf("WAVE %d", wave.Cleared+1), fonts.Small.Get(), int(m), int(m+h)+14, cfg.UI.TextColor)
}

// DrawEnemyHealthBars draws a small bar above recently damaged enemies
func DrawEnemyHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	offX, offY := cameraOffset(ecs)

	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Health) || !e.HasComponent(components.Object) {
			return
		}
		hp := components.Health.Get(e)
		o := components.Object.Get(e)

		x := float32(o.X) + offX
		y := float32(o.Y) + offY - 5
		vector.FillRect(screen, x, y, float32(o.W), 2, cfg.UI.HealthBarBG, false)
		vector.FillRect(screen, x, y, float32(o.W)*float32(hp.Current)/float32(hp.Max), 2, cfg.UI.HealthBarFG, false)
	})
}

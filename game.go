package main

import (
	"image"

	"github.com/automoto/laserdefender/assets"
	"github.com/automoto/laserdefender/config"
	"github.com/automoto/laserdefender/scenes"
	"github.com/automoto/laserdefender/sound"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/features/math"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	ListenerPosition() math.Vec2
}

type Game struct {
	bounds   image.Rectangle
	scene    Scene
	services *scenes.Services

	loader  *assets.AudioLoader
	backend *sound.EbitenBackend
	watcher *sound.ConfigWatcher
	quit    bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// ListenerPosition is the camera of whichever scene is running
func (g *Game) ListenerPosition() math.Vec2 {
	return g.scene.ListenerPosition()
}

// Quit ends the game loop after the current tick
func (g *Game) Quit() {
	g.quit = true
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.applyConfigReloads()
	g.scene.Update()
	g.backend.Update()
	return nil
}

// applyConfigReloads swaps in clip configs delivered by the watcher. It runs
// on the game loop so the audio player is never touched concurrently.
func (g *Game) applyConfigReloads() {
	if g.watcher == nil {
		return
	}
	if !g.services.ApplyReloads(g.watcher.Configs, g.watcher.Errors, g.loader) {
		g.watcher = nil
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

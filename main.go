package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/laserdefender/assets"
	"github.com/automoto/laserdefender/config"
	"github.com/automoto/laserdefender/fonts"
	"github.com/automoto/laserdefender/scenes"
	"github.com/automoto/laserdefender/sound"
	"github.com/automoto/laserdefender/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "laserdefender",
	Short: "A vertical space shooter",
	Long: `Laser Defender: hold the line against waves of scouts and gunships.

Sound effects are configured by a YAML file. Pass --sfx-config to use an
on-disk file instead of the built-in one; it is reloaded whenever it changes.`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.Flags().BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "start straight in the game")
	rootCmd.Flags().StringVar(&config.Audio.SFXOverridePath, "sfx-config", "", "on-disk sound effect configuration to use and watch")
	rootCmd.Flags().BoolVar(&config.Debug.NoPersist, "no-save", false, "don't read or write saved settings")
	rootCmd.Flags().BoolVar(&config.Debug.ShowOverlay, "overlay", false, "show the audio overlay (toggle with F3)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGame(cmd *cobra.Command, args []string) error {
	fonts.LoadDefaults()

	g := &Game{}

	audioContext := audio.NewContext(config.Audio.SampleRate)
	g.backend = sound.NewEbitenBackend(audioContext)
	registry := sound.NewRegistry(g.backend, g)

	g.loader = assets.NewAudioLoader(config.Audio.SampleRate)
	sfx, err := loadSFX(g)
	if err != nil {
		return err
	}

	// Initialize persistence and load saved settings
	var store *systems.SettingsStore
	if !config.Debug.NoPersist {
		store, err = systems.OpenSettingsStore()
		if err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		}
	}
	prefs := systems.NewPreferences(g.backend, store)
	prefs.LoadSaved()

	g.services = &scenes.Services{
		Registry:     registry,
		SFX:          sfx,
		Preferences:  prefs,
		LiveOneShots: g.backend.Live,
		Quit:         g.Quit,
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g, g.services)
	} else {
		g.scene = scenes.NewMenuScene(g, g.services)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	runErr := ebiten.RunGame(g)

	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if err := registry.Shutdown(); err != nil {
		log.Printf("Warning: %v", err)
	}
	return runErr
}

// loadSFX resolves the clip settings, starting the config watcher when an
// on-disk override is used.
func loadSFX(g *Game) (sound.Settings, error) {
	configPath := config.Audio.SFXConfigPath

	if override := config.Audio.SFXOverridePath; override != "" {
		// Clips named by the override are looked up next to it first
		g.loader.PrependSource(os.DirFS(filepath.Dir(override)))
		configPath = filepath.Base(override)

		w, err := sound.WatchConfig(override)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", override, err)
		} else {
			g.watcher = w
		}
	}

	c, err := g.loader.LoadConfig(configPath)
	if err != nil {
		if g.watcher != nil {
			_ = g.watcher.Close()
		}
		return sound.Settings{}, fmt.Errorf("loading sound effect configuration: %w", err)
	}
	return g.loader.Settings(c), nil
}

package systems

import (
	"fmt"

	"github.com/automoto/laserdefender/components"
	cfg "github.com/automoto/laserdefender/config"
	"github.com/automoto/laserdefender/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability.
// quit is called when the player picks Exit or backs out of the menu.
func NewUpdateMenu(sceneChanger SceneChanger, createWorldScene func() interface{}, prefs *Preferences, quit func()) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		// Navigate menu with wrap-around
		numOptions := int(components.MainMenuExit) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.Selected = components.MainMenuOption((int(menu.Selected) - 1 + numOptions) % numOptions)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.Selected = components.MainMenuOption((int(menu.Selected) + 1) % numOptions)
		}

		if menu.Selected == components.MainMenuVolume {
			delta := 0
			if GetAction(input, cfg.ActionMenuLeft).JustPressed {
				delta--
			}
			if GetAction(input, cfg.ActionMenuRight).JustPressed {
				delta++
			}
			if delta != 0 && prefs != nil {
				prefs.StepVolume(delta)
				// Preview the new level
				PlaySFX(e, cfg.SoundShoot)
			}
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch menu.Selected {
			case components.MainMenuStart:
				sceneChanger.ChangeScene(createWorldScene())
			case components.MainMenuMute:
				if prefs != nil {
					prefs.ToggleMute()
					PlaySFX(e, cfg.SoundShoot)
				}
			case components.MainMenuExit:
				quit()
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			quit()
		}
	}
}

// NewDrawMenu creates the main menu renderer
func NewDrawMenu(prefs *Preferences) ecs.Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		menu := GetOrCreateMenu(e)

		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())

		vector.FillRect(
			screen,
			0, 0,
			float32(width), float32(height),
			cfg.Menu.BackgroundColor,
			false,
		)

		titleFont := fonts.Title.Get()
		titleWidth := len(cfg.Menu.Title) * 18 // Approximate width for the title font
		text.Draw(screen, cfg.Menu.Title, titleFont, int((width-float64(titleWidth))/2), int(height/3), cfg.Menu.TitleColor)

		menuFont := fonts.Bold.Get()
		startY := height / 2
		for i := range cfg.Menu.Options {
			option := components.MainMenuOption(i)
			textColor := cfg.DarkBlue
			if option == menu.Selected {
				textColor = cfg.LightBlue
			}

			label := getOptionLabel(option, prefs)
			textWidth := len(label) * 9
			x := int((width - float64(textWidth)) / 2)
			y := int(startY + float64(i)*cfg.Menu.OptionSpacing)
			text.Draw(screen, label, menuFont, x, y, textColor)
		}

		input := getOrCreateInput(e)
		hint := getMenuHint(input.LastInputMethod)
		hintWidth := len(hint) * 6
		text.Draw(screen, hint, fonts.Small.Get(), int((width-float64(hintWidth))/2), int(height)-12, cfg.DarkBlue)
	}
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select"
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption, prefs *Preferences) string {
	label := cfg.Menu.Options[option]
	if prefs == nil {
		return label
	}
	switch option {
	case components.MainMenuVolume:
		return fmt.Sprintf("< %s %d%% >", label, int(cfg.Settings.VolumeSteps[prefs.VolumeIndex]*100))
	case components.MainMenuMute:
		if prefs.Muted {
			return label + ": On"
		}
		return label + ": Off"
	}
	return label
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			Selected: components.MainMenuStart,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}

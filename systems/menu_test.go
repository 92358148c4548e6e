package systems

import (
	"testing"

	"github.com/automoto/laserdefender/components"
	cfg "github.com/automoto/laserdefender/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

type recordingChanger struct {
	scenes []interface{}
}

func (c *recordingChanger) ChangeScene(scene interface{}) {
	c.scenes = append(c.scenes, scene)
}

func newMenuSystem(prefs *Preferences) (ecs.System, *recordingChanger, *int) {
	changer := &recordingChanger{}
	quits := 0
	system := NewUpdateMenu(changer, func() interface{} { return "world" }, prefs, func() { quits++ })
	return system, changer, &quits
}

func TestUpdateMenu_StartChangesScene(t *testing.T) {
	e, _ := newTestECS(t)
	update, changer, quits := newMenuSystem(nil)

	pressAction(e, cfg.ActionMenuSelect)
	update(e)

	require.Len(t, changer.scenes, 1)
	assert.Equal(t, "world", changer.scenes[0])
	assert.Zero(t, *quits)
}

func TestUpdateMenu_VolumePreviewsShootingSound(t *testing.T) {
	e, backend := newTestECS(t)
	mixer := &recordingMixer{}
	prefs := NewPreferences(mixer, nil)
	update, _, _ := newMenuSystem(prefs)
	GetOrCreateMenu(e).Selected = components.MainMenuVolume

	pressAction(e, cfg.ActionMenuRight)
	update(e)
	UpdateAudio(e)

	assert.Equal(t, cfg.Settings.DefaultVolumeIndex+1, prefs.VolumeIndex)
	assert.Equal(t, 1.0, mixer.last())
	require.Len(t, backend.requests, 1)
	assert.Same(t, shotClip, backend.requests[0].Clip)

	// Held, not pressed again
	pressAction(e, cfg.ActionMenuRight)
	update(e)
	assert.Equal(t, cfg.Settings.DefaultVolumeIndex+1, prefs.VolumeIndex)
}

func TestUpdateMenu_MuteToggles(t *testing.T) {
	e, _ := newTestECS(t)
	prefs := NewPreferences(nil, nil)
	update, _, _ := newMenuSystem(prefs)
	GetOrCreateMenu(e).Selected = components.MainMenuMute

	pressAction(e, cfg.ActionMenuSelect)
	update(e)
	assert.True(t, prefs.Muted)

	releaseAll(e)
	update(e)
	pressAction(e, cfg.ActionMenuSelect)
	update(e)
	assert.False(t, prefs.Muted)
}

func TestUpdateMenu_ExitAndBackQuit(t *testing.T) {
	e, _ := newTestECS(t)
	update, changer, quits := newMenuSystem(nil)

	GetOrCreateMenu(e).Selected = components.MainMenuExit
	pressAction(e, cfg.ActionMenuSelect)
	update(e)
	assert.Equal(t, 1, *quits)

	releaseAll(e)
	pressAction(e, cfg.ActionMenuBack)
	update(e)
	assert.Equal(t, 2, *quits)
	assert.Empty(t, changer.scenes)
}

func TestUpdateMenu_NavigationWraps(t *testing.T) {
	e, _ := newTestECS(t)
	update, _, _ := newMenuSystem(nil)

	pressAction(e, cfg.ActionMenuUp)
	update(e)
	assert.Equal(t, components.MainMenuExit, GetOrCreateMenu(e).Selected)

	releaseAll(e)
	pressAction(e, cfg.ActionMenuDown)
	update(e)
	assert.Equal(t, components.MainMenuStart, GetOrCreateMenu(e).Selected)
}

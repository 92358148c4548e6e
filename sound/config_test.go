package sound

import (
	stdmath "math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	c, err := ParseConfig([]byte(`
shooting:
  clip: audio/sfx/shot.wav
  volume: 0.8
damage:
  clip: audio/sfx/hit.wav
`))
	require.NoError(t, err)

	assert.Equal(t, "audio/sfx/shot.wav", c.Shooting.Clip)
	assert.InDelta(t, 0.8, c.Shooting.Level(), 1e-9)
	assert.Equal(t, "audio/sfx/hit.wav", c.Damage.Clip)
	assert.Equal(t, DefaultVolume, c.Damage.Level())
}

func TestParseConfig_ClampsVolumes(t *testing.T) {
	c, err := ParseConfig([]byte(`
shooting:
  clip: shot.wav
  volume: 1.5
damage:
  clip: hit.wav
  volume: -0.2
`))
	require.NoError(t, err)

	assert.Equal(t, 1.0, c.Shooting.Level())
	assert.Equal(t, 0.0, c.Damage.Level())
}

func TestParseConfig_EmptyLeavesClipsUnset(t *testing.T) {
	c, err := ParseConfig(nil)
	require.NoError(t, err)

	assert.Empty(t, c.Shooting.Clip)
	assert.Empty(t, c.Damage.Clip)
	assert.Equal(t, DefaultVolume, c.Shooting.Level())
}

func TestParseConfig_InvalidYAML(t *testing.T) {
	_, err := ParseConfig([]byte("shooting: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing sfx config")
}

func TestLoadConfigFile_Missing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestClampVolume_NaN(t *testing.T) {
	assert.Equal(t, DefaultVolume, ClampVolume(stdmath.NaN()))
	assert.Equal(t, MaxVolume, ClampVolume(stdmath.Inf(1)))
	assert.Equal(t, MinVolume, ClampVolume(stdmath.Inf(-1)))
}

func TestWatchConfig_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sfx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shooting:\n  clip: a.wav\n"), 0o644))

	w, err := WatchConfig(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(path, []byte("shooting:\n  clip: b.wav\n  volume: 0.4\n"), 0o644))

	select {
	case c := <-w.Configs:
		assert.Equal(t, "b.wav", c.Shooting.Clip)
		assert.InDelta(t, 0.4, c.Shooting.Level(), 1e-9)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatchConfig_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sfx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	w, err := WatchConfig(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("{}"), 0o644))

	select {
	case c := <-w.Configs:
		t.Fatalf("unexpected reload: %+v", c)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchConfig_CloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	w, err := WatchConfig(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, open := <-w.Configs
	assert.False(t, open)
}

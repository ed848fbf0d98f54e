package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Inline)
	assert.Equal(t, DefaultThemeConfig(), cfg.Theme)
}

func TestDefaultThemeConfig_AllFieldsSet(t *testing.T) {
	theme := DefaultThemeConfig()

	assert.NotEmpty(t, theme.ColorFocus)
	assert.NotEmpty(t, theme.ColorBreak)
	assert.NotEmpty(t, theme.ColorPaused)
	assert.NotEmpty(t, theme.FocusGradientStart)
	assert.NotEmpty(t, theme.FocusGradientEnd)
	assert.NotEmpty(t, theme.BreakGradientStart)
	assert.NotEmpty(t, theme.BreakGradientEnd)
	assert.NotEmpty(t, theme.IconApp)
}

func TestLoad_CreatesDefaultConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultThemeConfig(), cfg.Theme)

	path, err := GetConfigPath()
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err, "first Load should write a default config file")
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Inline = true
	cfg.Theme.ColorFocus = "#FF0000"
	require.NoError(t, Save(cfg))

	loaded, err := Load()
	require.NoError(t, err)
	assert.True(t, loaded.Inline)
	assert.Equal(t, "#FF0000", loaded.Theme.ColorFocus)
	assert.Equal(t, DefaultThemeConfig().ColorBreak, loaded.Theme.ColorBreak)
}

func TestGetConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".pomo", "config.toml"), path)
}

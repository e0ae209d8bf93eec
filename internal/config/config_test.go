package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, cfg.Storage.Path)
	assert.Equal(t, DefaultDateFormat, cfg.Board.DateFormat)
	assert.False(t, cfg.Board.RelativeDates)
	assert.Equal(t, "3s", cfg.Notify.Duration)
	assert.Equal(t, "light", cfg.Theme.Default)
	assert.True(t, cfg.TUI.ShowHelp)
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Notify.Duration, cfg.Notify.Duration)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[storage]
path = "/tmp/my-board.json"

[board]
date_format = "2006-01-02 15:04"
relative_dates = true

[notify]
duration = "5s"

[theme]
default = "dark"

[tui]
show_help = false
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/my-board.json", cfg.Storage.Path)
	assert.Equal(t, "2006-01-02 15:04", cfg.Board.DateFormat)
	assert.True(t, cfg.Board.RelativeDates)
	assert.Equal(t, "5s", cfg.Notify.Duration)
	assert.Equal(t, "dark", cfg.Theme.Default)
	assert.False(t, cfg.TUI.ShowHelp)
}

func TestLoadConfig_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[notify]
duration = "10s"
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// Changed field
	assert.Equal(t, "10s", cfg.Notify.Duration)

	// Unchanged fields should have defaults
	assert.Equal(t, DefaultDateFormat, cfg.Board.DateFormat)
	assert.True(t, cfg.TUI.ShowHelp)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `this is not valid toml [`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_Save(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir", "config.toml")

	cfg := DefaultConfig()
	cfg.Notify.Duration = "7s"

	err := cfg.Save(path)
	require.NoError(t, err)

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7s", loaded.Notify.Duration)
}

func TestConfig_NotifyDuration(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 3*time.Second, cfg.NotifyDuration())

	cfg.Notify.Duration = "500ms"
	assert.Equal(t, 500*time.Millisecond, cfg.NotifyDuration())

	// Bad or non-positive values fall back to the default
	cfg.Notify.Duration = "soon"
	assert.Equal(t, 3*time.Second, cfg.NotifyDuration())

	cfg.Notify.Duration = "-1s"
	assert.Equal(t, 3*time.Second, cfg.NotifyDuration())
}

func TestConfig_BoardPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")

	cfg := DefaultConfig()
	assert.Equal(t, "/custom/data/postboard/board.json", cfg.BoardPath())

	cfg.Storage.Path = "/elsewhere/board.json"
	assert.Equal(t, "/elsewhere/board.json", cfg.BoardPath())
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/postboard/config.toml", ConfigPath())
}

func TestDataPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	assert.Equal(t, "/custom/data/postboard", DataPath())
}

func TestEnsureDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	err := EnsureDataDir()
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "postboard"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

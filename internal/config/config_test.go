package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"FBROWSE_SHOW_HIDDEN", "FBROWSE_EDITOR", "FBROWSE_LOG_FILE", "FBROWSE_LOG_LEVEL", "FBROWSE_LOG_FORMAT"} {
		t.Setenv(key, "")
	}
}

func TestResolveDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := Resolve(Config{})
	require.NoError(t, err)

	wd, err := filepath.Abs(".")
	require.NoError(t, err)
	assert.Equal(t, wd, cfg.StartPath)
	assert.False(t, cfg.ShowHidden)
	assert.Empty(t, cfg.EditorCommand)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestResolveFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("FBROWSE_SHOW_HIDDEN", "true")
	t.Setenv("FBROWSE_EDITOR", "code --wait")
	t.Setenv("FBROWSE_LOG_FILE", "/tmp/fbrowse.log")
	t.Setenv("FBROWSE_LOG_LEVEL", "debug")
	t.Setenv("FBROWSE_LOG_FORMAT", "console")

	cfg, err := Resolve(Config{StartPath: "/srv"})
	require.NoError(t, err)

	assert.True(t, cfg.ShowHidden)
	assert.Equal(t, "code --wait", cfg.EditorCommand)
	assert.Equal(t, "/tmp/fbrowse.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestResolveFlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("FBROWSE_EDITOR", "nano")
	t.Setenv("FBROWSE_LOG_LEVEL", "debug")

	cfg, err := Resolve(Config{StartPath: "/srv", EditorCommand: "vim", LogLevel: "warn"})
	require.NoError(t, err)

	assert.Equal(t, "vim", cfg.EditorCommand)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestResolveCleansRelativePath(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := Resolve(Config{StartPath: "a/../b/./c"})
	require.NoError(t, err)

	wd, err := filepath.Abs(".")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "b", "c"), cfg.StartPath)
}

func TestResolveIgnoresInvalidBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("FBROWSE_SHOW_HIDDEN", "maybe")

	cfg, err := Resolve(Config{StartPath: "/srv"})
	require.NoError(t, err)
	assert.False(t, cfg.ShowHidden)
}

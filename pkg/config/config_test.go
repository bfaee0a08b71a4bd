package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/durafs/pkg/config"
)

func TestDefault(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Delete.Attempts)
	assert.Equal(t, 500, cfg.Delete.DelayMs)
	assert.True(t, cfg.Delete.RaiseOnExhaustion)
	assert.Equal(t, 3, cfg.Copy.Attempts)
	assert.Equal(t, 500, cfg.Disk.MinFreeMiB)
}

func TestDeletePolicy(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	policy := cfg.DeletePolicy()
	assert.Equal(t, 3, policy.Attempts)
	assert.Equal(t, 500*time.Millisecond, policy.Delay)
	assert.True(t, policy.RaiseOnExhaustion)
}

func TestMinFreeBytes(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	assert.Equal(t, uint64(500*1024*1024), cfg.MinFreeBytes())
}

func TestLoadWithUserOverride(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	xdg.Reload()

	dir := filepath.Join(configHome, "durafs")
	require.NoError(t, os.MkdirAll(dir, 0755))
	override := "[delete]\nattempts = 7\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.UserConfigFile), []byte(override), 0644))

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Delete.Attempts)
	// Untouched keys keep their defaults.
	assert.Equal(t, 500, cfg.Delete.DelayMs)
	assert.Equal(t, 3, cfg.Copy.Attempts)
}

func TestLoadWithoutUserFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Delete.Attempts)
}

func TestGenerate(t *testing.T) {
	out, err := config.Generate()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# durafs configuration."))
	assert.Contains(t, out, "[delete]")
	assert.Contains(t, out, "[copy]")
	assert.Contains(t, out, "[disk]")
	assert.Contains(t, out, "min_free_mib = 500")
}

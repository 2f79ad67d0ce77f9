package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "daylight.kdl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.kdl"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Listen)
	assert.Equal(t, 512, cfg.Workers.Threads)
	assert.Equal(t, uint64(30_000), cfg.Timeouts.DefaultPerFileMs)
	assert.Equal(t, uint64(60_000), cfg.Timeouts.MaxPerFileMs)
}

func TestLoadKDL(t *testing.T) {
	path := writeConfig(t, `
listen "0.0.0.0:9999"
log_level "debug"
workers {
    threads 64
}
timeouts {
    default_per_file_ms 5000
    max_per_file_ms 20000
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9999", cfg.Listen)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 64, cfg.Workers.Threads)
	assert.Equal(t, uint64(5000), cfg.Timeouts.DefaultPerFileMs)
	assert.Equal(t, uint64(20000), cfg.Timeouts.MaxPerFileMs)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
timeouts {
    default_per_file_ms 5000
    max_per_file_ms 20000
}
`)
	t.Setenv("DAYLIGHT_DEFAULT_PER_FILE_TIMEOUT_MS", "1000")
	t.Setenv("DAYLIGHT_WORKER_THREADS", "16")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), cfg.Timeouts.DefaultPerFileMs)
	assert.Equal(t, 16, cfg.Workers.Threads)
	assert.Equal(t, uint64(20000), cfg.Timeouts.MaxPerFileMs)
}

func TestValidateRejectsInvertedTimeouts(t *testing.T) {
	path := writeConfig(t, `
timeouts {
    default_per_file_ms 90000
    max_per_file_ms 20000
}
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadBadKDL(t *testing.T) {
	path := writeConfig(t, `listen "unterminated`)
	_, err := Load(path)
	assert.Error(t, err)
}

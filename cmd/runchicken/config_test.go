package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, Config{Scale: 1, Width: 1000, Height: 500}, cfg)
	w, h := cfg.WindowSize()
	assert.Equal(t, 1000, w)
	assert.Equal(t, 500, h)
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := writeEnv(t, "RUNCHICKEN_SEED=42\nRUNCHICKEN_DEBUG=true\nRUNCHICKEN_SCALE=2\n")
	t.Setenv(envScale, "1.5")

	cfg, err := loadConfig(nil, path)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Seed, "from the file")
	assert.True(t, cfg.Debug, "from the file")
	assert.Equal(t, 1.5, cfg.Scale, "the environment wins over the file")

	cfg, err = loadConfig([]string{"-seed", "7", "-debug=false", "-width", "640", "-height", "320"}, path)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed, "flags win")
	assert.False(t, cfg.Debug)
	w, h := cfg.WindowSize()
	assert.Equal(t, 960, w)
	assert.Equal(t, 480, h)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		env  string
		args []string
	}{
		{"bad seed", "RUNCHICKEN_SEED=chicken\n", nil},
		{"bad debug", "RUNCHICKEN_DEBUG=maybe\n", nil},
		{"bad scale", "RUNCHICKEN_SCALE=big\n", nil},
		{"non-positive scale", "", []string{"-scale", "0"}},
		{"non-positive width", "", []string{"-width", "-5"}},
		{"unknown flag", "", []string{"-fox"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(tt.args, writeEnv(t, tt.env))
			assert.Error(t, err)
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 5*time.Second, c.EvalTimeout)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 64, c.MeshCells)
}

func TestDecode(t *testing.T) {
	c, err := Decode(strings.NewReader("eval_timeout: 250ms\nlog_level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, c.EvalTimeout)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 64, c.MeshCells, "missing keys keep defaults")
}

func TestDecodeEmpty(t *testing.T) {
	c, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "eval_timout: 1s\n"},
		{"bad duration", "eval_timeout: soon\n"},
		{"negative timeout", "eval_timeout: -1s\n"},
		{"too few cells", "mesh_cells: 1\n"},
		{"bad level", "log_level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestValidateWrapsErrInvalid(t *testing.T) {
	c := Default()
	c.MeshCells = 0
	assert.ErrorIs(t, c.Validate(), ErrInvalid)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spatial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mesh_cells: 32\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 32, c.MeshCells)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLogger(t *testing.T) {
	c := Default()
	c.LogLevel = "warn"
	log, err := c.Logger()
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel), "debug should be disabled")
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel), "warn should be enabled")
}

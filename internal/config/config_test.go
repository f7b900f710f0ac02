package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, Playground{StartX: 0, StartY: 0, LengthX: 6, LengthY: 6}, cfg.Playground)
	assert.Equal(t, "#FFFF00", cfg.UI.RobotColor)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
playground:
  length_x: 10
  length_y: 4
`))
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Playground.StartX)
	assert.Equal(t, 10, cfg.Playground.LengthX)
	assert.Equal(t, 4, cfg.Playground.LengthY)
	assert.Equal(t, "#FFFF00", cfg.UI.RobotColor, "unset fields keep defaults")
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse([]byte("  \n"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero width", "playground:\n  length_x: 0\n"},
		{"negative origin", "playground:\n  start_y: -2\n"},
		{"fractional length", "playground:\n  length_y: 2.5\n"},
		{"unknown field", "playground:\n  depth: 3\n"},
		{"bad colour", "ui:\n  robot_color: yellow\n"},
		{"huge width", "playground:\n  length_x: 1001\n"},
		{"overflowing height", "playground:\n  length_y: 9223372036854775807\n"},
		{"far origin", "playground:\n  start_x: 5000\n"},
		{"not yaml", "playground: [1, 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParseAcceptsLargestPlayground(t *testing.T) {
	cfg, err := Parse([]byte("playground:\n  start_x: 1000\n  start_y: 1000\n  length_x: 1000\n  length_y: 1000\n"))
	require.NoError(t, err)
	assert.Equal(t, Playground{StartX: 1000, StartY: 1000, LengthX: 1000, LengthY: 1000}, cfg.Playground)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "robot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("playground:\n  start_x: 2\n  start_y: 3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Playground.StartX)
	assert.Equal(t, 3, cfg.Playground.StartY)
	assert.Equal(t, 6, cfg.Playground.LengthX)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

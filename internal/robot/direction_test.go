package robot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input string
		want  Direction
		ok    bool
	}{
		{"NORTH", North, true},
		{"east", East, true},
		{"SoUtH", South, true},
		{"west", West, true},
		{"up", 0, false},
		{"", 0, false},
		{"NORTH ", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseDirection(tt.input)
		assert.Equal(t, tt.ok, ok, "ParseDirection(%q)", tt.input)
		if tt.ok {
			assert.Equal(t, tt.want, got, "ParseDirection(%q)", tt.input)
		}
	}
}

func TestDirectionTurns(t *testing.T) {
	assert.Equal(t, East, North.Right())
	assert.Equal(t, North, West.Right())
	assert.Equal(t, West, North.Left())
	assert.Equal(t, South, West.Left())
	assert.Equal(t, "UNKNOWN", Direction(9).String())
	assert.Equal(t, "NORTH, EAST, SOUTH, WEST", DirectionNames())
}

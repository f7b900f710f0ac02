package robot

import (
	"math"
	"strconv"
	"strings"
)

// RawCommand is an untrusted PLACE request.
// X and Y may be any integer kind, an integral float, or a decimal string.
// Facing may be nil (absent), a string, or anything else.
type RawCommand struct {
	X, Y   any
	Facing any
}

// ParseRawCommand validates a RawCommand and returns the position it names.
// Checks run in a fixed order and the first failure is returned.
// The playground is not consulted here.
func ParseRawCommand(raw RawCommand) (Position, error) {
	if raw.Facing == nil {
		return Position{}, ErrMissingFacing
	}
	facing, ok := raw.Facing.(string)
	if !ok {
		return Position{}, ErrFacingNotString
	}
	if facing == "" {
		return Position{}, ErrMissingFacing
	}

	x, okX := toInt(raw.X)
	y, okY := toInt(raw.Y)
	if !okX || !okY {
		return Position{}, ErrNonIntegerCoordinates
	}

	if x < 0 || y < 0 {
		return Position{}, ErrNegativeCoordinates
	}

	dir, ok := ParseDirection(facing)
	if !ok {
		return Position{}, ErrInvalidDirection
	}

	return Position{X: x, Y: y, Facing: dir}, nil
}

// toInt coerces a coordinate. Strings must be an exact base-10 integer.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f >= math.MaxInt || f < math.MinInt {
		return 0, false
	}
	return int(f), true
}

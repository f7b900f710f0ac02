package robot

import "strings"

// Direction is one of the four cardinal directions, in clockwise order.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every direction in rotation order.
var Directions = []Direction{North, East, South, West}

// String returns the canonical upper-case name.
func (d Direction) String() string {
	switch d {
	case North:
		return "NORTH"
	case East:
		return "EAST"
	case South:
		return "SOUTH"
	case West:
		return "WEST"
	default:
		return "UNKNOWN"
	}
}

// ParseDirection matches a direction name case-insensitively.
func ParseDirection(s string) (Direction, bool) {
	name := strings.ToUpper(s)
	for _, d := range Directions {
		if d.String() == name {
			return d, true
		}
	}
	return 0, false
}

// Right returns the direction one quarter turn clockwise.
func (d Direction) Right() Direction {
	return Direction((int(d) + 1) % len(Directions))
}

// Left returns the direction one quarter turn counter-clockwise.
func (d Direction) Left() Direction {
	return Direction((int(d) + len(Directions) - 1) % len(Directions))
}

// Delta returns the unit step for the direction. North is towards smaller y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// DirectionNames returns the canonical names joined for display.
func DirectionNames() string {
	names := make([]string, len(Directions))
	for i, d := range Directions {
		names[i] = d.String()
	}
	return strings.Join(names, ", ")
}

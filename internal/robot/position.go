package robot

import "fmt"

// Position is a placed robot's location and heading.
type Position struct {
	X, Y   int
	Facing Direction
}

// Step returns the neighbouring position in the facing direction.
func (p Position) Step() Position {
	dx, dy := p.Facing.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy, Facing: p.Facing}
}

// String returns "x,y,FACING".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d,%s", p.X, p.Y, p.Facing)
}

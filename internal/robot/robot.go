// Package robot implements the toy robot state machine.
package robot

// Bounds reports whether a coordinate is on the playground.
type Bounds interface {
	Contains(x, y int) bool
}

// Robot is a single robot on a single playground.
// It starts unplaced; the first successful Place sets placed for good.
type Robot struct {
	bounds   Bounds
	position Position
	placed   bool
}

// New creates an unplaced robot confined to bounds.
func New(bounds Bounds) *Robot {
	return &Robot{bounds: bounds}
}

// Place validates raw and puts the robot there, replacing any previous position.
// On failure the robot is unchanged.
func (r *Robot) Place(raw RawCommand) (Position, error) {
	pos, err := ParseRawCommand(raw)
	if err != nil {
		return r.position, err
	}
	if !r.bounds.Contains(pos.X, pos.Y) {
		return r.position, ErrOutOfBounds
	}

	r.position = pos
	r.placed = true
	return pos, nil
}

// Move advances one square in the facing direction.
// A step that would leave the playground is refused and nothing changes.
func (r *Robot) Move() (Position, error) {
	if !r.placed {
		return Position{}, ErrNotYetPlaced
	}

	next := r.position.Step()
	if !r.bounds.Contains(next.X, next.Y) {
		return r.position, ErrWouldLeaveGrid
	}

	r.position = next
	return next, nil
}

// Right turns the robot a quarter turn clockwise.
func (r *Robot) Right() (Position, error) {
	if !r.placed {
		return Position{}, ErrNotYetPlaced
	}
	r.position.Facing = r.position.Facing.Right()
	return r.position, nil
}

// Left turns the robot a quarter turn counter-clockwise.
func (r *Robot) Left() (Position, error) {
	if !r.placed {
		return Position{}, ErrNotYetPlaced
	}
	r.position.Facing = r.position.Facing.Left()
	return r.position, nil
}

// Report describes the current state.
func (r *Robot) Report() Report {
	return Report{Placed: r.placed, Position: r.position}
}

// Position returns the current position and whether the robot has been placed.
func (r *Robot) Position() (Position, bool) {
	return r.position, r.placed
}

// Placed returns true once the robot has been placed successfully.
func (r *Robot) Placed() bool {
	return r.placed
}

package robot

// Family groups errors by cause.
type Family int

const (
	// FamilyInput covers malformed PLACE arguments.
	FamilyInput Family = iota
	// FamilyRejection covers well-formed requests refused by the playground or state.
	FamilyRejection
)

// String returns a short family name.
func (f Family) String() string {
	switch f {
	case FamilyInput:
		return "input"
	case FamilyRejection:
		return "rejection"
	default:
		return "unknown"
	}
}

// Error is a robot command failure. Every failure is one of the sentinel
// values below, so callers compare with errors.Is.
type Error struct {
	Kind   string // Stable identifier (e.g., "out_of_bounds")
	Family Family
	Key    string // Message catalog key
}

// Error returns "robot: " followed by the kind.
func (e *Error) Error() string {
	return "robot: " + e.Kind
}

var (
	// ErrMissingFacing means no facing was given.
	ErrMissingFacing = &Error{Kind: "missing_facing", Family: FamilyInput, Key: "noFace"}
	// ErrFacingNotString means the facing was present but not text.
	ErrFacingNotString = &Error{Kind: "facing_not_string", Family: FamilyInput, Key: "faceNotString"}
	// ErrNonIntegerCoordinates means X or Y is not a whole number.
	ErrNonIntegerCoordinates = &Error{Kind: "non_integer_coordinates", Family: FamilyInput, Key: "nonIntCoordinates"}
	// ErrNegativeCoordinates means X or Y is below zero.
	ErrNegativeCoordinates = &Error{Kind: "negative_coordinates", Family: FamilyInput, Key: "noNegativeCoordinates"}
	// ErrInvalidDirection means the facing names no known direction.
	ErrInvalidDirection = &Error{Kind: "invalid_direction", Family: FamilyInput, Key: "wrondDirection"}

	// ErrOutOfBounds rejects a placement outside the playground.
	ErrOutOfBounds = &Error{Kind: "out_of_bounds", Family: FamilyRejection, Key: "wrongPlace"}
	// ErrWouldLeaveGrid rejects a move that would step off the playground.
	ErrWouldLeaveGrid = &Error{Kind: "would_leave_grid", Family: FamilyRejection, Key: "wrongMove"}
	// ErrNotYetPlaced rejects a command sent before the first placement.
	ErrNotYetPlaced = &Error{Kind: "not_yet_placed", Family: FamilyRejection, Key: "noInitialCommand"}
)

package robot

const (
	// KeyPlaceFirst is reported before the first placement.
	KeyPlaceFirst = "placeRobotFirst"
	// KeyPosition carries x, y and f.
	KeyPosition = "robotPosition"
)

// Report is the outcome of a REPORT command.
type Report struct {
	Placed   bool
	Position Position
}

// Key returns the message catalog key for the report.
func (r Report) Key() string {
	if !r.Placed {
		return KeyPlaceFirst
	}
	return KeyPosition
}

// Params returns the named template parameters. It is nil when unplaced.
func (r Report) Params() map[string]any {
	if !r.Placed {
		return nil
	}
	return map[string]any{
		"x": r.Position.X,
		"y": r.Position.Y,
		"f": r.Position.Facing.String(),
	}
}

// Package app drives a robot session from text commands.
package app

// Mode is how commands reach the session.
type Mode int

const (
	// ModeInteractive reads commands typed on stdin.
	ModeInteractive Mode = iota
	// ModeFile replays commands from a file, echoing each one.
	ModeFile
	// ModeTUI reads commands from the terminal UI input line.
	ModeTUI
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeInteractive:
		return "interactive"
	case ModeFile:
		return "file"
	case ModeTUI:
		return "tui"
	default:
		return "unknown"
	}
}

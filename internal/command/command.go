// Package command turns raw input lines into robot commands.
package command

import (
	"errors"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/samdwyer/toyrobot/internal/robot"
)

// Kind identifies a command.
type Kind int

const (
	KindPlace  Kind = iota // PLACE X,Y,F
	KindMove               // MOVE one step forward
	KindLeft               // LEFT quarter turn
	KindRight              // RIGHT quarter turn
	KindReport             // REPORT the position
	KindQuit               // Q, QUIT or EXIT
)

// String returns the command keyword.
func (k Kind) String() string {
	switch k {
	case KindPlace:
		return "PLACE"
	case KindMove:
		return "MOVE"
	case KindLeft:
		return "LEFT"
	case KindRight:
		return "RIGHT"
	case KindReport:
		return "REPORT"
	case KindQuit:
		return "QUIT"
	default:
		return "UNKNOWN"
	}
}

// Command is a parsed line. Raw is only set for KindPlace.
type Command struct {
	Kind Kind
	Raw  robot.RawCommand
}

var (
	// ErrEmpty is returned for blank lines.
	ErrEmpty = errors.New("empty command")
	// ErrUnknown is returned for anything that is not a command.
	ErrUnknown = errors.New("unknown command")
)

// Line is the grammar for a single input line.
// Keywords are case insensitive; PLACE arguments may be separated by commas or spaces.
type Line struct {
	Place  *Place `parser:"  @@"`
	Move   bool   `parser:"| @'move'"`
	Left   bool   `parser:"| @'left'"`
	Right  bool   `parser:"| @'right'"`
	Report bool   `parser:"| @'report'"`
	Quit   bool   `parser:"| @('q' | 'quit' | 'exit')"`
}

// Place holds the untyped PLACE arguments; the robot validates them.
type Place struct {
	X string `parser:"'place' @Word"`
	Y string `parser:"','? @Word"`
	F string `parser:"','? @Word"`
}

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Word", Pattern: `[^\s,]+`},
})

var parser = participle.MustBuild[Line](
	participle.Lexer(lineLexer),
	participle.Elide("Whitespace"),
	participle.CaseInsensitive("Word"),
)

// Parse parses one line of input.
func Parse(input string) (Command, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Command{}, ErrEmpty
	}

	line, err := parser.ParseString("", input)
	if err != nil {
		return Command{}, ErrUnknown
	}

	switch {
	case line.Place != nil:
		return Command{
			Kind: KindPlace,
			Raw:  robot.RawCommand{X: line.Place.X, Y: line.Place.Y, Facing: line.Place.F},
		}, nil
	case line.Move:
		return Command{Kind: KindMove}, nil
	case line.Left:
		return Command{Kind: KindLeft}, nil
	case line.Right:
		return Command{Kind: KindRight}, nil
	case line.Report:
		return Command{Kind: KindReport}, nil
	case line.Quit:
		return Command{Kind: KindQuit}, nil
	}
	return Command{}, ErrUnknown
}

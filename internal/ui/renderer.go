package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/toyrobot/internal/robot"
	"github.com/samdwyer/toyrobot/internal/world"
)

const (
	gridTop  = 2 // Rows reserved for the title
	cellSize = 2 // Columns per playground cell

	title = "Toy Robot - type a command, Enter to run, Esc to quit"
)

// View is everything the renderer needs for one frame.
type View struct {
	Playground *world.Playground
	Position   robot.Position
	Placed     bool
	Message    string
	Input      string
}

// Renderer draws the playground, the robot and the input line.
type Renderer struct {
	screen     *Screen
	robotStyle tcell.Style
}

// NewRenderer creates a new renderer for the given screen.
// robotColor is a hex colour; an invalid value falls back to yellow.
func NewRenderer(screen *Screen, robotColor string) *Renderer {
	color, err := ParseHexColor(robotColor)
	if err != nil {
		color = tcell.ColorYellow
	}
	return &Renderer{
		screen:     screen,
		robotStyle: tcell.StyleDefault.Foreground(color).Bold(true),
	}
}

// Glyph returns the arrow drawn for a facing.
func Glyph(d robot.Direction) rune {
	switch d {
	case robot.North:
		return '^'
	case robot.East:
		return '>'
	case robot.South:
		return 'v'
	case robot.West:
		return '<'
	default:
		return '?'
	}
}

// CellAt returns the screen coordinates of a playground square.
func CellAt(p *world.Playground, x, y int) (col, row int) {
	minX, minY, _, _ := p.Bounds()
	return (x - minX) * cellSize, gridTop + (y - minY)
}

// Render draws one frame.
func (r *Renderer) Render(v View) {
	r.screen.frame(func() {
		r.screen.Text(0, 0, title, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

		floor := tcell.StyleDefault.Foreground(tcell.ColorGray)
		minX, minY, maxX, maxY := v.Playground.Bounds()
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				col, row := CellAt(v.Playground, x, y)
				r.screen.Put(col, row, '.', floor)
			}
		}

		if v.Placed {
			col, row := CellAt(v.Playground, v.Position.X, v.Position.Y)
			r.screen.Put(col, row, Glyph(v.Position.Facing), r.robotStyle)
		}

		base := gridTop + v.Playground.Height() + 1
		r.screen.Text(0, base, v.Message, tcell.StyleDefault.Foreground(tcell.ColorWhite))
		r.screen.Text(0, base+1, "> "+v.Input, tcell.StyleDefault.Foreground(tcell.ColorGreen))
	})
}

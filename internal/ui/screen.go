// Package ui draws the playground in a terminal using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen is the terminal the robot is drawn on.
type Screen struct {
	term tcell.Screen
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	term, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return Wrap(term)
}

// Wrap initializes an existing tcell screen, such as a simulation screen in tests.
func Wrap(term tcell.Screen) (*Screen, error) {
	if err := term.Init(); err != nil {
		return nil, err
	}
	term.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	term.Clear()
	return &Screen{term: term}, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.term.Fini()
}

// PollEvent blocks for the next terminal event. It returns nil once the screen is closed.
func (s *Screen) PollEvent() tcell.Event {
	return s.term.PollEvent()
}

// Interrupt wakes a pending PollEvent with an *tcell.EventInterrupt.
func (s *Screen) Interrupt() error {
	return s.term.PostEvent(tcell.NewEventInterrupt(nil))
}

// Resized redraws everything after the terminal changed size.
func (s *Screen) Resized() {
	s.term.Sync()
}

// Put draws one rune. Cells off the screen are ignored by tcell.
func (s *Screen) Put(x, y int, r rune, style tcell.Style) {
	s.term.SetContent(x, y, r, nil, style)
}

// Text draws a single line starting at x, clipped at the right edge.
func (s *Screen) Text(x, y int, text string, style tcell.Style) {
	width, _ := s.term.Size()
	for _, ch := range text {
		if x >= width {
			return
		}
		s.term.SetContent(x, y, ch, nil, style)
		x++
	}
}

// frame clears the buffer, runs draw and shows the result.
func (s *Screen) frame(draw func()) {
	s.term.Clear()
	draw()
	s.term.Show()
}

package app

import (
	"context"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/toyrobot/internal/messages"
	"github.com/samdwyer/toyrobot/internal/ui"
)

// tuiState is the editable part of the terminal UI.
type tuiState struct {
	input   []rune
	message string
	running bool
}

// RunTUI runs the interactive terminal UI until Esc, Ctrl-C, a quit command
// or cancellation of ctx.
func (s *Session) RunTUI(ctx context.Context, screen *ui.Screen) error {
	s.mode = ModeTUI

	ctx, span := s.tracer.Start(ctx, "session.tui")
	defer span.End()

	renderer := ui.NewRenderer(screen, s.cfg.UI.RobotColor)
	st := &tuiState{
		message: s.oneLine(s.formatter.Format(messages.KeyWelcome, nil)),
		running: true,
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			// a full queue is drained before the next ctx check anyway
			_ = screen.Interrupt()
		case <-done:
		}
	}()

	for st.running {
		if err := ctx.Err(); err != nil {
			return err
		}
		renderer.Render(s.view(st))

		switch ev := screen.PollEvent().(type) {
		case nil:
			st.running = false
		case *tcell.EventKey:
			s.handleKeyEvent(ctx, st, ev)
		case *tcell.EventResize:
			screen.Resized()
		case *tcell.EventInterrupt:
			// loop back to the ctx check
		}
	}
	return nil
}

// view builds the frame for the current state.
func (s *Session) view(st *tuiState) ui.View {
	pos, placed := s.robot.Position()
	return ui.View{
		Playground: s.playground,
		Position:   pos,
		Placed:     placed,
		Message:    st.message,
		Input:      string(st.input),
	}
}

// handleKeyEvent processes keyboard input.
// Arrow keys are shortcuts for MOVE, LEFT and RIGHT.
func (s *Session) handleKeyEvent(ctx context.Context, st *tuiState, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		st.running = false

	case tcell.KeyEnter:
		line := string(st.input)
		st.input = st.input[:0]
		s.runLine(ctx, st, line)

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(st.input) > 0 {
			st.input = st.input[:len(st.input)-1]
		}

	case tcell.KeyUp:
		s.runLine(ctx, st, "MOVE")
	case tcell.KeyLeft:
		s.runLine(ctx, st, "LEFT")
	case tcell.KeyRight:
		s.runLine(ctx, st, "RIGHT")

	case tcell.KeyRune:
		st.input = append(st.input, ev.Rune())
	}
}

func (s *Session) runLine(ctx context.Context, st *tuiState, line string) {
	msg, quit := s.Execute(ctx, line)
	if quit {
		st.running = false
		return
	}
	st.message = s.oneLine(msg)
}

// oneLine flattens a multi-line message for the single message row.
func (s *Session) oneLine(msg string) string {
	return strings.ReplaceAll(msg, s.eol, " ")
}

package app

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/toyrobot/internal/command"
	"github.com/samdwyer/toyrobot/internal/config"
	"github.com/samdwyer/toyrobot/internal/messages"
	"github.com/samdwyer/toyrobot/internal/robot"
	"github.com/samdwyer/toyrobot/internal/telemetry"
	"github.com/samdwyer/toyrobot/internal/world"
)

const prompt = "> "

// Session owns one robot on one playground and turns command lines into replies.
type Session struct {
	ID string

	cfg        config.Config
	playground *world.Playground
	robot      *robot.Robot
	formatter  *messages.Formatter
	tracer     trace.Tracer
	mode       Mode

	out    io.Writer
	errOut io.Writer
	eol    string
}

// New creates a session. Replies go to out, fatal input problems to errOut.
func New(cfg config.Config, out, errOut io.Writer) *Session {
	playground := world.NewPlayground(cfg.Playground)
	eol := "\n"

	return &Session{
		ID:         uuid.NewString(),
		cfg:        cfg,
		playground: playground,
		robot:      robot.New(playground),
		formatter:  messages.New(eol),
		tracer:     telemetry.Tracer("app"),
		out:        out,
		errOut:     errOut,
		eol:        eol,
	}
}

// Robot returns the session's robot.
func (s *Session) Robot() *robot.Robot {
	return s.robot
}

// Formatter returns the session's message formatter.
func (s *Session) Formatter() *messages.Formatter {
	return s.formatter
}

// Execute runs one command line. It returns the text to show (possibly empty)
// and whether the line asked to quit.
func (s *Session) Execute(ctx context.Context, line string) (msg string, quit bool) {
	cmd, err := command.Parse(line)
	if errors.Is(err, command.ErrEmpty) {
		return "", false
	}

	_, span := s.tracer.Start(ctx, "robot.command")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("session.mode", s.mode.String()),
	)

	if err != nil {
		span.SetAttributes(attribute.String("command.result", "unknown_command"))
		return s.formatter.Format(messages.KeyUnknownCommand, nil), false
	}
	span.SetAttributes(attribute.String("command.kind", cmd.Kind.String()))

	if cmd.Kind == command.KindQuit {
		return "", true
	}

	msg, err = s.dispatch(cmd)

	var rerr *robot.Error
	if errors.As(err, &rerr) {
		span.SetAttributes(
			attribute.String("command.result", rerr.Kind),
			attribute.String("command.error_family", rerr.Family.String()),
		)
	} else {
		span.SetAttributes(attribute.String("command.result", "ok"))
	}
	if pos, placed := s.robot.Position(); placed {
		span.SetAttributes(
			attribute.Int("robot.x", pos.X),
			attribute.Int("robot.y", pos.Y),
			attribute.String("robot.facing", pos.Facing.String()),
		)
	}

	return msg, false
}

// dispatch applies a parsed command to the robot.
func (s *Session) dispatch(cmd command.Command) (string, error) {
	var err error

	switch cmd.Kind {
	case command.KindPlace:
		_, err = s.robot.Place(cmd.Raw)
	case command.KindMove:
		_, err = s.robot.Move()
	case command.KindLeft:
		_, err = s.robot.Left()
	case command.KindRight:
		_, err = s.robot.Right()
	case command.KindReport:
		return s.formatter.Report(s.robot.Report()), nil
	}

	if err != nil {
		return s.formatter.Error(err), err
	}
	return "", nil
}

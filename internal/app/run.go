package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samdwyer/toyrobot/internal/messages"
)

// ErrFileNotFound is returned by RunFile after the fileNotFound message
// has already been written.
var ErrFileNotFound = errors.New("commands file not found")

// Run reads command lines from in until EOF or a quit command.
// With echo set, each line is written back before its reply, so a replayed
// file reads like a typed session.
func (s *Session) Run(ctx context.Context, in io.Reader, echo bool) error {
	if echo {
		s.mode = ModeFile
	} else {
		s.mode = ModeInteractive
	}

	ctx, span := s.tracer.Start(ctx, "session.run")
	defer span.End()

	if err := s.write(s.formatter.Format(messages.KeyWelcome, nil), s.eol, prompt); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Text()
		if echo {
			if err := s.write(line, s.eol); err != nil {
				return err
			}
		}

		msg, quit := s.Execute(ctx, line)
		if quit {
			return s.write(s.eol)
		}
		if msg != "" {
			if err := s.write(msg, s.eol); err != nil {
				return err
			}
		}
		if err := s.write(prompt); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return s.write(s.eol)
}

// RunFile replays the commands in path.
// An unreadable file is reported to errOut and returned as an error.
func (s *Session) RunFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		msg := s.formatter.Format(messages.KeyFileNotFound, map[string]any{"fileName": path})
		_, _ = io.WriteString(s.errOut, msg+s.eol)
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	defer f.Close()

	return s.Run(ctx, f, true)
}

func (s *Session) write(parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(s.out, p); err != nil {
			return err
		}
	}
	return nil
}

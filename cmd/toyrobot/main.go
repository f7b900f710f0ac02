// Package main is the entry point for the toy robot.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/samdwyer/toyrobot/internal/app"
	"github.com/samdwyer/toyrobot/internal/config"
	"github.com/samdwyer/toyrobot/internal/telemetry"
	"github.com/samdwyer/toyrobot/internal/ui"
)

const envConfig = "TOYROBOT_CONFIG"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run returns the process exit code. Deferred cleanup has finished by the
// time it returns.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", log.LstdFlags)

	flags := flag.NewFlagSet("toyrobot", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "YAML config file (default $"+envConfig+")")
	useTUI := flags.Bool("tui", false, "run the terminal UI instead of the line prompt")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: toyrobot [-config file] [-tui] [commands-file]\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	// .env is optional; settings may come from the real environment
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Printf("Failed to load config: %v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if telemetry.Enabled(os.Getenv) {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	session := app.New(cfg, stdout, stderr)

	switch {
	case *useTUI:
		err = runTUI(ctx, session)
	case flags.NArg() > 0:
		err = session.RunFile(ctx, flags.Arg(0))
	default:
		err = session.Run(ctx, stdin, false)
	}

	switch {
	case err == nil, ctx.Err() != nil:
		return 0
	case errors.Is(err, app.ErrFileNotFound):
		// already reported by the session
		return 1
	default:
		logger.Printf("Session error: %v", err)
		return 1
	}
}

// loadConfig picks the flag, then the environment, then the defaults.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		path = os.Getenv(envConfig)
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func runTUI(ctx context.Context, session *app.Session) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	return session.RunTUI(ctx, screen)
}

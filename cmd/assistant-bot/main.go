// main is the entry point of the assistant bot.
//
// STARTUP SEQUENCE:
//  1. Load configuration (YAML file and/or environment)
//  2. Initialise the logger
//  3. Open the SQLite snapshot storage (in memory by default)
//  4. Run the interactive session on stdin/stdout until "close"/"exit"
//     or end of input, then save the address book back to storage
//
// RUNNING:
//
//	go run ./cmd/assistant-bot --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/assistant-bot
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/assistant-bot/internal/cli/session"
	"github.com/aanand-mishra/assistant-bot/internal/config"
	"github.com/aanand-mishra/assistant-bot/internal/contacts"
	"github.com/aanand-mishra/assistant-bot/internal/storage/sqlite"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "assistant-bot",
		Short: "Console contact book with birthday reminders",
		Long: `Keep contacts with phone numbers and birthdays, and see whose
birthday is coming up in the next seven days.

Commands inside the session:
  hello, add, change, phone, all, add-birthday, show-birthday,
  birthdays, delete, remove-phone, close, exit`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration YAML file (or set CONFIG_PATH)")

	return cmd
}

func run(cmd *cobra.Command, configPath string) error {
	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	output, closeOutput, err := logOutput(cfg.LogPath, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeOutput()

	log := setupLogger(cfg.Env, output)
	slog.SetDefault(log)

	log.Info("starting assistant-bot",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// ── 3. Initialise Storage ─────────────────────────────────────────────
	storage, err := sqlite.New(cfg)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		return err
	}
	defer storage.Close()

	log.Info("storage initialised",
		slog.String("path", cfg.StoragePath))

	// ── 4. Run the Session ────────────────────────────────────────────────
	book := contacts.NewAddressBook()
	s := session.New(book, storage, time.Now, cfg.Prompt)

	if err := s.Run(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		log.Error("session ended with an error",
			slog.String("error", err.Error()))
		return err
	}

	log.Info("session closed")
	return nil
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string, w io.Writer) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}

// logOutput resolves config.LogPath. The returned func closes the file,
// if one was opened.
func logOutput(path string, stderr io.Writer) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	switch path {
	case "":
		return io.Discard, noop, nil
	case "-":
		return stderr, noop, nil
	default:
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return f, f.Close, nil
	}
}

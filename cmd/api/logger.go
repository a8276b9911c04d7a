package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/chalklabs/tutorgate/internal/config"
	"github.com/chalklabs/tutorgate/internal/version"
)

func setupLogger(development bool) *slog.Logger {
	// Info level, text format; debug level in development
	level := slog.LevelInfo
	if development {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}

func printStartupBanner(cfg *config.Config) {
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "📚 Tutorgate %s - AI Reading Tutor Relay\n", version.Version)
	fmt.Fprintln(os.Stderr, "════════════════════════════════════════════════")
	fmt.Fprintf(os.Stderr, "Tutor API:  http://localhost%s/api/tutor\n", cfg.ServerPort)
	fmt.Fprintf(os.Stderr, "Health:     http://localhost%s/health\n", cfg.ServerPort)
	fmt.Fprintf(os.Stderr, "Stats API:  http://localhost%s/api/stats\n", cfg.ServerPort)
	fmt.Fprintf(os.Stderr, "Data:       %s\n", config.DataDir())
	fmt.Fprintln(os.Stderr, "════════════════════════════════════════════════")
	fmt.Fprintf(os.Stderr, "\n")
}

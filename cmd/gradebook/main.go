package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"console-tools/handler"
	"console-tools/internal/config"
	"console-tools/internal/report"
	"console-tools/internal/repository"
	"console-tools/internal/usecase"
)

func main() {
	// .env is optional; every setting has a default.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel.SlogLevel()})))

	book, err := usecase.NewGradeBook(repository.NewMemoryStore(cfg.GradeBookCapacity))
	if err != nil {
		slog.Error("failed to create grade book", "err", err)
		os.Exit(1)
	}

	writer, err := report.NewWriter(report.Format(cfg.GradeBookReportFormat))
	if err != nil {
		slog.Error("failed to create report writer", "err", err)
		os.Exit(1)
	}

	menu, err := handler.NewGradeBookMenu(book, writer, os.Stdin, os.Stdout)
	if err != nil {
		slog.Error("failed to create menu", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := menu.Run(ctx); err != nil {
		stop()
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		slog.Error("grade book failed", "err", err)
		os.Exit(1)
	}
}

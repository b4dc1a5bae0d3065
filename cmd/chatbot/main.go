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

	rnd := usecase.DefaultRandom()
	if cfg.ChatSeed != 0 {
		rnd = usecase.NewSeededRandom(cfg.ChatSeed)
	}

	responder, err := usecase.NewResponder(usecase.DefaultRules(cfg.ChatBotName), rnd)
	if err != nil {
		slog.Error("failed to create responder", "err", err)
		os.Exit(1)
	}

	session, err := handler.NewChatSession(responder, os.Stdin, os.Stdout, cfg.ChatBotName)
	if err != nil {
		slog.Error("failed to create chat session", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := session.Run(ctx); err != nil {
		stop()
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		slog.Error("chat session failed", "session_id", session.ID(), "err", err)
		os.Exit(1)
	}
}

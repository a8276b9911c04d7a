package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chalklabs/tutorgate/internal/app"
	"github.com/chalklabs/tutorgate/internal/config"
	"github.com/chalklabs/tutorgate/internal/provider/openai"
	"github.com/chalklabs/tutorgate/internal/storage"
	"github.com/chalklabs/tutorgate/internal/tokenizer"
	"github.com/chalklabs/tutorgate/internal/transport/http/handler"
	"github.com/dgraph-io/ristretto/v2"
)

func main() {
	cfg := config.Load()
	logger := setupLogger(cfg.IsDevelopment())

	if !cfg.OpenAIConfigured() {
		logger.Warn("OPENAI_API_KEY is not set; tutor requests will fail until it is")
	}

	if err := config.EnsureDataDir(); err != nil {
		logger.Error("failed to create data directory", "error", err)
		os.Exit(1)
	}
	if err := config.EnsureConfigFile(); err != nil {
		logger.Warn("failed to write default config file", "error", err)
	}

	store, err := storage.NewSQLiteStorage(config.DBPath())
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := syncStatsPassword(store, cfg); err != nil {
		logger.Error("failed to sync stats password", "error", err)
		os.Exit(1)
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, any]{
		NumCounters: 1e7,
		MaxCost:     1 << 30,
		BufferItems: 64,
	})
	if err != nil {
		logger.Error("failed to create cache", "error", err)
		os.Exit(1)
	}
	defer cache.Close()

	tok := tokenizer.New()
	prov := openai.New(cfg.OpenAIKey, cfg.OpenAIBaseURL)

	repo := handler.NewRepo(cfg, prov, store, tok, cache)
	router := app.NewRouter(repo, &app.RouterOptions{
		Logger:         logger,
		Storage:        store,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	srv := app.NewServer(cfg, router)

	printStartupBanner(cfg)
	logger.Info("server listening",
		"addr", cfg.ServerPort,
		"environment", cfg.Environment,
		"openai_configured", cfg.OpenAIConfigured(),
	)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}
}

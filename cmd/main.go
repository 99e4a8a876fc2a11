package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gistify/internal/article"
	"gistify/internal/config"
	"gistify/internal/metrics"
	"gistify/internal/server"
	"gistify/internal/summarizer"
	"gistify/internal/summarizer/providers"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	if err := run(log); err != nil {
		log.Error("Exiting with error",
			"error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// .env is optional; real environments set variables directly.
	if err := godotenv.Load(); err == nil {
		log.InfoContext(ctx, ".env file is loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	apiKey, err := cfg.APIKey()
	if err != nil {
		return err
	}

	provider, err := providers.New(cfg.Provider, providers.Config{
		APIKey:  apiKey,
		Model:   cfg.Model,
		Timeout: cfg.RequestTimeout,
	})
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "Summarizer is initialized",
		"provider", provider.Name())

	svc := summarizer.NewService(provider, log)
	fetcher := article.NewFetcher(cfg.RequestTimeout, log)
	m := metrics.New()

	ui, err := server.NewUI(cfg.DefaultTargetWords)
	if err != nil {
		return err
	}

	summarizeH := server.NewSummarizeHandler(svc, fetcher, m, cfg.DefaultTargetWords, log)

	gin.SetMode(gin.ReleaseMode)
	engine := server.Setup(summarizeH, ui, m, log)
	srv := server.New(cfg.Addr, engine, log)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()
	log.InfoContext(ctx, "Server is started",
		"addr", cfg.Addr,
		"provider", provider.Name())

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	select {
	case err = <-serveErr:
		return err
	case sig := <-c:
		log.InfoContext(ctx, "Shutdown signal is received",
			"signal", sig.String())
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.InfoContext(ctx, "Server is stopped",
		"uptimeSeconds", time.Since(start).Seconds())

	return nil
}

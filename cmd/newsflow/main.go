package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"newsflow/internal/article"
	"newsflow/internal/config"
	"newsflow/internal/event"
	"newsflow/internal/generate"
	"newsflow/internal/httpapi"
	"newsflow/internal/i18n"
	"newsflow/internal/metrics"
)

func main() {
	// Root context cancelled on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stdout, "[newsflow] ", log.LstdFlags|log.Lshortfile)

	if err := config.LoadDotEnv(); err != nil {
		logger.Fatalf("failed to load env file: %v", err)
	}
	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	// Language is resolved once per process
	lang := i18n.Resolve(cfg.Language, os.Getenv)
	loc, err := i18n.New(lang)
	if err != nil {
		logger.Fatalf("failed to load %s strings: %v", lang, err)
	}
	logger.Printf("language: %s", lang)

	// Content generation
	gen, err := generate.NewTextGenerator(generate.Settings{
		Provider: cfg.GenProvider,
		Model:    cfg.GenModel,
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.GenBaseURL,
	})
	if err != nil {
		logger.Fatalf("failed to init generator: %v", err)
	}
	adapter := generate.NewAdapter(gen, loc, logger)
	if !adapter.Available() {
		logger.Println("content generation unavailable: no API key configured")
	}

	storeOpts := []article.Option{
		article.WithLogger(logger),
		article.WithListener(metrics.Listener{}),
	}

	// Event publisher (RabbitMQ), optional
	if cfg.RabbitURI != "" {
		publisher, err := event.NewRabbitPublisher(cfg.RabbitURI, cfg.RabbitExchange, logger)
		if err != nil {
			logger.Fatalf("failed to init rabbit publisher: %v", err)
		}
		defer publisher.Close()

		eventsService := event.NewService(publisher, cfg.EventBuffer, logger)
		storeOpts = append(storeOpts, article.WithListener(eventsService))
		go eventsService.Run(ctx)
	} else {
		logger.Println("change events disabled: RABBIT_URI not set")
	}

	store := article.NewSeededStore(loc, storeOpts...)
	logger.Printf("article store seeded with %d articles", store.Len())

	srv := httpapi.NewServer(store, adapter, loc, logger).ListenAndServe(cfg.HTTPAddr)

	logger.Println("service started")

	// Block until we receive a signal / ctx cancelled
	<-ctx.Done()
	logger.Println("shutdown signal received, shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Printf("HTTP server shutdown error: %v", err)
	}

	logger.Println("shutdown complete")
}

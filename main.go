package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"tripguide/config"
	"tripguide/handlers"
	"tripguide/knowledge"
	"tripguide/logger"
	"tripguide/server"
	"tripguide/services"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("tripguide: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()

	kb, err := knowledge.Load(cfg.KnowledgeBasePath)
	if err != nil {
		return fmt.Errorf("failed to load knowledge base: %w", err)
	}
	zl.Info("Knowledge base loaded",
		zap.Int("entries", kb.Len()),
		zap.Strings("destinations", kb.Names()))

	gen, err := services.NewGenerator(context.Background(), cfg.AI, zl)
	if err != nil {
		return err
	}

	svc := services.NewItineraryService(kb, gen, cfg.AI.Timeout, zl)
	router := server.NewRouter(cfg, handlers.New(svc, zl), zl)

	if cfg.PprofAddr != "" {
		server.StartPprofServer(cfg.PprofAddr, zl)
	}

	srv := server.HTTPServer(cfg.Port, router)
	done := make(chan bool, 1)
	go server.GracefulShutdown(srv, zl, done)

	zl.Info("TripGuide server starting",
		zap.String("port", cfg.Port),
		zap.String("provider", gen.Provider()),
		zap.String("model", gen.Model()))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	<-done
	zl.Info("Graceful shutdown complete")
	return nil
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/common"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/docai"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/export"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/pipeline"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/server"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/session"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Upload store, created up front rather than on first request.
	store := storage.NewStore(cfg.Storage.UploadDir, logger)
	if err := store.Init(); err != nil {
		logger.Error("init upload store", "error", err)
		os.Exit(1)
	}

	// Document AI client
	extractor, err := docai.NewClient(ctx, cfg.DocAI, logger)
	if err != nil {
		logger.Error("create document ai client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := extractor.Close(); cerr != nil {
			logger.Warn("close document ai client", "error", cerr)
		}
	}()

	proc := pipeline.NewProcessor(store, extractor, logger)
	sessions := session.NewStore()
	exporter := export.NewService(logger)
	svc := server.NewService(proc, sessions, store, exporter, cfg.Server.MaxUploadBytes, logger)

	srv := &http.Server{
		Addr:         cfg.Server.HTTPAddr,
		Handler:      svc.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	logger.Info("stopped")
}

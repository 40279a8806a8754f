// @title Veterinaria - Seguimiento de Pacientes
// @version 1.0
// @description Registro de pacientes de una veterinaria: alta, edición y baja.
// @BasePath /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vet-patient-tracker/internal/adapters/storage"
	"vet-patient-tracker/internal/platform/config"
	"vet-patient-tracker/internal/platform/logger"
	"vet-patient-tracker/internal/platform/metrics"
	"vet-patient-tracker/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{}).Error("invalid config", map[string]any{"err": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slot, closer, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		log.Error("storage open failed", map[string]any{"driver": string(cfg.Storage.Driver), "err": err})
		os.Exit(1)
	}
	defer closer.Close()

	r := router.NewRouter(ctx, router.Options{
		Logger:         log,
		Metrics:        metrics.New(),
		Slot:           slot,
		StorageKey:     cfg.Storage.Key,
		StorageTimeout: cfg.Storage.Timeout,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "storage": string(cfg.Storage.Driver)})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"err": err})
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	// Las escrituras del snapshot son síncronas: al terminar Shutdown ya quedaron en el slot.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", map[string]any{"err": err})
	}
	log.Info("server stopped", nil)
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fauna-field-log/internal/adapters/geolocation"
	"fauna-field-log/internal/adapters/storage/backend"
	"fauna-field-log/internal/config"
	"fauna-field-log/internal/platform/logger"
	"fauna-field-log/internal/platform/metrics"
	"fauna-field-log/internal/router"
)

// @title        Fauna Field Log API
// @version      1.0
// @description  Registro de encuentros con fauna silvestre: capturas, resumen, mapa y perfil.
// @BasePath     /
func main() {
	boot := logger.NewFromEnv()

	cfg, err := config.Load()
	if err != nil {
		boot.Error("config error", map[string]any{"error": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: logger.ParseFormat(cfg.Logging.Format),
		App:    cfg.App,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server error", map[string]any{"error": err})
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	kv, err := backend.Open(ctx, cfg.Storage, log)
	if err != nil {
		return err
	}
	defer kv.Close()

	locator, err := geolocation.FromConfig(cfg.Geo)
	if err != nil {
		return err
	}

	app := router.Build(router.Options{
		KV:              kv,
		Locator:         locator,
		GeoTimeout:      cfg.Geo.Timeout,
		FormIdleTimeout: cfg.Forms.IdleTimeout,
		MaxOpenForms:    cfg.Forms.MaxOpen,
		Logger:          log,
		Metrics:         metrics.New(),
		Location:        loc,
	})
	go app.Captures.RunEvictor(ctx, time.Minute)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      app.Handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":    cfg.Addr(),
			"storage": cfg.Storage.Driver,
			"geo":     cfg.Geo.Mode,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	// Las solicitudes de posición tienen su propio timeout.
	app.Captures.WaitLocating()
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace/internal/app"
	"marketplace/internal/logging"
	"marketplace/internal/storeapi"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "storeapi:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := app.LoadServerConfig(".env")
	if err != nil {
		return err
	}
	log, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	api := storeapi.New(storeapi.Options{
		Secret:        []byte(cfg.Secret),
		RatePerSecond: cfg.RatePerSecond,
		Burst:         cfg.Burst,
		Logger:        log,
	})
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      api.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Addr).Info("store api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errc:
		return err
	case <-quit:
	}

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server exited")
	return nil
}

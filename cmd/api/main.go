package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/comitanigiacomo/kanso-countdown/internal/config"
)

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Critical: invalid configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Printf("Starting %s (%s) with %s storage...", cfg.Service.Name, cfg.Service.Environment, cfg.Database.Driver)

	app, err := newApplication(ctx, cfg, startTime)
	if err != nil {
		log.Fatalf("Critical: failed to initialise application: %v", err)
	}
	defer app.Close()

	if err := app.startWorkers(ctx); err != nil {
		log.Fatalf("Critical: failed to start background workers: %v", err)
	}

	readTimeout, writeTimeout, idleTimeout, shutdownTimeout := cfg.HTTP.Timeouts()
	srv := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      app.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	go func() {
		log.Printf("Kanso Countdown running on http://localhost%s", cfg.HTTP.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown error: %v", err)
	}

	log.Println("Server stopped gracefully.")
}

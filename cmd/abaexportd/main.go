package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/wirasentana/aba-export-service/internal/config"
	"github.com/wirasentana/aba-export-service/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A .env file is optional; variables already set in the environment win.
	_ = godotenv.Load()

	cfg := config.LoadServerConfig()

	var (
		listenAddr  string
		profileFile string
	)

	flag.StringVar(&listenAddr, "listen", cfg.ListenAddr, "Address to listen on")
	flag.StringVar(&profileFile, "profile", cfg.ProfilePath, "Path to the originator profile YAML")

	flag.Parse()

	logger, err := buildLogger(cfg.LogLevel)
	if err != nil {
		exitWithError(fmt.Sprintf("Building logger: %v", err))
	}
	defer logger.Sync()

	originator, err := config.LoadProfile(profileFile)
	if err != nil {
		exitWithError(fmt.Sprintf("Loading originator profile: %v", err))
	}

	srv := server.New(originator, cfg.MaxUploadMB, logger)
	httpServer := &http.Server{
		Addr:    listenAddr,
		Handler: srv.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", listenAddr))
		errCh <- httpServer.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			exitWithError(fmt.Sprintf("Server failed: %v", err))
		}
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Warn("shutdown incomplete", zap.Error(err))
		}
	}
}

func buildLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func exitWithError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	fmt.Fprintf(os.Stderr, "Run with -h flag for usage information.\n")
	os.Exit(1)
}

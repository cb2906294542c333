package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ayash-Bera/fortaleza/internal/api"
	"github.com/Ayash-Bera/fortaleza/internal/config"
	"github.com/Ayash-Bera/fortaleza/internal/gemini"
	"github.com/Ayash-Bera/fortaleza/internal/relay"
	"github.com/Ayash-Bera/fortaleza/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	shutdownGracePeriod = 10 * time.Second
	readTimeout         = 15 * time.Second
	idleTimeout         = 120 * time.Second
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	utils.InitLogger(cfg.Log.Level, cfg.Log.Format)
	logger := utils.GetLogger()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	var generator relay.Generator
	if cfg.HasAPIKey() {
		client := gemini.NewClient(gemini.Options{
			BaseURL:    cfg.Gemini.BaseURL,
			APIVersion: cfg.Gemini.APIVersion,
			Model:      cfg.Gemini.Model,
			APIKey:     cfg.Gemini.APIKey,
			Timeout:    cfg.Gemini.Timeout,
		}, logger)
		generator = gemini.NewService(client, logger)

		logger.WithField("endpoint", client.Endpoint()).Debug("Gemini client configured")
	}

	queryRelay := relay.New(generator, logger)
	router := api.NewRouter(cfg, queryRelay, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, router, logger); err != nil {
		logger.WithError(err).Fatal("Server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.Config, handler http.Handler, logger *logrus.Logger) error {
	server := &http.Server{
		Addr:        cfg.Address(),
		Handler:     handler,
		ReadTimeout: readTimeout,
		// Must outlast one full upstream call.
		WriteTimeout: cfg.Gemini.Timeout + 15*time.Second,
		IdleTimeout:  idleTimeout,
	}

	apiKeyStatus := "configured"
	if !cfg.HasAPIKey() {
		apiKeyStatus = "not configured (simulator mode)"
	}
	logger.WithFields(logrus.Fields{
		"addr":        "http://localhost" + cfg.Address(),
		"gemini_key":  apiKeyStatus,
		"model":       cfg.Gemini.Model,
		"api_version": cfg.Gemini.APIVersion,
		"environment": cfg.Server.Environment,
	}).Info("Server starting")

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown requested")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logger.Info("Server shutdown complete")
		return nil
	case err := <-errCh:
		return err
	}
}

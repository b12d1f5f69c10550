package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/haowjy/meridian-deckgen/internal/app"
	"github.com/haowjy/meridian-deckgen/internal/config"
	"github.com/haowjy/meridian-deckgen/internal/server"
)

func main() {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	logger := cfg.NewLogger()

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := server.NewRouter(a.Service, server.Options{
		Logger:      logger,
		Gatherer:    a.Registry,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Server starting on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// In-flight generations get the configured provider timeout to finish.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited properly")
}

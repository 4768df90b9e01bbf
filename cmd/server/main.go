// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/variant-catalog/internal/catalog"
	"github.com/javajoker/variant-catalog/internal/config"
	"github.com/javajoker/variant-catalog/internal/database"
	"github.com/javajoker/variant-catalog/internal/i18n"
	"github.com/javajoker/variant-catalog/internal/router"
	"github.com/javajoker/variant-catalog/internal/services"
	"github.com/javajoker/variant-catalog/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	configureLogging(cfg.Log)

	catalogStore, closeStore, err := openStore(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open catalog store")
	}
	defer closeStore()

	if err := i18n.Initialize(cfg.I18n.DefaultLocale); err != nil {
		logrus.WithError(err).Fatal("Failed to initialize i18n")
	}

	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize storage")
	}
	catalogService := services.NewCatalogService(catalogStore, catalog.NewEngine(catalogStore), storageService)

	if cfg.SeedDemo {
		if err := catalogService.SeedDemoData(context.Background()); err != nil {
			logrus.WithError(err).Fatal("Failed to seed demo data")
		}
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r, limiters := router.Initialize(catalogStore, catalogService, cfg)
	defer limiters.Stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.WithFields(logrus.Fields{
			"addr":  srv.Addr,
			"store": cfg.Store.Driver,
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
		return
	}

	logrus.Info("Server exited")
}

func configureLogging(cfg config.LogConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// openStore returns the configured catalog store and a function releasing it.
func openStore(cfg *config.Config) (store.Store, func(), error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		logrus.Warn("Using in-memory store; data is lost on restart")
		return store.NewMemoryStore(), func() {}, nil
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	if err := database.RunMigrations(db); err != nil {
		database.Close(db)
		return nil, nil, err
	}

	return store.NewGormStore(db), func() { database.Close(db) }, nil
}

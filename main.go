package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/overpowerdb/deckvault/backend/handlers"
	"github.com/overpowerdb/deckvault/deckvault"
	"github.com/overpowerdb/deckvault/deckvault/cache"
	"github.com/overpowerdb/deckvault/deckvault/config"
	"github.com/overpowerdb/deckvault/deckvault/database"
	"github.com/overpowerdb/deckvault/deckvault/database/repositories"
	"github.com/overpowerdb/deckvault/deckvault/logger"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	customHandler := logger.NewHandler("DeckVault")
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting DeckVault",
		slog.String("version", version),
		slog.String("commit", commit))

	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := deckvault.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	slog.Info("Initializing database connection...")
	dbStartTime := time.Now()
	db, err := database.New(ctx, database.DBConfig{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Database,
		PoolSize: cfg.DB.PoolSize,
	})
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(ctx); err != nil {
		slog.Error("Migrations failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Database ready", slog.Duration("took", time.Since(dbStartTime)))

	cacheSize := cfg.Cache.Size
	if cacheSize <= 0 {
		cacheSize = config.CacheSize
	}
	cacheTTL := config.CacheExpiration
	if cfg.Cache.TTLSeconds > 0 {
		cacheTTL = time.Duration(cfg.Cache.TTLSeconds) * time.Second
	}
	snapshots := cache.New(cacheSize, cacheTTL)

	catalogRepo := repositories.NewCatalogRepository(db.BunDB())
	deckRepo := repositories.NewDeckRepository(db.BunDB(), catalogRepo, snapshots)
	userRepo := repositories.NewUserRepository(db.BunDB())

	if err := deckRepo.Initialize(ctx); err != nil {
		slog.Error("Deck repository initialization failed", slog.Any("error", err))
		os.Exit(1)
	}

	h := handlers.New(deckRepo, catalogRepo, userRepo)

	addr := cfg.HTTP.Addr
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:         addr,
		Handler:      h.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("HTTP server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s

	slog.Info("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", slog.Any("error", err))
	}
	slog.Info("Stopped")
}

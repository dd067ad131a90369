package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/overpowerdb/deckvault/deckvault"
	"github.com/overpowerdb/deckvault/deckvault/database"
	"github.com/overpowerdb/deckvault/deckvault/logger"
	"github.com/overpowerdb/deckvault/deckvault/migration"
)

func main() {
	slog.SetDefault(slog.New(logger.NewHandler("DeckVault-Migrate")))

	configPath := flag.String("config", "config.toml", "path to config")
	mongoURI := flag.String("mongo-uri", "mongodb://localhost:27017", "legacy mongo connection string")
	mongoDB := flag.String("mongo-db", "deckbuilder", "legacy mongo database name")
	flag.Parse()

	cfg, err := deckvault.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.New(ctx, database.DBConfig{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Database,
		PoolSize: cfg.DB.PoolSize,
	})
	if err != nil {
		slog.Error("Failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(ctx); err != nil {
		slog.Error("Schema migrations failed", slog.Any("error", err))
		os.Exit(1)
	}

	client, legacy, err := migration.Connect(ctx, *mongoURI, *mongoDB)
	if err != nil {
		slog.Error("Failed to connect to legacy mongo", slog.Any("error", err))
		os.Exit(1)
	}
	defer client.Disconnect(ctx)

	migrator := migration.NewMigrator(db.BunDB(), legacy)
	stats, err := migrator.MigrateDecks(ctx)
	if err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("Migration completed",
		slog.Int("decks", stats.Decks),
		slog.Int("cards", stats.Cards))
}

// Package migration imports deck data from the legacy MongoDB-backed deck
// builder into PostgreSQL. One-shot tooling; the service itself never touches
// Mongo.
package migration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/overpowerdb/deckvault/deckvault/cards"
	"github.com/overpowerdb/deckvault/deckvault/database/models"
)

const defaultBatchSize = 500

// legacyDeck mirrors the shape of a deck document in the old builder.
type legacyDeck struct {
	ID          string           `bson:"_id"`
	UserID      string           `bson:"userId"`
	Name        string           `bson:"name"`
	Description string           `bson:"description"`
	Cards       []legacyDeckCard `bson:"cards"`
	CreatedAt   time.Time        `bson:"createdAt"`
}

type legacyDeckCard struct {
	Type            string `bson:"type"`
	CardID          string `bson:"cardId"`
	Quantity        int    `bson:"quantity"`
	ExcludeFromDraw bool   `bson:"excludeFromDraw"`
}

type Stats struct {
	Decks        int
	Cards        int
	SkippedDecks int
	SkippedCards int
}

type Migrator struct {
	pgDB      *bun.DB
	mongoDB   *mongo.Database
	collName  string
	batchSize int
	stats     Stats
}

func NewMigrator(pgDB *bun.DB, mongoDB *mongo.Database) *Migrator {
	return &Migrator{
		pgDB:      pgDB,
		mongoDB:   mongoDB,
		collName:  "decks",
		batchSize: defaultBatchSize,
	}
}

// Connect opens a Mongo client for the legacy database.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
	}
	return client, client.Database(dbName), nil
}

// MigrateDecks streams every legacy deck document into decks/deck_cards rows.
// Duplicate (type, id) lines inside one legacy deck are consolidated the same
// way the live synchronizer would.
func (m *Migrator) MigrateDecks(ctx context.Context) (Stats, error) {
	cursor, err := m.mongoDB.Collection(m.collName).Find(ctx, bson.D{})
	if err != nil {
		return m.stats, fmt.Errorf("failed to query legacy decks: %w", err)
	}
	defer cursor.Close(ctx)

	batch := make([]legacyDeck, 0, m.batchSize)
	for cursor.Next(ctx) {
		var doc legacyDeck
		if err := cursor.Decode(&doc); err != nil {
			m.stats.SkippedDecks++
			slog.Warn("Skipping undecodable legacy deck", slog.Any("error", err))
			continue
		}
		batch = append(batch, doc)
		if len(batch) >= m.batchSize {
			if err := m.insertBatch(ctx, batch); err != nil {
				return m.stats, err
			}
			batch = batch[:0]
		}
	}
	if err := cursor.Err(); err != nil {
		return m.stats, fmt.Errorf("legacy deck cursor failed: %w", err)
	}
	if len(batch) > 0 {
		if err := m.insertBatch(ctx, batch); err != nil {
			return m.stats, err
		}
	}

	slog.Info("Legacy deck migration finished",
		slog.Int("decks", m.stats.Decks),
		slog.Int("cards", m.stats.Cards),
		slog.Int("skipped_decks", m.stats.SkippedDecks),
		slog.Int("skipped_cards", m.stats.SkippedCards),
	)
	return m.stats, nil
}

func (m *Migrator) insertBatch(ctx context.Context, batch []legacyDeck) error {
	return m.pgDB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, doc := range batch {
			deck, rows := m.convert(doc)
			if deck == nil {
				continue
			}
			if _, err := tx.NewInsert().Model(deck).On("CONFLICT (id) DO NOTHING").Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert deck %s: %w", deck.ID, err)
			}
			if len(rows) > 0 {
				if _, err := tx.NewInsert().Model(&rows).On("CONFLICT DO NOTHING").Exec(ctx); err != nil {
					return fmt.Errorf("failed to insert cards for deck %s: %w", deck.ID, err)
				}
			}
			m.stats.Decks++
			m.stats.Cards += len(rows)
		}
		return nil
	})
}

func (m *Migrator) convert(doc legacyDeck) (*models.Deck, []*models.DeckCard) {
	if doc.UserID == "" || doc.Name == "" {
		m.stats.SkippedDecks++
		return nil, nil
	}

	id := doc.ID
	if id == "" {
		id = uuid.NewString()
	}
	createdAt := doc.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	deck := &models.Deck{
		ID:          id,
		UserID:      doc.UserID,
		Name:        doc.Name,
		Description: doc.Description,
		CreatedAt:   createdAt,
		UpdatedAt:   time.Now(),
	}

	entries := make([]cards.Entry, 0, len(doc.Cards))
	for _, c := range doc.Cards {
		t, err := cards.ParseType(c.Type)
		if err != nil {
			m.stats.SkippedCards++
			continue
		}
		qty := c.Quantity
		if qty < 1 {
			qty = 1
		}
		entries = append(entries, cards.Entry{
			Type:            t,
			CardID:          c.CardID,
			Quantity:        qty,
			ExcludeFromDraw: c.ExcludeFromDraw,
		})
	}

	consolidated := cards.Consolidate(entries)
	rows := make([]*models.DeckCard, len(consolidated))
	now := time.Now()
	for i, e := range consolidated {
		rows[i] = &models.DeckCard{
			DeckID:          id,
			CardType:        string(e.Type),
			CardID:          e.CardID,
			Quantity:        e.Quantity,
			ExcludeFromDraw: e.ExcludeFromDraw,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
	}
	return deck, rows
}

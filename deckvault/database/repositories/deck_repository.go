package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/overpowerdb/deckvault/deckvault/cache"
	"github.com/overpowerdb/deckvault/deckvault/cards"
	"github.com/overpowerdb/deckvault/deckvault/config"
	"github.com/overpowerdb/deckvault/deckvault/database/models"
)

// DeckUpdate carries the mutable display metadata of a deck. Nil fields are
// left untouched.
type DeckUpdate struct {
	Name        *string
	Description *string
	IsLimited   *bool
}

type DeckRepository interface {
	Initialize(ctx context.Context) error

	Create(ctx context.Context, userID, name, description string) (*models.Deck, error)
	GetByID(ctx context.Context, deckID string) (*models.Deck, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.Deck, error)
	Update(ctx context.Context, deckID string, upd DeckUpdate) (*models.Deck, error)
	Delete(ctx context.Context, deckID string) error
	Stats(ctx context.Context) (int, error)

	// UserOwnsDeck is the ownership guard consumed by the authorization
	// layer: true only when the deck exists and belongs to userID. It never
	// returns an error; malformed ids and store failures read as false.
	UserOwnsDeck(ctx context.Context, deckID, userID string) bool

	// SyncCards atomically replaces the deck's entire card list with the
	// consolidated form of entries. Either the deck ends up exactly matching
	// the consolidated input or nothing changes.
	SyncCards(ctx context.Context, deckID string, entries []cards.Entry) error

	AddCard(ctx context.Context, deckID string, t cards.Type, cardID string, quantity int, excludeFromDraw bool) error
	RemoveCard(ctx context.Context, deckID string, t cards.Type, cardID string, quantity int) error
	SetCardQuantity(ctx context.Context, deckID string, t cards.Type, cardID string, quantity int) error
	RemoveAllCards(ctx context.Context, deckID string) error

	ClearCache()
}

type deckRepository struct {
	db        *bun.DB
	catalog   CatalogRepository
	snapshots *cache.SnapshotCache
}

func NewDeckRepository(db *bun.DB, catalog CatalogRepository, snapshots *cache.SnapshotCache) DeckRepository {
	return &deckRepository{
		db:        db,
		catalog:   catalog,
		snapshots: snapshots,
	}
}

// Initialize is a no-op-safe startup step: the schema already exists, this
// only verifies the connection is usable.
func (r *deckRepository) Initialize(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("deck repository initialization failed: %w", err)
	}
	slog.Info("Deck repository initialized", slog.String("type", "db"))
	return nil
}

func (r *deckRepository) Create(ctx context.Context, userID, name, description string) (*models.Deck, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	now := time.Now()
	deck := &models.Deck{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := r.db.NewInsert().Model(deck).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create deck: %w", err)
	}

	r.snapshots.Invalidate(cache.UserDecksKey(userID))
	return deck, nil
}

func (r *deckRepository) GetByID(ctx context.Context, deckID string) (*models.Deck, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	v, err := r.snapshots.Do(cache.DeckKey(deckID), func() (any, error) {
		deck := new(models.Deck)
		err := r.db.NewSelect().
			Model(deck).
			Relation("Cards").
			Where("d.id = ?", deckID).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrDeckNotFound
			}
			return nil, fmt.Errorf("failed to get deck: %w", err)
		}
		return deck, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Deck), nil
}

func (r *deckRepository) GetByUserID(ctx context.Context, userID string) ([]*models.Deck, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	v, err := r.snapshots.Do(cache.UserDecksKey(userID), func() (any, error) {
		var decks []*models.Deck
		err := r.db.NewSelect().
			Model(&decks).
			Where("user_id = ?", userID).
			Order("created_at ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get decks for user: %w", err)
		}
		return decks, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*models.Deck), nil
}

func (r *deckRepository) Update(ctx context.Context, deckID string, upd DeckUpdate) (*models.Deck, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	deck, err := r.getDeckRow(ctx, r.db, deckID)
	if err != nil {
		return nil, err
	}

	q := r.db.NewUpdate().
		Model((*models.Deck)(nil)).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", deckID)
	if upd.Name != nil {
		q = q.Set("name = ?", *upd.Name)
	}
	if upd.Description != nil {
		q = q.Set("description = ?", *upd.Description)
	}
	if upd.IsLimited != nil {
		q = q.Set("is_limited = ?", *upd.IsLimited)
	}

	if _, err := q.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to update deck: %w", err)
	}

	r.invalidate(deckID, deck.UserID)
	return r.GetByID(ctx, deckID)
}

func (r *deckRepository) Delete(ctx context.Context, deckID string) error {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	deck, err := r.getDeckRow(ctx, r.db, deckID)
	if err != nil {
		return err
	}

	// deck_cards rows cascade
	if _, err := r.db.NewDelete().
		Model((*models.Deck)(nil)).
		Where("id = ?", deckID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete deck: %w", err)
	}

	r.invalidate(deckID, deck.UserID)
	return nil
}

func (r *deckRepository) Stats(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	count, err := r.db.NewSelect().Model((*models.Deck)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count decks: %w", err)
	}
	return count, nil
}

func (r *deckRepository) UserOwnsDeck(ctx context.Context, deckID, userID string) bool {
	if deckID == "" || userID == "" {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	var ownerID string
	err := r.db.NewSelect().
		Model((*models.Deck)(nil)).
		Column("user_id").
		Where("id = ?", deckID).
		Scan(ctx, &ownerID)
	if err != nil {
		return false
	}
	return ownerID == userID
}

// SyncCards implements the bulk replace: consolidate, validate everything up
// front, then delete-and-insert inside one transaction. Entries absent from
// the new list are removed even when nothing else failed; an empty list
// empties the deck. Concurrent calls against the same deck are not
// serialized here; each runs its own atomic replace and the last commit wins.
func (r *deckRepository) SyncCards(ctx context.Context, deckID string, entries []cards.Entry) error {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	deck, err := r.getDeckRow(ctx, r.db, deckID)
	if err != nil {
		return err
	}

	consolidated := cards.Consolidate(entries)

	for i, e := range consolidated {
		if err := r.validateEntry(ctx, e); err != nil {
			return err
		}
		// A one-per-deck card that consolidated above 1 is an accidental
		// duplicate in the submitted list; the catalog cap wins.
		if consolidated[i].Quantity > 1 {
			limited, err := r.catalog.OnePerDeck(ctx, e.Type, e.CardID)
			if err != nil {
				return err
			}
			if limited {
				consolidated[i].Quantity = 1
			}
		}
	}

	err = r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.DeckCard)(nil)).
			Where("deck_id = ?", deckID).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to clear deck cards: %w", err)
		}

		if len(consolidated) > 0 {
			now := time.Now()
			rows := make([]*models.DeckCard, len(consolidated))
			for i, e := range consolidated {
				rows[i] = &models.DeckCard{
					DeckID:          deckID,
					CardType:        string(e.Type),
					CardID:          e.CardID,
					Quantity:        e.Quantity,
					ExcludeFromDraw: e.ExcludeFromDraw,
					CreatedAt:       now,
					UpdatedAt:       now,
				}
			}
			if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert deck cards: %w", err)
			}
		}

		if _, err := tx.NewUpdate().
			Model((*models.Deck)(nil)).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", deckID).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to touch deck: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.invalidate(deckID, deck.UserID)
	slog.Debug("Deck synchronized",
		slog.String("type", "db"),
		slog.String("deck_id", deckID),
		slog.Int("entries", len(consolidated)),
	)
	return nil
}

func (r *deckRepository) AddCard(ctx context.Context, deckID string, t cards.Type, cardID string, quantity int, excludeFromDraw bool) error {
	if quantity < 1 {
		quantity = 1
	}

	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	deck, err := r.getDeckRow(ctx, r.db, deckID)
	if err != nil {
		return err
	}

	if err := r.validateEntry(ctx, cards.Entry{Type: t, CardID: cardID, Quantity: quantity}); err != nil {
		return err
	}
	limited, err := r.catalog.OnePerDeck(ctx, t, cardID)
	if err != nil {
		return err
	}
	if limited && quantity > 1 {
		return &cards.CardinalityError{CardType: string(t), CardID: cardID}
	}

	err = r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		existing, err := r.getEntryRow(ctx, tx, deckID, t, cardID)
		if err != nil && !errors.Is(err, ErrEntryNotFound) {
			return err
		}

		if existing != nil {
			if limited {
				return &cards.CardinalityError{CardType: string(t), CardID: cardID}
			}
			_, err = tx.NewUpdate().
				Model((*models.DeckCard)(nil)).
				Set("quantity = quantity + ?", quantity).
				Set("updated_at = ?", time.Now()).
				Where("id = ?", existing.ID).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to increment deck card: %w", err)
			}
			return nil
		}

		now := time.Now()
		row := &models.DeckCard{
			DeckID:          deckID,
			CardType:        string(t),
			CardID:          cardID,
			Quantity:        quantity,
			ExcludeFromDraw: excludeFromDraw,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if _, err := tx.NewInsert().Model(row).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert deck card: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.invalidate(deckID, deck.UserID)
	return nil
}

func (r *deckRepository) RemoveCard(ctx context.Context, deckID string, t cards.Type, cardID string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	if !t.Valid() {
		return &cards.ValidationError{CardType: string(t), Reason: "unknown card type"}
	}

	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	deck, err := r.getDeckRow(ctx, r.db, deckID)
	if err != nil {
		return err
	}

	err = r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		existing, err := r.getEntryRow(ctx, tx, deckID, t, cardID)
		if err != nil {
			return err
		}

		remaining := existing.Quantity - quantity
		if remaining <= 0 {
			// never store a zero or negative quantity
			_, err = tx.NewDelete().
				Model((*models.DeckCard)(nil)).
				Where("id = ?", existing.ID).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to delete deck card: %w", err)
			}
			return nil
		}

		_, err = tx.NewUpdate().
			Model((*models.DeckCard)(nil)).
			Set("quantity = ?", remaining).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", existing.ID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to decrement deck card: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.invalidate(deckID, deck.UserID)
	return nil
}

func (r *deckRepository) SetCardQuantity(ctx context.Context, deckID string, t cards.Type, cardID string, quantity int) error {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	deck, err := r.getDeckRow(ctx, r.db, deckID)
	if err != nil {
		return err
	}

	if quantity <= 0 {
		// a computed quantity of zero means the entry goes away entirely
		err = r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
			existing, err := r.getEntryRow(ctx, tx, deckID, t, cardID)
			if err != nil {
				return err
			}
			_, err = tx.NewDelete().
				Model((*models.DeckCard)(nil)).
				Where("id = ?", existing.ID).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to delete deck card: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		r.invalidate(deckID, deck.UserID)
		return nil
	}

	if err := r.validateEntry(ctx, cards.Entry{Type: t, CardID: cardID, Quantity: quantity}); err != nil {
		return err
	}
	limited, err := r.catalog.OnePerDeck(ctx, t, cardID)
	if err != nil {
		return err
	}
	if limited && quantity > 1 {
		return &cards.CardinalityError{CardType: string(t), CardID: cardID}
	}

	err = r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		existing, err := r.getEntryRow(ctx, tx, deckID, t, cardID)
		if err != nil && !errors.Is(err, ErrEntryNotFound) {
			return err
		}

		now := time.Now()
		if existing != nil {
			_, err = tx.NewUpdate().
				Model((*models.DeckCard)(nil)).
				Set("quantity = ?", quantity).
				Set("updated_at = ?", now).
				Where("id = ?", existing.ID).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to set deck card quantity: %w", err)
			}
			return nil
		}

		row := &models.DeckCard{
			DeckID:    deckID,
			CardType:  string(t),
			CardID:    cardID,
			Quantity:  quantity,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := tx.NewInsert().Model(row).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert deck card: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.invalidate(deckID, deck.UserID)
	return nil
}

func (r *deckRepository) RemoveAllCards(ctx context.Context, deckID string) error {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	deck, err := r.getDeckRow(ctx, r.db, deckID)
	if err != nil {
		return err
	}

	err = r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.DeckCard)(nil)).
			Where("deck_id = ?", deckID).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to clear deck cards: %w", err)
		}
		if _, err := tx.NewUpdate().
			Model((*models.Deck)(nil)).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", deckID).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to touch deck: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.invalidate(deckID, deck.UserID)
	return nil
}

func (r *deckRepository) ClearCache() {
	r.snapshots.Clear()
	slog.Info("Deck cache cleared", slog.String("type", "cache"))
}

// validateEntry checks the type tag against the closed set and the card id
// against its catalog. Fail closed on both.
func (r *deckRepository) validateEntry(ctx context.Context, e cards.Entry) error {
	if !e.Type.Valid() {
		return &cards.ValidationError{CardType: string(e.Type), Reason: "unknown card type"}
	}
	exists, err := r.catalog.Exists(ctx, e.Type, e.CardID)
	if err != nil {
		return err
	}
	if !exists {
		return &cards.ValidationError{
			CardType: string(e.Type),
			CardID:   e.CardID,
			Reason:   "not in catalog",
		}
	}
	return nil
}

// getDeckRow fetches the bare deck row (no cards, no cache). Mutators use it
// both as the existence check and to learn the owner for cache invalidation.
func (r *deckRepository) getDeckRow(ctx context.Context, idb bun.IDB, deckID string) (*models.Deck, error) {
	deck := new(models.Deck)
	err := idb.NewSelect().
		Model(deck).
		Where("id = ?", deckID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDeckNotFound
		}
		return nil, fmt.Errorf("failed to get deck: %w", err)
	}
	return deck, nil
}

func (r *deckRepository) getEntryRow(ctx context.Context, idb bun.IDB, deckID string, t cards.Type, cardID string) (*models.DeckCard, error) {
	row := new(models.DeckCard)
	err := idb.NewSelect().
		Model(row).
		Where("deck_id = ? AND card_type = ? AND card_id = ?", deckID, string(t), cardID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get deck card: %w", err)
	}
	return row, nil
}

func (r *deckRepository) invalidate(deckID, userID string) {
	r.snapshots.Invalidate(cache.DeckKey(deckID), cache.UserDecksKey(userID))
}

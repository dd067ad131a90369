package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/overpowerdb/deckvault/deckvault/cache"
	"github.com/overpowerdb/deckvault/deckvault/cards"
)

// fakeCatalog is an in-memory CatalogRepository for exercising the
// validation paths without a database.
type fakeCatalog struct {
	known   map[string]bool
	limited map[string]bool
}

func (f *fakeCatalog) Exists(_ context.Context, t cards.Type, cardID string) (bool, error) {
	if !t.Valid() {
		return false, &cards.ValidationError{CardType: string(t), Reason: "unknown card type"}
	}
	return f.known[string(t)+"/"+cardID], nil
}

func (f *fakeCatalog) OnePerDeck(_ context.Context, t cards.Type, cardID string) (bool, error) {
	return f.limited[string(t)+"/"+cardID], nil
}

func (f *fakeCatalog) List(context.Context, cards.Type) ([]CatalogCard, error) {
	return nil, nil
}

func (f *fakeCatalog) Search(context.Context, cards.Type, string, int) ([]CatalogCard, error) {
	return nil, nil
}

func newTestRepo() *deckRepository {
	return &deckRepository{
		catalog: &fakeCatalog{
			known:   map[string]bool{"power/P1": true, "character/C1": true},
			limited: map[string]bool{"power/P1": false},
		},
		snapshots: cache.New(16, time.Minute),
	}
}

func TestValidateEntry(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	tests := []struct {
		name    string
		entry   cards.Entry
		wantErr bool
	}{
		{name: "known card", entry: cards.Entry{Type: cards.TypePower, CardID: "P1", Quantity: 1}},
		{name: "unknown id", entry: cards.Entry{Type: cards.TypePower, CardID: "NOPE", Quantity: 1}, wantErr: true},
		{name: "unknown type", entry: cards.Entry{Type: "vehicle", CardID: "P1", Quantity: 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.validateEntry(ctx, tt.entry)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateEntry(%v) error = %v, wantErr %v", tt.entry, err, tt.wantErr)
			}
			if err != nil {
				var verr *cards.ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("validateEntry error type = %T, want *cards.ValidationError", err)
				}
			}
		})
	}
}

func TestUserOwnsDeckRejectsEmptyIDs(t *testing.T) {
	r := newTestRepo()
	ctx := context.Background()

	if r.UserOwnsDeck(ctx, "", "user") {
		t.Error("UserOwnsDeck with empty deck id must be false")
	}
	if r.UserOwnsDeck(ctx, "deck", "") {
		t.Error("UserOwnsDeck with empty user id must be false")
	}
}

func TestInvalidateDropsExactlyBothKeys(t *testing.T) {
	r := newTestRepo()

	r.snapshots.Set(cache.DeckKey("d1"), "deck")
	r.snapshots.Set(cache.UserDecksKey("u1"), "list")
	r.snapshots.Set(cache.DeckKey("d2"), "other deck")
	r.snapshots.Set(cache.UserDecksKey("u2"), "other list")

	r.invalidate("d1", "u1")

	if _, ok := r.snapshots.Get(cache.DeckKey("d1")); ok {
		t.Error("deck key should be invalidated")
	}
	if _, ok := r.snapshots.Get(cache.UserDecksKey("u1")); ok {
		t.Error("owner deck-list key should be invalidated")
	}
	if _, ok := r.snapshots.Get(cache.DeckKey("d2")); !ok {
		t.Error("unrelated deck key should survive")
	}
	if _, ok := r.snapshots.Get(cache.UserDecksKey("u2")); !ok {
		t.Error("unrelated user key should survive")
	}
}

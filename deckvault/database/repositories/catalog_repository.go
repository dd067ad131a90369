package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sahilm/fuzzy"
	"github.com/uptrace/bun"

	"github.com/overpowerdb/deckvault/deckvault/cards"
	"github.com/overpowerdb/deckvault/deckvault/config"
	"github.com/overpowerdb/deckvault/deckvault/database/models"
)

// CatalogCard is the projection of a catalog row this service cares about.
type CatalogCard struct {
	ID         string `bun:"id" json:"id"`
	Name       string `bun:"name" json:"name"`
	OnePerDeck bool   `bun:"one_per_deck" json:"onePerDeck,omitempty"`
}

// CatalogRepository resolves card references against the per-type catalog
// tables. Read-only.
type CatalogRepository interface {
	// Exists reports whether cardID resolves in the catalog table for t.
	// An unknown type tag is a ValidationError, not a miss.
	Exists(ctx context.Context, t cards.Type, cardID string) (bool, error)
	// OnePerDeck reports whether the catalog flags cardID as limited to a
	// single entry per deck. Types without the flag always report false.
	OnePerDeck(ctx context.Context, t cards.Type, cardID string) (bool, error)
	// List returns every card in the catalog table for t.
	List(ctx context.Context, t cards.Type) ([]CatalogCard, error)
	// Search fuzzy-matches query against card names for t.
	Search(ctx context.Context, t cards.Type, query string, limit int) ([]CatalogCard, error)
}

// catalogTable binds a card type tag to its catalog model. Adding a card
// type means adding a registry entry here; nothing else dispatches on type.
type catalogTable struct {
	model   func() interface{}
	flagged bool
}

var catalogRegistry = map[cards.Type]catalogTable{
	cards.TypeCharacter:        {model: func() interface{} { return (*models.Character)(nil) }},
	cards.TypePower:            {model: func() interface{} { return (*models.PowerCard)(nil) }, flagged: true},
	cards.TypeSpecial:          {model: func() interface{} { return (*models.SpecialCard)(nil) }, flagged: true},
	cards.TypeMission:          {model: func() interface{} { return (*models.Mission)(nil) }},
	cards.TypeEvent:            {model: func() interface{} { return (*models.Event)(nil) }},
	cards.TypeAspect:           {model: func() interface{} { return (*models.Aspect)(nil) }, flagged: true},
	cards.TypeLocation:         {model: func() interface{} { return (*models.Location)(nil) }},
	cards.TypeTeamwork:         {model: func() interface{} { return (*models.TeamworkCard)(nil) }, flagged: true},
	cards.TypeAllyUniverse:     {model: func() interface{} { return (*models.AllyUniverseCard)(nil) }},
	cards.TypeTraining:         {model: func() interface{} { return (*models.TrainingCard)(nil) }, flagged: true},
	cards.TypeBasicUniverse:    {model: func() interface{} { return (*models.BasicUniverseCard)(nil) }},
	cards.TypeAdvancedUniverse: {model: func() interface{} { return (*models.AdvancedUniverseCard)(nil) }, flagged: true},
}

type catalogRepository struct {
	db    *bun.DB
	cache *sync.Map
}

func NewCatalogRepository(db *bun.DB) CatalogRepository {
	return &catalogRepository{
		db:    db,
		cache: &sync.Map{},
	}
}

func (r *catalogRepository) Exists(ctx context.Context, t cards.Type, cardID string) (bool, error) {
	row, err := r.lookup(ctx, t, cardID)
	if err != nil {
		return false, err
	}
	return row != nil, nil
}

func (r *catalogRepository) OnePerDeck(ctx context.Context, t cards.Type, cardID string) (bool, error) {
	spec, ok := catalogRegistry[t]
	if !ok {
		return false, &cards.ValidationError{CardType: string(t), Reason: "unknown card type"}
	}
	if !spec.flagged {
		return false, nil
	}
	row, err := r.lookup(ctx, t, cardID)
	if err != nil || row == nil {
		return false, err
	}
	return row.OnePerDeck, nil
}

// lookup resolves cardID to its catalog row, or nil when it does not exist.
// The id may arrive as an opaque token or a structured identifier, so after
// the exact match fails a lenient pass tries a case-insensitive match and a
// normalized numeric form ("007" and "7" address the same row).
func (r *catalogRepository) lookup(ctx context.Context, t cards.Type, cardID string) (*CatalogCard, error) {
	spec, ok := catalogRegistry[t]
	if !ok {
		return nil, &cards.ValidationError{CardType: string(t), Reason: "unknown card type"}
	}

	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	id := strings.TrimSpace(cardID)
	if id == "" {
		return nil, nil
	}

	candidates := []struct {
		cond string
		arg  string
	}{
		{"id = ?", id},
		{"LOWER(id) = ?", strings.ToLower(id)},
	}
	if n, err := strconv.Atoi(id); err == nil {
		candidates = append(candidates, struct {
			cond string
			arg  string
		}{"id = ?", strconv.Itoa(n)})
	}

	for _, c := range candidates {
		row := new(CatalogCard)
		q := r.db.NewSelect().
			Model(spec.model()).
			Column("id", "name")
		if spec.flagged {
			q = q.Column("one_per_deck")
		}
		err := q.Where(c.cond, c.arg).Limit(1).Scan(ctx, row)
		if err == nil {
			return row, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to look up %s card: %w", t, err)
		}
	}
	return nil, nil
}

func (r *catalogRepository) List(ctx context.Context, t cards.Type) ([]CatalogCard, error) {
	spec, ok := catalogRegistry[t]
	if !ok {
		return nil, &cards.ValidationError{CardType: string(t), Reason: "unknown card type"}
	}

	if cached, ok := r.getFromCache(string(t)); ok {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	var rows []CatalogCard
	q := r.db.NewSelect().
		Model(spec.model()).
		Column("id", "name")
	if spec.flagged {
		q = q.Column("one_per_deck")
	}
	if err := q.Order("id ASC").Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to list %s catalog: %w", t, err)
	}

	r.setCache(string(t), rows, config.CacheExpiration)
	return rows, nil
}

type catalogSource []CatalogCard

func (s catalogSource) String(i int) string { return s[i].Name }
func (s catalogSource) Len() int            { return len(s) }

func (r *catalogRepository) Search(ctx context.Context, t cards.Type, query string, limit int) ([]CatalogCard, error) {
	rows, err := r.List(ctx, t)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		if limit > 0 && len(rows) > limit {
			rows = rows[:limit]
		}
		return rows, nil
	}

	matches := fuzzy.FindFrom(query, catalogSource(rows))
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]CatalogCard, len(matches))
	for i, m := range matches {
		out[i] = rows[m.Index]
	}
	return out, nil
}

type catalogCacheEntry struct {
	rows      []CatalogCard
	expiresAt time.Time
}

func (r *catalogRepository) getFromCache(key string) ([]CatalogCard, bool) {
	value, ok := r.cache.Load(key)
	if !ok {
		return nil, false
	}
	entry := value.(catalogCacheEntry)
	if time.Now().After(entry.expiresAt) {
		r.cache.Delete(key)
		return nil, false
	}
	return entry.rows, true
}

func (r *catalogRepository) setCache(key string, rows []CatalogCard, duration time.Duration) {
	r.cache.Store(key, catalogCacheEntry{rows: rows, expiresAt: time.Now().Add(duration)})
}

// Package cache provides the short-lived read cache for deck snapshots.
// Entries expire by TTL or are discarded wholesale when a mutation touches
// their key; there is no partial invalidation and no negative caching.
package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/singleflight"
)

// Key addresses one snapshot. Construct keys only through DeckKey and
// UserDecksKey so the two key spaces cannot collide.
type Key struct {
	kind string
	id   string
}

func (k Key) String() string {
	return k.kind + ":" + k.id
}

// DeckKey addresses a single deck snapshot.
func DeckKey(deckID string) Key {
	return Key{kind: "deck", id: deckID}
}

// UserDecksKey addresses a user's deck-list snapshot.
func UserDecksKey(userID string) Key {
	return Key{kind: "userDecks", id: userID}
}

type entry struct {
	value     any
	expiresAt time.Time
}

// SnapshotCache is a size-bounded LRU of key to snapshot with a fixed TTL.
// Concurrent access is safe; each key is replaced wholesale so readers never
// observe a partially written snapshot.
type SnapshotCache struct {
	lru    *lru.Cache
	ttl    time.Duration
	flight singleflight.Group
}

func New(size int, ttl time.Duration) *SnapshotCache {
	c, _ := lru.New(size)
	return &SnapshotCache{lru: c, ttl: ttl}
}

// Get returns the live snapshot for key, or false on miss or expiry. Expired
// entries are dropped eagerly so the next read is forced to the store.
func (c *SnapshotCache) Get(key Key) (any, bool) {
	v, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	e := v.(entry)
	if time.Now().After(e.expiresAt) {
		c.lru.Remove(key)
		return nil, false
	}
	return e.value, true
}

// Set stores a fresh snapshot under key with the configured TTL.
func (c *SnapshotCache) Set(key Key, value any) {
	c.lru.Add(key, entry{value: value, expiresAt: time.Now().Add(c.ttl)})
}

// Do returns the live snapshot for key, filling it from fill on miss.
// Concurrent misses for the same key are collapsed into a single fill call.
func (c *SnapshotCache) Do(key Key, fill func() (any, error)) (any, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err, _ := c.flight.Do(key.String(), func() (any, error) {
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := fill()
		if err != nil {
			return nil, err
		}
		c.Set(key, v)
		return v, nil
	})
	return v, err
}

// Invalidate removes the snapshot for key, if any.
func (c *SnapshotCache) Invalidate(keys ...Key) {
	for _, k := range keys {
		c.lru.Remove(k)
	}
}

// Clear removes every cached snapshot. Operational/debug use.
func (c *SnapshotCache) Clear() {
	c.lru.Purge()
}

// Len reports the number of cached snapshots, expired entries included.
func (c *SnapshotCache) Len() int {
	return c.lru.Len()
}

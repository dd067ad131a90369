package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeysDoNotCollide(t *testing.T) {
	assert.NotEqual(t, DeckKey("42"), UserDecksKey("42"))
	assert.Equal(t, DeckKey("42"), DeckKey("42"))
	assert.Equal(t, "deck:42", DeckKey("42").String())
	assert.Equal(t, "userDecks:7", UserDecksKey("7").String())
}

func TestGetSet(t *testing.T) {
	c := New(16, time.Minute)

	_, ok := c.Get(DeckKey("d1"))
	assert.False(t, ok, "empty cache should miss")

	c.Set(DeckKey("d1"), "snapshot")
	v, ok := c.Get(DeckKey("d1"))
	require.True(t, ok)
	assert.Equal(t, "snapshot", v)
}

func TestExpiry(t *testing.T) {
	c := New(16, 10*time.Millisecond)

	c.Set(DeckKey("d1"), "snapshot")
	_, ok := c.Get(DeckKey("d1"))
	require.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok = c.Get(DeckKey("d1"))
	assert.False(t, ok, "expired snapshot must miss")
	assert.Equal(t, 0, c.Len(), "expired snapshot should be dropped eagerly")
}

func TestInvalidate(t *testing.T) {
	c := New(16, time.Minute)

	c.Set(DeckKey("d1"), "deck")
	c.Set(UserDecksKey("u1"), "list")
	c.Set(DeckKey("d2"), "other")

	c.Invalidate(DeckKey("d1"), UserDecksKey("u1"))

	_, ok := c.Get(DeckKey("d1"))
	assert.False(t, ok)
	_, ok = c.Get(UserDecksKey("u1"))
	assert.False(t, ok)
	_, ok = c.Get(DeckKey("d2"))
	assert.True(t, ok, "unrelated key must survive")
}

func TestClear(t *testing.T) {
	c := New(16, time.Minute)
	c.Set(DeckKey("d1"), "deck")
	c.Set(UserDecksKey("u1"), "list")

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestDoFillsOnMiss(t *testing.T) {
	c := New(16, time.Minute)

	var calls int32
	fill := func() (any, error) {
		atomic.AddInt32(&calls, 1)
		return "fresh", nil
	}

	v, err := c.Do(DeckKey("d1"), fill)
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)

	// second read served from cache
	v, err = c.Do(DeckKey("d1"), fill)
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDoDoesNotCacheErrors(t *testing.T) {
	c := New(16, time.Minute)

	boom := errors.New("store down")
	_, err := c.Do(DeckKey("d1"), func() (any, error) { return nil, boom })
	require.ErrorIs(t, err, boom)

	// no negative caching: the next read hits the fill again
	v, err := c.Do(DeckKey("d1"), func() (any, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestDoCollapsesConcurrentFills(t *testing.T) {
	c := New(16, time.Minute)

	var calls int32
	release := make(chan struct{})
	fill := func() (any, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "fresh", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.Do(DeckKey("d1"), fill)
			assert.NoError(t, err)
			assert.Equal(t, "fresh", v)
		}()
	}

	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "concurrent misses must share one fill")
}

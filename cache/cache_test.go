package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// miniredis runs in-process, so cache tests need no running Redis server.
func newTestCache(t *testing.T) (*RedisResultCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	c := NewRedisResultCache(mr.Addr(), "", 0, time.Minute)
	t.Cleanup(func() { c.Client.Close() })
	return c, mr
}

func TestGetMiss(t *testing.T) {
	c, _ := newTestCache(t)

	words, ok, err := c.Get(context.Background(), "hi", "currency", "42")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, words)
}

func TestSetGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "hi", "currency", "42", "बयालीस"))

	words, ok, err := c.Get(ctx, "hi", "currency", "42")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "बयालीस", words)

	// Mode is part of the key; the individual reading is a separate entry.
	_, ok, err = c.Get(ctx, "hi", "individual", "42")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEntriesExpire(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "en", "currency", "42", "forty two"))
	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx, "en", "currency", "42")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetErrorWhenServerDown(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	_, _, err := c.Get(context.Background(), "en", "currency", "42")
	assert.Error(t, err)
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_SetGet(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := NewRedisCache(mr.Addr(), time.Minute)
	defer cache.Close()
	ctx := context.Background()

	require.NoError(t, cache.Ping(ctx))

	_, ok := cache.Get(ctx, "pricing:studio:0")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "pricing:studio:0", `{"kind":"studio"}`))

	val, ok := cache.Get(ctx, "pricing:studio:0")
	assert.True(t, ok)
	assert.Equal(t, `{"kind":"studio"}`, val)

	stored, err := mr.Get("rental-budget:pricing:studio:0")
	require.NoError(t, err)
	assert.Equal(t, val, stored)
	assert.Equal(t, time.Minute, mr.TTL("rental-budget:pricing:studio:0"))

	mr.FastForward(2 * time.Minute)
	_, ok = cache.Get(ctx, "pricing:studio:0")
	assert.False(t, ok)
}

func TestRedisCache_UnreachableServerIsAMiss(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := NewRedisCache(mr.Addr(), 0)
	defer cache.Close()
	mr.Close()

	ctx := context.Background()
	assert.Error(t, cache.Ping(ctx))
	assert.Error(t, cache.Set(ctx, "k", "v"))

	_, ok := cache.Get(ctx, "k")
	assert.False(t, ok)
}

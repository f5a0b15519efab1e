package main

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-budget/config"
)

func TestConnectRedis_NotConfigured(t *testing.T) {
	assert.Nil(t, connectRedis(&config.Config{}))
}

func TestConnectRedis_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	assert.Nil(t, connectRedis(&config.Config{RedisAddr: addr}))
}

func TestConnectRedis_ClosedAtShutdown(t *testing.T) {
	mr := miniredis.RunT(t)

	redisCache := connectRedis(&config.Config{RedisAddr: mr.Addr()})
	require.NotNil(t, redisCache)

	ctx := context.Background()
	require.NoError(t, redisCache.Set(ctx, "k", "v"))
	require.NoError(t, redisCache.Close())

	assert.Error(t, redisCache.Ping(ctx))
}

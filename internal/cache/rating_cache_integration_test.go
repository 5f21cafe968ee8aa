//go:build integration

package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *RatingCache {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client, err := Connect(ctx, fmt.Sprintf("redis://%s:%s/0", host, port.Port()), "")
	require.NoError(t, err)
	rc := NewRatingCache(client, time.Minute)
	t.Cleanup(func() { _ = rc.Close() })
	return rc
}

func TestRatingCache_StaleSetIsNeverRead(t *testing.T) {
	rc := startRedis(t)
	ctx := context.Background()
	oldAvg, newAvg := 2.0, 4.0

	// reader misses and starts computing from old data
	_, v, ok := rc.Get(ctx, "S1")
	require.False(t, ok)

	// a writer lands between the reader's queries and its Set
	rc.Invalidate(ctx, "S1")
	rc.Set(ctx, "S1", v, Aggregate{Average: &oldAvg, Count: 1})

	_, v2, ok := rc.Get(ctx, "S1")
	assert.False(t, ok, "value computed before the invalidation must not be served")
	assert.Equal(t, v+1, v2)

	rc.Set(ctx, "S1", v2, Aggregate{Average: &newAvg, Count: 2})
	got, _, ok := rc.Get(ctx, "S1")
	require.True(t, ok)
	require.NotNil(t, got.Average)
	assert.InDelta(t, newAvg, *got.Average, 1e-9)
	assert.Equal(t, 2, got.Count)
}

func TestRatingCache_InvalidateDropsCurrentValue(t *testing.T) {
	rc := startRedis(t)
	ctx := context.Background()

	_, v, _ := rc.Get(ctx, "S2")
	rc.Set(ctx, "S2", v, Aggregate{Count: 3})
	_, _, ok := rc.Get(ctx, "S2")
	require.True(t, ok)

	rc.Invalidate(ctx, "S2")
	_, _, ok = rc.Get(ctx, "S2")
	assert.False(t, ok)
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tradelite-api/internal/domain"
)

func sampleKPIs() *domain.DashboardKPIs {
	return &domain.DashboardKPIs{
		TotalStores:           8,
		AverageExecutionScore: 81.4,
		StoresWithIssues:      8,
		ComplianceRate:        0,
		StoresData:            []domain.StoreKPI{{Store: "Mercado Central", Score: 91, Grade: "A", IssuesCount: 1}},
		GeneratedAt:           time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC),
	}
}

func TestMemorySnapshotCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)

	c := NewMemorySnapshotCache(10 * time.Minute)
	c.now = func() time.Time { return now }

	_, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, sampleKPIs()))

	kpis, ok, err := c.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 8, kpis.TotalStores)

	now = now.Add(11 * time.Minute)
	_, ok, err = c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "snapshot expirado não deve ser servido")
}

func TestRedisSnapshotCache(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)

	client, err := Connect(ctx, "redis://"+server.Addr())
	require.NoError(t, err)
	defer client.Close()

	c := NewRedisSnapshotCache(client, 10*time.Minute)

	_, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, sampleKPIs()))

	kpis, ok, err := c.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 81.4, kpis.AverageExecutionScore)
	assert.Equal(t, "Mercado Central", kpis.StoresData[0].Store)
	assert.True(t, kpis.GeneratedAt.Equal(sampleKPIs().GeneratedAt))

	server.FastForward(11 * time.Minute)
	_, ok, err = c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConnect_EnderecoSimples(t *testing.T) {
	server := miniredis.RunT(t)

	client, err := Connect(context.Background(), server.Addr())
	require.NoError(t, err)
	assert.NoError(t, client.Close())
}

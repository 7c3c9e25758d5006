package config_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Moskzow/StoreControl/internal/config"
	"github.com/Moskzow/StoreControl/internal/kv"
	"github.com/Moskzow/StoreControl/internal/state"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "inventory_app", cfg.StoragePrefix)
	require.Equal(t, 5, cfg.LowStockThreshold)
}

func TestLowStockThresholdReachesContainer(t *testing.T) {
	t.Setenv("LOW_STOCK_THRESHOLD", "42")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 42, cfg.LowStockThreshold)

	c, err := state.New(context.Background(), kv.NewMemoryStore(), cfg.LowStockThreshold)
	require.NoError(t, err)
	require.Equal(t, 42, c.LowStockThreshold())
}

package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyulbade/petshop-pix/internal/config"
)

func TestSeedData(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	MigrationsDir = "file://../../migrations"
	t.Cleanup(func() { MigrationsDir = "file://migrations" })

	dbURL := getTestDBURL()
	pool := getTestPool(t)
	ctx := context.Background()

	_ = RollbackMigrations(dbURL)
	require.NoError(t, RunMigrations(dbURL))
	t.Cleanup(func() { _ = RollbackMigrations(dbURL) })

	cfg := &config.Config{PixKey: "petshop@example.com", PixMerchantName: "Pet Manager", PixMerchantCity: "Cidade"}

	t.Run("seeds settings", func(t *testing.T) {
		require.NoError(t, SeedData(ctx, pool, cfg))

		var key string
		require.NoError(t, pool.QueryRow(ctx, "SELECT pix_key FROM merchant_settings WHERE id = 1").Scan(&key))
		assert.Equal(t, "petshop@example.com", key)
	})

	t.Run("does not overwrite existing settings", func(t *testing.T) {
		other := *cfg
		other.PixKey = "other@example.com"
		require.NoError(t, SeedData(ctx, pool, &other))

		var key string
		require.NoError(t, pool.QueryRow(ctx, "SELECT pix_key FROM merchant_settings WHERE id = 1").Scan(&key))
		assert.Equal(t, "petshop@example.com", key)
	})

	t.Run("no key configured is a no-op", func(t *testing.T) {
		assert.NoError(t, SeedData(ctx, pool, &config.Config{}))
	})
}

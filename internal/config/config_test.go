package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("BATCH_CONCURRENCY", "not-a-number")
	t.Setenv("PIX_KEY", "petshop@example.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, 8, cfg.BatchConcurrency)
	assert.Equal(t, "petshop@example.com", cfg.PixKey)
}

func TestConfig_DatabaseURL(t *testing.T) {
	cfg := &Config{
		DBUser: "u", DBPassword: "p", DBHost: "db", DBPort: "5433", DBName: "shop", DBSSLMode: "require",
	}
	assert.Equal(t, "postgres://u:p@db:5433/shop?sslmode=require", cfg.DatabaseURL())
}

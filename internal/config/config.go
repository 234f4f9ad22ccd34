package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	AutoMigrate bool
	GinMode     string
	LogLevel    string

	// Seed values for the merchant settings row.
	PixKey          string
	PixMerchantName string
	PixMerchantCity string

	BatchConcurrency int
}

// Load reads the process environment once. A .env file in the working
// directory is applied first when present; real env vars win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "petshop"),
		DBPassword:       getEnv("DB_PASSWORD", "petshop_secret"),
		DBName:           getEnv("DB_NAME", "petshop"),
		DBSSLMode:        getEnv("DB_SSLMODE", "disable"),
		AutoMigrate:      getEnv("AUTO_MIGRATE", "false") == "true",
		GinMode:          getEnv("GIN_MODE", "debug"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		PixKey:           getEnv("PIX_KEY", ""),
		PixMerchantName:  getEnv("PIX_MERCHANT_NAME", "Pet Manager"),
		PixMerchantCity:  getEnv("PIX_MERCHANT_CITY", "Sao Paulo"),
		BatchConcurrency: getEnvInt("BATCH_CONCURRENCY", 8),
	}
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/petshop-pix/internal/config"
)

// SeedData creates the merchant settings row from config when it does not
// exist yet. Settings edited through the API are never overwritten.
func SeedData(ctx context.Context, pool *pgxpool.Pool, cfg *config.Config) error {
	if cfg.PixKey == "" {
		log.Warn().Msg("PIX_KEY not set, skipping merchant settings seed")
		return nil
	}

	tag, err := pool.Exec(ctx,
		`INSERT INTO merchant_settings (id, pix_key, merchant_name, merchant_city)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO NOTHING`,
		cfg.PixKey, cfg.PixMerchantName, cfg.PixMerchantCity)
	if err != nil {
		return fmt.Errorf("seed merchant settings: %w", err)
	}

	log.Info().
		Bool("inserted", tag.RowsAffected() == 1).
		Msg("merchant settings seeded")

	return nil
}

package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anyulbade/petshop-pix/internal/model"
)

type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

func (r *SettingsRepository) Get(ctx context.Context) (*model.MerchantSettings, error) {
	s := &model.MerchantSettings{}
	err := r.pool.QueryRow(ctx,
		`SELECT pix_key, merchant_name, merchant_city, updated_at
		FROM merchant_settings WHERE id = 1`).
		Scan(&s.PixKey, &s.MerchantName, &s.MerchantCity, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, s *model.MerchantSettings) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO merchant_settings (id, pix_key, merchant_name, merchant_city)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			pix_key = EXCLUDED.pix_key,
			merchant_name = EXCLUDED.merchant_name,
			merchant_city = EXCLUDED.merchant_city,
			updated_at = NOW()
		RETURNING updated_at`,
		s.PixKey, s.MerchantName, s.MerchantCity,
	).Scan(&s.UpdatedAt)
}

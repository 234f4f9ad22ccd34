package service

import (
	"context"
	"errors"

	"github.com/anyulbade/petshop-pix/internal/model"
)

var (
	ErrSettingsMissing = errors.New("merchant PIX settings are not configured")
	ErrStatusConflict  = errors.New("charge is no longer pending")
)

type SettingsStore interface {
	Get(ctx context.Context) (*model.MerchantSettings, error)
	Upsert(ctx context.Context, s *model.MerchantSettings) error
}

type ChargeStore interface {
	Insert(ctx context.Context, c *model.PixCharge) error
	FindByID(ctx context.Context, id string) (*model.PixCharge, error)
	UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) (*model.PixCharge, error)
	List(ctx context.Context, f model.ChargeFilter) ([]model.PixCharge, int, error)
}

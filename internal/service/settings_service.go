package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/anyulbade/petshop-pix/internal/dto"
	"github.com/anyulbade/petshop-pix/internal/model"
	"github.com/anyulbade/petshop-pix/internal/pix"
)

// probeAmount is used to check that new settings can be encoded at all.
const probeAmount = "0.00"

type SettingsService struct {
	store SettingsStore
}

func NewSettingsService(store SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

func (s *SettingsService) Get(ctx context.Context) (*model.MerchantSettings, error) {
	settings, err := s.store.Get(ctx)
	if errors.Is(err, model.ErrNotFound) {
		return nil, ErrSettingsMissing
	}
	return settings, err
}

func (s *SettingsService) Update(ctx context.Context, req *dto.UpdatePixSettingsRequest) (*model.MerchantSettings, error) {
	probe := pix.Payload{
		PixKey:       req.PixKey,
		MerchantName: req.MerchantName,
		MerchantCity: req.MerchantCity,
		Amount:       probeAmount,
	}
	if _, err := probe.Build(); err != nil {
		return nil, err
	}

	settings := &model.MerchantSettings{
		PixKey:       req.PixKey,
		MerchantName: req.MerchantName,
		MerchantCity: req.MerchantCity,
	}
	if err := s.store.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}

	log.Info().
		Str("merchant_name", settings.MerchantName).
		Str("merchant_city", settings.MerchantCity).
		Msg("merchant PIX settings updated")

	return settings, nil
}

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyulbade/petshop-pix/internal/dto"
	"github.com/anyulbade/petshop-pix/internal/pix"
	"github.com/anyulbade/petshop-pix/internal/testutil"
)

func TestSettingsService(t *testing.T) {
	ctx := context.Background()

	t.Run("bad: get before any update", func(t *testing.T) {
		svc := NewSettingsService(testutil.NewSettingsStore(nil))
		_, err := svc.Get(ctx)
		assert.ErrorIs(t, err, ErrSettingsMissing)
	})

	t.Run("happy: update then get", func(t *testing.T) {
		svc := NewSettingsService(testutil.NewSettingsStore(nil))

		saved, err := svc.Update(ctx, &dto.UpdatePixSettingsRequest{
			PixKey: "petshop@example.com", MerchantName: "Pet Manager", MerchantCity: "Cidade",
		})
		require.NoError(t, err)
		assert.False(t, saved.UpdatedAt.IsZero())

		got, err := svc.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "petshop@example.com", got.PixKey)
	})

	t.Run("bad: settings that cannot be encoded are rejected", func(t *testing.T) {
		store := testutil.NewSettingsStore(nil)
		svc := NewSettingsService(store)

		_, err := svc.Update(ctx, &dto.UpdatePixSettingsRequest{
			PixKey: strings.Repeat("k", 78), MerchantName: "Pet Manager", MerchantCity: "Cidade",
		})
		assert.ErrorIs(t, err, pix.ErrFieldTooLong)

		_, err = svc.Get(ctx)
		assert.ErrorIs(t, err, ErrSettingsMissing)
	})

	t.Run("bad: store failure is wrapped", func(t *testing.T) {
		store := testutil.NewSettingsStore(nil)
		store.Err = errors.New("connection refused")
		svc := NewSettingsService(store)

		_, err := svc.Update(ctx, &dto.UpdatePixSettingsRequest{
			PixKey: "k", MerchantName: "n", MerchantCity: "c",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "save settings")
	})
}

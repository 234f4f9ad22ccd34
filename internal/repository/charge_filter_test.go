package repository

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyulbade/petshop-pix/internal/model"
)

func filterSQL(t *testing.T, f model.ChargeFilter) (string, []any) {
	t.Helper()
	b := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).Select("id").From("pix_charges")
	query, args, err := applyChargeFilter(b, f).ToSql()
	require.NoError(t, err)
	return query, args
}

func TestApplyChargeFilter(t *testing.T) {
	t.Run("plain day includes the whole day", func(t *testing.T) {
		query, args := filterSQL(t, model.ChargeFilter{DateTo: "2024-01-31"})
		assert.Contains(t, query, "created_at < $1")
		assert.Equal(t, []any{"2024-02-01"}, args)
	})

	t.Run("day bound rolls over the year", func(t *testing.T) {
		_, args := filterSQL(t, model.ChargeFilter{DateTo: "2024-12-31"})
		assert.Equal(t, []any{"2025-01-01"}, args)
	})

	t.Run("timestamp bound is inclusive", func(t *testing.T) {
		query, args := filterSQL(t, model.ChargeFilter{DateTo: "2024-01-31T12:00:00Z"})
		assert.Contains(t, query, "created_at <= $1")
		assert.Equal(t, []any{"2024-01-31T12:00:00Z"}, args)
	})

	t.Run("all filters", func(t *testing.T) {
		query, args := filterSQL(t, model.ChargeFilter{
			Status:   model.ChargeStatusPaid,
			DateFrom: "2024-01-01",
			DateTo:   "2024-01-31",
		})
		assert.Equal(t, "SELECT id FROM pix_charges WHERE status = $1 AND created_at >= $2 AND created_at < $3", query)
		assert.Equal(t, []any{model.ChargeStatusPaid, "2024-01-01", "2024-02-01"}, args)
	})

	t.Run("no filters", func(t *testing.T) {
		query, args := filterSQL(t, model.ChargeFilter{})
		assert.Equal(t, "SELECT id FROM pix_charges", query)
		assert.Empty(t, args)
	})
}

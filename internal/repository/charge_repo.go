package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anyulbade/petshop-pix/internal/dto"
	"github.com/anyulbade/petshop-pix/internal/model"
)

var chargeColumns = []string{
	"id", "transaction_id", "amount::text", "pix_key", "merchant_name", "merchant_city",
	"payload", "status", "created_at", "updated_at",
}

type ChargeRepository struct {
	pool *pgxpool.Pool
	psql squirrel.StatementBuilderType
}

func NewChargeRepository(pool *pgxpool.Pool) *ChargeRepository {
	return &ChargeRepository{
		pool: pool,
		psql: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCharge(row pgx.Row) (*model.PixCharge, error) {
	c := &model.PixCharge{}
	err := row.Scan(&c.ID, &c.TransactionID, &c.Amount, &c.PixKey, &c.MerchantName, &c.MerchantCity,
		&c.Payload, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *ChargeRepository) Insert(ctx context.Context, c *model.PixCharge) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO pix_charges (transaction_id, amount, pix_key, merchant_name, merchant_city, payload, status)
		VALUES ($1, $2::text::numeric, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		c.TransactionID, c.Amount, c.PixKey, c.MerchantName, c.MerchantCity, c.Payload, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *ChargeRepository) FindByID(ctx context.Context, id string) (*model.PixCharge, error) {
	query, args, err := r.psql.Select(chargeColumns...).
		From("pix_charges").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return scanCharge(r.pool.QueryRow(ctx, query, args...))
}

// UpdateStatus moves a charge out of fromStatus. It returns model.ErrNotFound
// when no charge with that id is currently in fromStatus.
func (r *ChargeRepository) UpdateStatus(ctx context.Context, id, fromStatus, toStatus string) (*model.PixCharge, error) {
	query, args, err := r.psql.Update("pix_charges").
		Set("status", toStatus).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": fromStatus}).
		Suffix("RETURNING " + strings.Join(chargeColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return scanCharge(r.pool.QueryRow(ctx, query, args...))
}

func applyChargeFilter(b squirrel.SelectBuilder, f model.ChargeFilter) squirrel.SelectBuilder {
	if f.Status != "" {
		b = b.Where(squirrel.Eq{"status": f.Status})
	}
	if f.DateFrom != "" {
		b = b.Where(squirrel.GtOrEq{"created_at": f.DateFrom})
	}
	if f.DateTo != "" {
		b = b.Where(createdUntil(f.DateTo))
	}
	return b
}

// createdUntil bounds created_at by dateTo. A plain day includes the whole day.
func createdUntil(dateTo string) squirrel.Sqlizer {
	if day, err := time.Parse(dto.DateOnlyLayout, dateTo); err == nil {
		return squirrel.Lt{"created_at": day.AddDate(0, 0, 1).Format(dto.DateOnlyLayout)}
	}
	return squirrel.LtOrEq{"created_at": dateTo}
}

func (r *ChargeRepository) List(ctx context.Context, f model.ChargeFilter) ([]model.PixCharge, int, error) {
	countQuery, countArgs, err := applyChargeFilter(r.psql.Select("COUNT(*)").From("pix_charges"), f).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count charges: %w", err)
	}

	query, args, err := applyChargeFilter(r.psql.Select(chargeColumns...).From("pix_charges"), f).
		OrderBy("created_at DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list charges: %w", err)
	}
	defer rows.Close()

	charges := make([]model.PixCharge, 0, f.Limit)
	for rows.Next() {
		c, err := scanCharge(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan charge: %w", err)
		}
		charges = append(charges, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate charges: %w", err)
	}

	return charges, total, nil
}

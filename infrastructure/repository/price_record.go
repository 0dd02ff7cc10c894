package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/tradelite-api/infrastructure/database/postgres"
	"github.com/vfg2006/tradelite-api/internal/domain"
)

const priceRecordTable = "price_records"

// PriceRecordRepository guarda o histórico de preços registrados por loja e SKU
type PriceRecordRepository interface {
	Save(ctx context.Context, record domain.PriceRecord) error
	LastPrice(ctx context.Context, store, productSKU string) (*domain.PriceRecord, error)
}

type priceRecordRepository struct {
	conn postgres.Conn
}

func NewPriceRecordRepository(conn postgres.Conn) PriceRecordRepository {
	return &priceRecordRepository{
		conn: conn,
	}
}

func (r *priceRecordRepository) Save(ctx context.Context, record domain.PriceRecord) error {
	var promoterID sql.NullInt64
	if record.PromoterID != nil {
		promoterID = sql.NullInt64{Int64: int64(*record.PromoterID), Valid: true}
	}

	query, args, err := squirrel.
		Insert(priceRecordTable).
		Columns("store", "product_sku", "price", "promoter_id", "registered_at").
		Values(
			record.Store,
			record.ProductSKU,
			decimal.NewFromFloat(record.Price).StringFixed(2),
			promoterID,
			record.RegisteredAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir preço de %s em %s: %w", record.ProductSKU, record.Store, err)
	}

	return nil
}

func (r *priceRecordRepository) LastPrice(ctx context.Context, store, productSKU string) (*domain.PriceRecord, error) {
	query, args, err := squirrel.
		Select("store", "product_sku", "price", "promoter_id", "registered_at").
		From(priceRecordTable).
		Where(squirrel.Eq{"store": store, "product_sku": productSKU}).
		OrderBy("registered_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		record     domain.PriceRecord
		price      decimal.Decimal
		promoterID sql.NullInt64
	)

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&record.Store,
		&record.ProductSKU,
		&price,
		&promoterID,
		&record.RegisteredAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar último preço de %s em %s: %w", productSKU, store, err)
	}

	record.Price = price.InexactFloat64()
	if promoterID.Valid {
		id := int(promoterID.Int64)
		record.PromoterID = &id
	}

	return &record, nil
}

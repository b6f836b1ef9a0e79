package readstore

import (
	"context"

	"fitroom-backend/internal/infra"
	"fitroom-backend/internal/pkg/pgconv"
	"fitroom-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type itemReadStoreImpl struct {
	pool *pgxpool.Pool
}

func NewItemReadStore(pool *pgxpool.Pool) queries.ItemReadStore {
	return &itemReadStoreImpl{pool: pool}
}

func (s *itemReadStoreImpl) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	const query = `
		SELECT id, name, sku, price_cents, created_at, updated_at
		FROM items
		WHERE id = $1 AND is_active = TRUE AND is_deleted = FALSE`

	var (
		itemID     pgtype.UUID
		name       string
		sku        string
		priceCents int64
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)

	err := s.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&itemID, &name, &sku, &priceCents, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapPgErr("failed to find item", err)
	}

	return &queries.ItemView{
		ID:         uuid.UUID(itemID.Bytes),
		Name:       name,
		SKU:        sku,
		PriceCents: priceCents,
		CreatedAt:  pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:  pgconv.TimeFromPgtype(updatedAt),
	}, nil
}

func (s *itemReadStoreImpl) FindAllActive(ctx context.Context) ([]*queries.ItemView, error) {
	const query = `
		SELECT id, name, sku, price_cents, created_at, updated_at
		FROM items
		WHERE is_active = TRUE AND is_deleted = FALSE
		ORDER BY name ASC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapPgErr("failed to list items", err)
	}
	defer rows.Close()

	views := make([]*queries.ItemView, 0)
	for rows.Next() {
		var (
			itemID     pgtype.UUID
			name       string
			sku        string
			priceCents int64
			createdAt  pgtype.Timestamptz
			updatedAt  pgtype.Timestamptz
		)
		if err := rows.Scan(&itemID, &name, &sku, &priceCents, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapPgErr("failed to scan item row", err)
		}
		views = append(views, &queries.ItemView{
			ID:         uuid.UUID(itemID.Bytes),
			Name:       name,
			SKU:        sku,
			PriceCents: priceCents,
			CreatedAt:  pgconv.TimeFromPgtype(createdAt),
			UpdatedAt:  pgconv.TimeFromPgtype(updatedAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapPgErr("failed to read item rows", err)
	}
	return views, nil
}

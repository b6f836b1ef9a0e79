package readstore

import (
	"context"

	"fitroom-backend/internal/infra"
	"fitroom-backend/internal/pkg/pgconv"
	"fitroom-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type fittingRoomReadStoreImpl struct {
	pool *pgxpool.Pool
}

func NewFittingRoomReadStore(pool *pgxpool.Pool) queries.FittingRoomReadStore {
	return &fittingRoomReadStoreImpl{pool: pool}
}

const requestListColumns = `
	r.id, r.user_id, r.item_id, i.name, r.status, r.staff_message, r.created_at`

func (s *fittingRoomReadStoreImpl) FindByID(ctx context.Context, id uuid.UUID) (*queries.FittingRoomRequestView, error) {
	const query = `
		SELECT r.id, r.user_id, u.email, r.item_id, i.name,
		       r.status, r.staff_message,
		       r.handled_by_staff_id, r.handled_at,
		       r.created_at, r.updated_at
		FROM fitting_room_requests r
		JOIN users u ON u.id = r.user_id
		JOIN items i ON i.id = r.item_id
		WHERE r.id = $1 AND r.is_deleted = FALSE`

	var (
		rID              pgtype.UUID
		userID           pgtype.UUID
		userEmail        string
		itemID           pgtype.UUID
		itemName         string
		status           string
		staffMessage     string
		handledByStaffID pgtype.UUID
		handledAt        pgtype.Timestamptz
		createdAt        pgtype.Timestamptz
		updatedAt        pgtype.Timestamptz
	)

	err := s.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&rID, &userID, &userEmail, &itemID, &itemName,
		&status, &staffMessage,
		&handledByStaffID, &handledAt,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapPgErr("failed to find fitting room request", err)
	}

	return &queries.FittingRoomRequestView{
		ID:               uuid.UUID(rID.Bytes),
		UserID:           uuid.UUID(userID.Bytes),
		UserEmail:        userEmail,
		ItemID:           uuid.UUID(itemID.Bytes),
		ItemName:         itemName,
		Status:           status,
		StaffMessage:     staffMessage,
		HandledByStaffID: pgconv.UUIDPtrFromPgtype(handledByStaffID),
		HandledAt:        pgconv.TimePtrFromPgtype(handledAt),
		CreatedAt:        pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:        pgconv.TimeFromPgtype(updatedAt),
	}, nil
}

func (s *fittingRoomReadStoreImpl) FindAll(ctx context.Context) ([]*queries.FittingRoomRequestListItem, error) {
	const query = `
		SELECT ` + requestListColumns + `
		FROM fitting_room_requests r
		JOIN items i ON i.id = r.item_id
		WHERE r.is_deleted = FALSE
		ORDER BY r.created_at DESC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapPgErr("failed to list fitting room requests", err)
	}
	defer rows.Close()

	return scanRequestList(rows)
}

func (s *fittingRoomReadStoreImpl) FindByStatus(ctx context.Context, status string) ([]*queries.FittingRoomRequestListItem, error) {
	const query = `
		SELECT ` + requestListColumns + `
		FROM fitting_room_requests r
		JOIN items i ON i.id = r.item_id
		WHERE r.status = $1 AND r.is_deleted = FALSE
		ORDER BY r.created_at DESC`

	rows, err := s.pool.Query(ctx, query, status)
	if err != nil {
		return nil, infra.WrapPgErr("failed to list fitting room requests by status", err)
	}
	defer rows.Close()

	return scanRequestList(rows)
}

func (s *fittingRoomReadStoreImpl) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.FittingRoomRequestListItem, error) {
	const query = `
		SELECT ` + requestListColumns + `
		FROM fitting_room_requests r
		JOIN items i ON i.id = r.item_id
		WHERE r.user_id = $1 AND r.is_deleted = FALSE
		ORDER BY r.created_at DESC`

	rows, err := s.pool.Query(ctx, query, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapPgErr("failed to list fitting room requests for user", err)
	}
	defer rows.Close()

	return scanRequestList(rows)
}

func scanRequestList(rows pgx.Rows) ([]*queries.FittingRoomRequestListItem, error) {
	items := make([]*queries.FittingRoomRequestListItem, 0)
	for rows.Next() {
		var (
			rID          pgtype.UUID
			userID       pgtype.UUID
			itemID       pgtype.UUID
			itemName     string
			status       string
			staffMessage string
			createdAt    pgtype.Timestamptz
		)
		if err := rows.Scan(&rID, &userID, &itemID, &itemName, &status, &staffMessage, &createdAt); err != nil {
			return nil, infra.WrapPgErr("failed to scan fitting room request row", err)
		}
		items = append(items, &queries.FittingRoomRequestListItem{
			ID:           uuid.UUID(rID.Bytes),
			UserID:       uuid.UUID(userID.Bytes),
			ItemID:       uuid.UUID(itemID.Bytes),
			ItemName:     itemName,
			Status:       status,
			StaffMessage: staffMessage,
			CreatedAt:    pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapPgErr("failed to read fitting room request rows", err)
	}
	return items, nil
}

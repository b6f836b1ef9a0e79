package repository

import (
	"context"

	"fitroom-backend/internal/domain/fittingroom"
	"fitroom-backend/internal/infra"
	"fitroom-backend/internal/infra/db"
	"fitroom-backend/internal/pkg/pgconv"
	"fitroom-backend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type fittingRoomRepositoryImpl struct{}

func NewFittingRoomRepository() commands.FittingRoomRepository {
	return &fittingRoomRepositoryImpl{}
}

func (r *fittingRoomRepositoryImpl) Create(ctx context.Context, tx db.DBTX, req *fittingroom.Request) error {
	const query = `
		INSERT INTO fitting_room_requests (
			id, user_id, item_id, status, staff_message,
			handled_by_staff_id, handled_at,
			is_deleted, deleted_by_staff_id, deleted_at,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := tx.Exec(ctx, query,
		pgconv.UUIDToPgtype(req.ID()),
		pgconv.UUIDToPgtype(req.UserID()),
		pgconv.UUIDToPgtype(req.ItemID()),
		req.Status().String(),
		req.StaffMessage(),
		pgconv.UUIDPtrToPgtype(req.HandledByStaffID()),
		pgconv.TimePtrToPgtype(req.HandledAt()),
		req.IsDeleted(),
		pgconv.UUIDPtrToPgtype(req.DeletedByStaffID()),
		pgconv.TimePtrToPgtype(req.DeletedAt()),
		pgconv.TimeToPgtype(req.CreatedAt()),
		pgconv.TimeToPgtype(req.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapPgErr("failed to create fitting room request", err)
	}
	return nil
}

func (r *fittingRoomRepositoryImpl) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*fittingroom.Request, error) {
	const query = `
		SELECT id, user_id, item_id, status, staff_message,
		       handled_by_staff_id, handled_at,
		       is_deleted, deleted_by_staff_id, deleted_at,
		       created_at, updated_at
		FROM fitting_room_requests
		WHERE id = $1 AND is_deleted = FALSE
		FOR UPDATE`

	row := tx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id))
	return scanRequest(row)
}

func (r *fittingRoomRepositoryImpl) Update(ctx context.Context, tx db.DBTX, req *fittingroom.Request) error {
	const query = `
		UPDATE fitting_room_requests
		SET status = $2, staff_message = $3,
		    handled_by_staff_id = $4, handled_at = $5,
		    is_deleted = $6, deleted_by_staff_id = $7, deleted_at = $8,
		    updated_at = $9
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		pgconv.UUIDToPgtype(req.ID()),
		req.Status().String(),
		req.StaffMessage(),
		pgconv.UUIDPtrToPgtype(req.HandledByStaffID()),
		pgconv.TimePtrToPgtype(req.HandledAt()),
		req.IsDeleted(),
		pgconv.UUIDPtrToPgtype(req.DeletedByStaffID()),
		pgconv.TimePtrToPgtype(req.DeletedAt()),
		pgconv.TimeToPgtype(req.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapPgErr("failed to update fitting room request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("fitting room request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *fittingRoomRepositoryImpl) HasUnresolved(ctx context.Context, tx db.DBTX, userID, itemID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM fitting_room_requests
			WHERE user_id = $1 AND item_id = $2
			  AND status = 'new_request' AND is_deleted = FALSE
		)`

	var exists bool
	err := tx.QueryRow(ctx, query, pgconv.UUIDToPgtype(userID), pgconv.UUIDToPgtype(itemID)).Scan(&exists)
	if err != nil {
		return false, infra.WrapPgErr("failed to check for unresolved request", err)
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (*fittingroom.Request, error) {
	var (
		id               pgtype.UUID
		userID           pgtype.UUID
		itemID           pgtype.UUID
		status           string
		staffMessage     string
		handledByStaffID pgtype.UUID
		handledAt        pgtype.Timestamptz
		isDeleted        bool
		deletedByStaffID pgtype.UUID
		deletedAt        pgtype.Timestamptz
		createdAt        pgtype.Timestamptz
		updatedAt        pgtype.Timestamptz
	)

	err := row.Scan(
		&id, &userID, &itemID, &status, &staffMessage,
		&handledByStaffID, &handledAt,
		&isDeleted, &deletedByStaffID, &deletedAt,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapPgErr("failed to scan fitting room request", err)
	}

	st, err := fittingroom.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid status in database", err)
	}

	return fittingroom.ReconstructRequest(
		uuid.UUID(id.Bytes),
		uuid.UUID(userID.Bytes),
		uuid.UUID(itemID.Bytes),
		st,
		staffMessage,
		pgconv.UUIDPtrFromPgtype(handledByStaffID),
		pgconv.TimePtrFromPgtype(handledAt),
		isDeleted,
		pgconv.UUIDPtrFromPgtype(deletedByStaffID),
		pgconv.TimePtrFromPgtype(deletedAt),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

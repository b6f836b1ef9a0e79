package repository

import (
	"context"

	"fitroom-backend/internal/domain/notification"
	"fitroom-backend/internal/infra"
	"fitroom-backend/internal/infra/db"
	"fitroom-backend/internal/pkg/pgconv"
	"fitroom-backend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type notificationRepositoryImpl struct{}

func NewNotificationRepository() commands.NotificationRepository {
	return &notificationRepositoryImpl{}
}

func (r *notificationRepositoryImpl) Create(ctx context.Context, tx db.DBTX, n *notification.Notification) error {
	const query = `
		INSERT INTO notifications (
			id, event, title, message,
			user_id, group_name, item_id, request_id,
			response, responded_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	var group pgtype.Text
	if n.Group() != "" {
		group = pgconv.StringToPgtype(n.Group())
	}

	_, err := tx.Exec(ctx, query,
		pgconv.UUIDToPgtype(n.ID()),
		n.Event().String(),
		n.Title(),
		n.Message(),
		pgconv.UUIDPtrToPgtype(n.UserID()),
		group,
		pgconv.UUIDPtrToPgtype(n.ItemID()),
		pgconv.UUIDPtrToPgtype(n.RequestID()),
		pgconv.StringPtrToPgtype(n.Response()),
		pgconv.TimePtrToPgtype(n.RespondedAt()),
		pgconv.TimeToPgtype(n.CreatedAt()),
	)
	if err != nil {
		return infra.WrapPgErr("failed to create notification", err)
	}
	return nil
}

func (r *notificationRepositoryImpl) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*notification.Notification, error) {
	const query = `
		SELECT id, event, title, message,
		       user_id, group_name, item_id, request_id,
		       response, responded_at, created_at
		FROM notifications
		WHERE id = $1
		FOR UPDATE`

	var (
		nID         pgtype.UUID
		event       string
		title       string
		message     string
		userID      pgtype.UUID
		group       pgtype.Text
		itemID      pgtype.UUID
		requestID   pgtype.UUID
		response    pgtype.Text
		respondedAt pgtype.Timestamptz
		createdAt   pgtype.Timestamptz
	)

	err := tx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&nID, &event, &title, &message,
		&userID, &group, &itemID, &requestID,
		&response, &respondedAt, &createdAt,
	)
	if err != nil {
		return nil, infra.WrapPgErr("failed to find notification", err)
	}

	groupName := ""
	if group.Valid {
		groupName = group.String
	}

	return notification.ReconstructNotification(
		uuid.UUID(nID.Bytes),
		notification.Event(event),
		title,
		message,
		pgconv.UUIDPtrFromPgtype(userID),
		groupName,
		pgconv.UUIDPtrFromPgtype(itemID),
		pgconv.UUIDPtrFromPgtype(requestID),
		pgconv.StringPtrFromPgtype(response),
		pgconv.TimePtrFromPgtype(respondedAt),
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

func (r *notificationRepositoryImpl) UpdateResponse(ctx context.Context, tx db.DBTX, n *notification.Notification) error {
	const query = `
		UPDATE notifications
		SET response = $2, responded_at = $3
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		pgconv.UUIDToPgtype(n.ID()),
		pgconv.StringPtrToPgtype(n.Response()),
		pgconv.TimePtrToPgtype(n.RespondedAt()),
	)
	if err != nil {
		return infra.WrapPgErr("failed to update notification response", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}

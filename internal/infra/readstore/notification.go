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

type notificationReadStoreImpl struct {
	pool *pgxpool.Pool
}

func NewNotificationReadStore(pool *pgxpool.Pool) queries.NotificationReadStore {
	return &notificationReadStoreImpl{pool: pool}
}

const notificationColumns = `
	id, event, title, message, user_id, group_name, item_id, request_id,
	response, responded_at, created_at`

func (s *notificationReadStoreImpl) FindByID(ctx context.Context, id uuid.UUID) (*queries.NotificationView, error) {
	const query = `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE id = $1`

	row := s.pool.QueryRow(ctx, query, pgconv.UUIDToPgtype(id))
	view, err := scanNotification(row)
	if err != nil {
		return nil, infra.WrapPgErr("failed to find notification", err)
	}
	return view, nil
}

func (s *notificationReadStoreImpl) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.NotificationView, error) {
	const query = `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapPgErr("failed to list notifications for user", err)
	}
	defer rows.Close()

	views := make([]*queries.NotificationView, 0)
	for rows.Next() {
		view, scanErr := scanNotification(rows)
		if scanErr != nil {
			return nil, infra.WrapPgErr("failed to scan notification row", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapPgErr("failed to read notification rows", err)
	}
	return views, nil
}

func scanNotification(row pgx.Row) (*queries.NotificationView, error) {
	var (
		id          pgtype.UUID
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

	err := row.Scan(
		&id, &event, &title, &message,
		&userID, &group, &itemID, &requestID,
		&response, &respondedAt, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	groupName := ""
	if group.Valid {
		groupName = group.String
	}

	return &queries.NotificationView{
		ID:          uuid.UUID(id.Bytes),
		Event:       event,
		Title:       title,
		Message:     message,
		UserID:      pgconv.UUIDPtrFromPgtype(userID),
		Group:       groupName,
		ItemID:      pgconv.UUIDPtrFromPgtype(itemID),
		RequestID:   pgconv.UUIDPtrFromPgtype(requestID),
		Response:    pgconv.StringPtrFromPgtype(response),
		RespondedAt: pgconv.TimePtrFromPgtype(respondedAt),
		CreatedAt:   pgconv.TimeFromPgtype(createdAt),
	}, nil
}

package queries

import (
	"context"

	"fitroom-backend/internal/infra"
	"fitroom-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errs.New("notification not found")

type NotificationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*NotificationView, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*NotificationView, error)
}

type NotificationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*NotificationView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	readStore NotificationReadStore
}

func NewNotificationQueries(readStore NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{readStore: readStore}
}

func (q *notificationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*NotificationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *notificationQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]*NotificationView, error) {
	return q.readStore.FindByUserID(ctx, userID)
}

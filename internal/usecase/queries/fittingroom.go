package queries

import (
	"context"

	"fitroom-backend/internal/domain/fittingroom"
	"fitroom-backend/internal/infra"
	"fitroom-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRequestNotFound = errs.New("fitting room request not found")

type FittingRoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*FittingRoomRequestView, error)
	ListAll(ctx context.Context) ([]*FittingRoomRequestListItem, error)
	ListByStatus(ctx context.Context, status fittingroom.Status) ([]*FittingRoomRequestListItem, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*FittingRoomRequestListItem, error)
}

// FittingRoomReadStore is the read side port. All finders exclude
// soft-deleted rows and order newest first.
type FittingRoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FittingRoomRequestView, error)
	FindAll(ctx context.Context) ([]*FittingRoomRequestListItem, error)
	FindByStatus(ctx context.Context, status string) ([]*FittingRoomRequestListItem, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*FittingRoomRequestListItem, error)
}

type fittingRoomQueriesImpl struct {
	readStore FittingRoomReadStore
}

func NewFittingRoomQueries(readStore FittingRoomReadStore) FittingRoomQueries {
	return &fittingRoomQueriesImpl{readStore: readStore}
}

func (q *fittingRoomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*FittingRoomRequestView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *fittingRoomQueriesImpl) ListAll(ctx context.Context) ([]*FittingRoomRequestListItem, error) {
	return q.readStore.FindAll(ctx)
}

func (q *fittingRoomQueriesImpl) ListByStatus(ctx context.Context, status fittingroom.Status) ([]*FittingRoomRequestListItem, error) {
	return q.readStore.FindByStatus(ctx, status.String())
}

func (q *fittingRoomQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]*FittingRoomRequestListItem, error) {
	return q.readStore.FindByUserID(ctx, userID)
}

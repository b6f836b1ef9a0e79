package queries

import (
	"context"

	"fitroom-backend/internal/infra"
	"fitroom-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrItemNotFound = errs.New("item not found")

type ItemQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	ListAll(ctx context.Context) ([]*ItemView, error)
}

// ItemReadStore exposes the catalog read side. Inactive and soft-deleted
// items are treated as absent.
type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	FindAllActive(ctx context.Context) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	readStore ItemReadStore
}

func NewItemQueries(readStore ItemReadStore) ItemQueries {
	return &itemQueriesImpl{readStore: readStore}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ItemView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *itemQueriesImpl) ListAll(ctx context.Context) ([]*ItemView, error) {
	return q.readStore.FindAllActive(ctx)
}

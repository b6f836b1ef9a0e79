package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fitroom-backend/internal/domain/fittingroom"
	"fitroom-backend/internal/domain/notification"
	"fitroom-backend/internal/infra"
	"fitroom-backend/internal/infra/db"
	"fitroom-backend/internal/pkg/clock"
	"fitroom-backend/internal/pkg/config"
	"fitroom-backend/internal/pkg/errs"
	"fitroom-backend/internal/usecase/queries"
	"fitroom-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrItemNotFound            = errs.New("item not found")
	ErrRequestNotFound         = errs.New("fitting room request not found")
	ErrDuplicateRequest        = errs.New("unresolved request already exists for this item")
	ErrRequestAlreadyHandled   = errs.New("request already handled")
	ErrNotRequestOwner         = errs.New("request belongs to another user")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// FittingRoomRepository is the write side port. FindByIDForUpdate locks the
// row and treats soft-deleted requests as absent.
type FittingRoomRepository interface {
	Create(ctx context.Context, tx db.DBTX, req *fittingroom.Request) error
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*fittingroom.Request, error)
	Update(ctx context.Context, tx db.DBTX, req *fittingroom.Request) error
	HasUnresolved(ctx context.Context, tx db.DBTX, userID, itemID uuid.UUID) (bool, error)
}

type ItemReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error)
}

// Notifier delivers best-effort messages. Errors are logged by the caller
// and never fail a lifecycle operation.
type Notifier interface {
	NotifyUser(ctx context.Context, userID uuid.UUID, event notification.Event, title, message string, refs notification.Refs) error
	NotifyGroup(ctx context.Context, group string, event notification.Event, title, message string, refs notification.Refs) error
}

type FittingRoomCommands interface {
	Create(ctx context.Context, userID, itemID uuid.UUID) (*queries.FittingRoomRequestView, error)
	Complete(ctx context.Context, requestID, staffID uuid.UUID) (*queries.FittingRoomRequestView, error)
	CancelByStaff(ctx context.Context, requestID, staffID uuid.UUID) (*queries.FittingRoomRequestView, error)
	CancelOwn(ctx context.Context, requestID, userID uuid.UUID) (*queries.FittingRoomRequestView, error)
	Delete(ctx context.Context, requestID, staffID uuid.UUID) error
}

type fittingRoomCommandsImpl struct {
	repo      FittingRoomRepository
	items     ItemReader
	views     queries.FittingRoomQueries
	notifier  Notifier
	pool      *pgxpool.Pool
	clock     clock.Clock
	scheduler clock.Scheduler
	cfg       config.FittingRoomConfig
}

func NewFittingRoomCommands(
	repo FittingRoomRepository,
	items ItemReader,
	views queries.FittingRoomQueries,
	notifier Notifier,
	pool *pgxpool.Pool,
	clk clock.Clock,
	scheduler clock.Scheduler,
	cfg config.FittingRoomConfig,
) FittingRoomCommands {
	return &fittingRoomCommandsImpl{
		repo:      repo,
		items:     items,
		views:     views,
		notifier:  notifier,
		pool:      pool,
		clock:     clk,
		scheduler: scheduler,
		cfg:       cfg,
	}
}

func (c *fittingRoomCommandsImpl) Create(ctx context.Context, userID, itemID uuid.UUID) (*queries.FittingRoomRequestView, error) {
	itemView, err := c.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	req := fittingroom.NewRequest(userID, itemID, c.clock.Now())

	_, err = shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		unresolved, txErr := c.repo.HasUnresolved(ctx, tx, userID, itemID)
		if txErr != nil {
			return struct{}{}, errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		if unresolved {
			return struct{}{}, ErrDuplicateRequest
		}

		if txErr := c.repo.Create(ctx, tx, req); txErr != nil {
			// Partial unique index backstops the check above under concurrency.
			if infra.IsKind(txErr, infra.KindDuplicateKey) {
				return struct{}{}, ErrDuplicateRequest
			}
			return struct{}{}, errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}

	requestID := req.ID()
	c.scheduler.AfterFunc(c.cfg.AutoCompleteAfter, func() {
		c.autoComplete(requestID)
	})

	refs := notification.Refs{ItemID: &itemID, RequestID: &requestID}
	if notifyErr := c.notifier.NotifyUser(ctx, userID,
		notification.EventRequestReceived,
		"Fitting room request received",
		fittingroom.MessagePending,
		refs,
	); notifyErr != nil {
		slog.Warn("failed to notify user about new request", "request_id", requestID, "error", notifyErr)
	}
	if notifyErr := c.notifier.NotifyGroup(ctx, c.cfg.StaffGroup,
		notification.EventRequestReceived,
		"New fitting room request",
		"New request for "+itemView.Name,
		refs,
	); notifyErr != nil {
		slog.Warn("failed to notify staff about new request", "request_id", requestID, "error", notifyErr)
	}

	return c.views.GetByID(ctx, requestID)
}

func (c *fittingRoomCommandsImpl) Complete(ctx context.Context, requestID, staffID uuid.UUID) (*queries.FittingRoomRequestView, error) {
	req, err := c.transition(ctx, requestID, func(req *fittingroom.Request) error {
		return req.Complete(staffID, c.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	c.notifyRequester(ctx, req, notification.EventRequestCompleted, "Fitting room request completed")

	return c.views.GetByID(ctx, requestID)
}

func (c *fittingRoomCommandsImpl) CancelByStaff(ctx context.Context, requestID, staffID uuid.UUID) (*queries.FittingRoomRequestView, error) {
	req, err := c.transition(ctx, requestID, func(req *fittingroom.Request) error {
		return req.CancelByStaff(staffID, c.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	c.notifyRequester(ctx, req, notification.EventRequestCancelled, "Fitting room request cancelled")

	return c.views.GetByID(ctx, requestID)
}

func (c *fittingRoomCommandsImpl) CancelOwn(ctx context.Context, requestID, userID uuid.UUID) (*queries.FittingRoomRequestView, error) {
	// The caller already knows the outcome, so no notification here.
	_, err := c.transition(ctx, requestID, func(req *fittingroom.Request) error {
		return req.CancelByOwner(userID, c.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	return c.views.GetByID(ctx, requestID)
}

func (c *fittingRoomCommandsImpl) Delete(ctx context.Context, requestID, staffID uuid.UUID) error {
	_, err := c.transition(ctx, requestID, func(req *fittingroom.Request) error {
		return req.SoftDelete(staffID, c.clock.Now())
	})
	return err
}

// transition runs a read-modify-write on one request under a row lock and
// maps domain errors to command sentinels.
func (c *fittingRoomCommandsImpl) transition(
	ctx context.Context,
	requestID uuid.UUID,
	apply func(req *fittingroom.Request) error,
) (*fittingroom.Request, error) {
	return shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (*fittingroom.Request, error) {
		req, err := c.repo.FindByIDForUpdate(ctx, tx, requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrRequestNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := apply(req); err != nil {
			switch err {
			case fittingroom.ErrAlreadyHandled:
				return nil, ErrRequestAlreadyHandled
			case fittingroom.ErrNotOwner:
				return nil, ErrNotRequestOwner
			case fittingroom.ErrDeleted, fittingroom.ErrAlreadyDeleted:
				return nil, ErrRequestNotFound
			default:
				return nil, err
			}
		}

		if err := c.repo.Update(ctx, tx, req); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return req, nil
	})
}

// autoComplete runs when the per-request timer fires. It re-reads current
// state; a request already resolved or deleted makes this a silent no-op.
func (c *fittingRoomCommandsImpl) autoComplete(requestID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := c.transition(ctx, requestID, func(req *fittingroom.Request) error {
		return req.AutoComplete(c.clock.Now())
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrRequestAlreadyHandled), errors.Is(err, ErrRequestNotFound):
			// Staff (or the user) got there first. Desired end state reached.
			return
		default:
			slog.Error("auto-complete failed", "request_id", requestID, "error", err)
			return
		}
	}

	c.notifyRequester(ctx, req, notification.EventRequestReady, "Your item is ready")
}

func (c *fittingRoomCommandsImpl) notifyRequester(ctx context.Context, req *fittingroom.Request, event notification.Event, title string) {
	itemID := req.ItemID()
	requestID := req.ID()
	refs := notification.Refs{ItemID: &itemID, RequestID: &requestID}

	if err := c.notifier.NotifyUser(ctx, req.UserID(), event, title, req.StaffMessage(), refs); err != nil {
		slog.Warn("failed to notify user about request transition",
			"request_id", requestID,
			"event", event,
			"error", err)
	}
}

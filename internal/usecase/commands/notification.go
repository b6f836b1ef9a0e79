package commands

import (
	"context"
	"log/slog"

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
	ErrNotificationNotFound = errs.New("notification not found")
	ErrNotNotificationOwner = errs.New("notification belongs to another user")
	ErrAlreadyResponded     = errs.New("notification already has a response")
	ErrInvalidNotification  = errs.New("invalid notification")
	ErrEmptyResponse        = errs.New("response text cannot be empty")
)

type NotificationRepository interface {
	Create(ctx context.Context, tx db.DBTX, n *notification.Notification) error
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*notification.Notification, error)
	UpdateResponse(ctx context.Context, tx db.DBTX, n *notification.Notification) error
}

// PushSender hands a payload to whatever real-time transport is connected.
// No subscriber is not an error worth surfacing; implementations may return
// one and callers only log it.
type PushSender interface {
	PushToUser(userID uuid.UUID, payload any) error
	PushToGroup(group string, payload any) error
}

type NotificationCommands interface {
	Notifier
	Respond(ctx context.Context, notificationID, userID uuid.UUID, response string) (*queries.NotificationView, error)
}

type notificationCommandsImpl struct {
	repo  NotificationRepository
	views queries.NotificationQueries
	push  PushSender
	pool  *pgxpool.Pool
	clock clock.Clock
	cfg   config.FittingRoomConfig
}

func NewNotificationCommands(
	repo NotificationRepository,
	views queries.NotificationQueries,
	push PushSender,
	pool *pgxpool.Pool,
	clk clock.Clock,
	cfg config.FittingRoomConfig,
) NotificationCommands {
	return &notificationCommandsImpl{
		repo:  repo,
		views: views,
		push:  push,
		pool:  pool,
		clock: clk,
		cfg:   cfg,
	}
}

// NotifyUser persists the notification, then pushes it. The row is the
// durable part; push failure is logged and swallowed.
func (c *notificationCommandsImpl) NotifyUser(ctx context.Context, userID uuid.UUID, event notification.Event, title, message string, refs notification.Refs) error {
	n, err := notification.NewUserNotification(userID, event, title, message, refs, c.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrInvalidNotification)
	}

	if err := c.repo.Create(ctx, c.pool, n); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.push.PushToUser(userID, toNotificationView(n)); err != nil {
		slog.Debug("push to user skipped", "user_id", userID, "event", event, "reason", err)
	}
	return nil
}

func (c *notificationCommandsImpl) NotifyGroup(ctx context.Context, group string, event notification.Event, title, message string, refs notification.Refs) error {
	n, err := notification.NewGroupNotification(group, event, title, message, refs, c.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrInvalidNotification)
	}

	if err := c.repo.Create(ctx, c.pool, n); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.push.PushToGroup(group, toNotificationView(n)); err != nil {
		slog.Debug("push to group skipped", "group", group, "event", event, "reason", err)
	}
	return nil
}

// Respond records a one-shot reply on a notification addressed to userID and
// relays the reply to the staff group.
func (c *notificationCommandsImpl) Respond(ctx context.Context, notificationID, userID uuid.UUID, response string) (*queries.NotificationView, error) {
	n, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (*notification.Notification, error) {
		n, txErr := c.repo.FindByIDForUpdate(ctx, tx, notificationID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return nil, ErrNotificationNotFound
			}
			return nil, errs.Mark(txErr, ErrDatabaseOperationFailed)
		}

		if n.UserID() == nil || *n.UserID() != userID {
			return nil, ErrNotNotificationOwner
		}

		if txErr := n.Respond(response, c.clock.Now()); txErr != nil {
			switch txErr {
			case notification.ErrAlreadyResponded:
				return nil, ErrAlreadyResponded
			case notification.ErrEmptyResponse:
				return nil, ErrEmptyResponse
			default:
				return nil, txErr
			}
		}

		if txErr := c.repo.UpdateResponse(ctx, tx, n); txErr != nil {
			return nil, errs.Mark(txErr, ErrDatabaseOperationFailed)
		}
		return n, nil
	})
	if err != nil {
		return nil, err
	}

	if notifyErr := c.NotifyGroup(ctx, c.cfg.StaffGroup,
		notification.EventStaffResponse,
		"Customer responded",
		response,
		notification.Refs{ItemID: n.ItemID(), RequestID: n.RequestID()},
	); notifyErr != nil {
		slog.Warn("failed to relay response to staff", "notification_id", notificationID, "error", notifyErr)
	}

	return c.views.GetByID(ctx, notificationID)
}

func toNotificationView(n *notification.Notification) *queries.NotificationView {
	return &queries.NotificationView{
		ID:          n.ID(),
		Event:       n.Event().String(),
		Title:       n.Title(),
		Message:     n.Message(),
		UserID:      n.UserID(),
		Group:       n.Group(),
		ItemID:      n.ItemID(),
		RequestID:   n.RequestID(),
		Response:    n.Response(),
		RespondedAt: n.RespondedAt(),
		CreatedAt:   n.CreatedAt(),
	}
}

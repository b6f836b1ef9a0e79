package components

import (
	"fitroom-backend/internal/handler"
	"fitroom-backend/internal/handler/api"
	"fitroom-backend/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewItemHandler,
		api.NewFittingRoomHandler,
		api.NewNotificationHandler,
		api.NewStreamHandler,
		middleware.NewAuthMiddleware,
		func(
			auth *api.AuthHandler,
			item *api.ItemHandler,
			fittingRoom *api.FittingRoomHandler,
			notification *api.NotificationHandler,
			stream *api.StreamHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:         auth,
				Item:         item,
				FittingRoom:  fittingRoom,
				Notification: notification,
				Stream:       stream,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)

package components

import (
	"fitroom-backend/internal/infra/push"
	"fitroom-backend/internal/infra/readstore"
	"fitroom-backend/internal/infra/repository"
	"fitroom-backend/internal/usecase/commands"
	"fitroom-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// Write side
		repository.NewFittingRoomRepository,
		repository.NewNotificationRepository,
		repository.NewUserRepository,

		// Read side
		readstore.NewFittingRoomReadStore,
		readstore.NewItemReadStore,
		readstore.NewNotificationReadStore,
		readstore.NewUserReadStore,

		// The item read store doubles as the command-side item lookup.
		func(s queries.ItemReadStore) commands.ItemReader { return s },

		// In-process push transport
		push.NewHub,
		func(h *push.Hub) commands.PushSender { return h },
	),
)

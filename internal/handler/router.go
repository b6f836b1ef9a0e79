package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fitroom-backend/internal/handler/api"
	"fitroom-backend/internal/handler/middleware"
	"fitroom-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Item         *api.ItemHandler
	FittingRoom  *api.FittingRoomHandler
	Notification *api.NotificationHandler
	Stream       *api.StreamHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		items := apiGroup.Group("/items")
		items.Use(authMiddleware.RequireAuth())
		{
			addRoutes(items, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Item.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Item.GetByID},
			})
		}

		requests := apiGroup.Group("/fitting-room-requests")
		requests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "", Handler: h.FittingRoom.Create},
				{Method: http.MethodGet, Path: "/mine", Handler: h.FittingRoom.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.FittingRoom.GetByID},
				{Method: http.MethodPut, Path: "/:id/cancel", Handler: h.FittingRoom.CancelOwn},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Notification.ListMine},
				{Method: http.MethodPost, Path: "/:id/respond", Handler: h.Notification.Respond},
			})
		}

		apiGroup.GET("/stream", authMiddleware.RequireAuth(), h.Stream.Stream)

		staff := apiGroup.Group("/staff")
		staff.Use(authMiddleware.RequireAuth(), authMiddleware.RequireStaff())
		{
			addRoutes(staff, []route{
				{Method: http.MethodGet, Path: "/fitting-room-requests", Handler: h.FittingRoom.ListAll},
				{Method: http.MethodPost, Path: "/fitting-room-requests/:id/complete", Handler: h.FittingRoom.Complete},
				{Method: http.MethodPost, Path: "/fitting-room-requests/:id/cancel", Handler: h.FittingRoom.Cancel},
				{Method: http.MethodDelete, Path: "/fitting-room-requests/:id", Handler: h.FittingRoom.Delete},
				{Method: http.MethodGet, Path: "/stream", Handler: h.Stream.StaffStream},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

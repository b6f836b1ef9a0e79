package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"fitroom-backend/internal/handler/httperr"
	"fitroom-backend/internal/handler/middleware"
	"fitroom-backend/internal/infra/push"
	"fitroom-backend/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const heartbeatInterval = 30 * time.Second

// StreamHandler serves Server-Sent Events. Each connection subscribes to the
// hub and relays payloads until the client disconnects.
type StreamHandler struct {
	hub *push.Hub
	cfg config.FittingRoomConfig
}

func NewStreamHandler(hub *push.Hub, cfg config.FittingRoomConfig) *StreamHandler {
	return &StreamHandler{hub: hub, cfg: cfg}
}

// @Summary Personal notification stream
// @Description SSE stream of notifications addressed to the current user
// @Tags stream
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "event stream"
// @Router /stream [get]
func (h *StreamHandler) Stream(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error")
		return
	}

	ch, cancel := h.hub.SubscribeUser(userID)
	defer cancel()

	h.relay(c, ch)
}

// @Summary Staff notification stream
// @Description SSE stream of notifications addressed to the staff group
// @Tags stream
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "event stream"
// @Router /staff/stream [get]
func (h *StreamHandler) StaffStream(c *gin.Context) {
	ch, cancel := h.hub.SubscribeGroup(h.cfg.StaffGroup)
	defer cancel()

	h.relay(c, ch)
}

func (h *StreamHandler) relay(c *gin.Context, ch <-chan any) {
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	clientGone := c.Request.Context().Done()

	c.Stream(func(w io.Writer) bool {
		select {
		case payload, open := <-ch:
			if !open {
				return false
			}
			c.SSEvent("notification", payload)
			return true
		case <-heartbeat.C:
			c.SSEvent("heartbeat", time.Now().Unix())
			return true
		case <-clientGone:
			return false
		}
	})
}

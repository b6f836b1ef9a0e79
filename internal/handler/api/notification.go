package api

import (
	"errors"
	"net/http"

	reqdto "fitroom-backend/internal/handler/dto/request"
	resdto "fitroom-backend/internal/handler/dto/response"
	"fitroom-backend/internal/handler/httperr"
	"fitroom-backend/internal/handler/middleware"
	"fitroom-backend/internal/usecase/commands"
	"fitroom-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	notificationCommands commands.NotificationCommands
	notificationQueries  queries.NotificationQueries
}

func NewNotificationHandler(
	notificationCommands commands.NotificationCommands,
	notificationQueries queries.NotificationQueries,
) *NotificationHandler {
	return &NotificationHandler{
		notificationCommands: notificationCommands,
		notificationQueries:  notificationQueries,
	}
}

// @Summary List own notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Router /notifications [get]
func (h *NotificationHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error")
		return
	}

	views, err := h.notificationQueries.ListForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	resp, err := resdto.FromNotificationViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Your notifications", resp))
}

// @Summary Respond to a notification
// @Description Record a one-shot reply; the reply is relayed to staff
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Param request body reqdto.RespondToNotificationRequest true "Response body"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /notifications/{id}/respond [post]
func (h *NotificationHandler) Respond(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error")
		return
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid notification ID")
		return
	}

	var req reqdto.RespondToNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.notificationCommands.Respond(c.Request.Context(), notificationID, userID, req.Response)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNotificationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Notification not found")
		case errors.Is(err, commands.ErrNotNotificationOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "You can only respond to your own notifications")
		case errors.Is(err, commands.ErrAlreadyResponded):
			httperr.AbortWithError(c, http.StatusConflict, err, "Notification already has a response")
		case errors.Is(err, commands.ErrEmptyResponse):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Response text cannot be empty")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	resp, err := resdto.FromNotificationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Response recorded", resp))
}

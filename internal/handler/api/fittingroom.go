package api

import (
	"context"
	"errors"
	"net/http"

	"fitroom-backend/internal/domain/fittingroom"
	reqdto "fitroom-backend/internal/handler/dto/request"
	resdto "fitroom-backend/internal/handler/dto/response"
	"fitroom-backend/internal/handler/httperr"
	"fitroom-backend/internal/handler/middleware"
	"fitroom-backend/internal/usecase/commands"
	"fitroom-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FittingRoomHandler struct {
	fittingRoomCommands commands.FittingRoomCommands
	fittingRoomQueries  queries.FittingRoomQueries
}

func NewFittingRoomHandler(
	fittingRoomCommands commands.FittingRoomCommands,
	fittingRoomQueries queries.FittingRoomQueries,
) *FittingRoomHandler {
	return &FittingRoomHandler{
		fittingRoomCommands: fittingRoomCommands,
		fittingRoomQueries:  fittingRoomQueries,
	}
}

// @Summary Create fitting room request
// @Description Ask for an item to be brought to a fitting room
// @Tags fitting-room
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFittingRoomRequest true "Request body"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /fitting-room-requests [post]
func (h *FittingRoomHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error")
		return
	}

	var req reqdto.CreateFittingRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.fittingRoomCommands.Create(c.Request.Context(), userID, req.ItemID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
		case errors.Is(err, commands.ErrDuplicateRequest):
			httperr.AbortWithError(c, http.StatusConflict, err, "An unresolved request for this item already exists")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	h.respondWithView(c, http.StatusCreated, "Fitting room request created", view)
}

// @Summary Get fitting room request
// @Tags fitting-room
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /fitting-room-requests/{id} [get]
func (h *FittingRoomHandler) GetByID(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID")
		return
	}

	view, err := h.fittingRoomQueries.GetByID(c.Request.Context(), requestID)
	if err != nil {
		if errors.Is(err, queries.ErrRequestNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Fitting room request not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	// Customers may only look at their own requests.
	if role, _ := middleware.GetUserRole(c); !role.IsStaff() {
		userID, ok := middleware.GetUserID(c)
		if !ok || view.UserID != userID {
			httperr.AbortWithError(c, http.StatusNotFound, queries.ErrRequestNotFound, "Fitting room request not found")
			return
		}
	}

	h.respondWithView(c, http.StatusOK, "Fitting room request", view)
}

// @Summary List own fitting room requests
// @Tags fitting-room
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Router /fitting-room-requests/mine [get]
func (h *FittingRoomHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error")
		return
	}

	views, err := h.fittingRoomQueries.ListForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	h.respondWithList(c, "Your fitting room requests", views)
}

// @Summary Cancel own fitting room request
// @Tags fitting-room
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fitting-room-requests/{id}/cancel [put]
func (h *FittingRoomHandler) CancelOwn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error")
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID")
		return
	}

	view, err := h.fittingRoomCommands.CancelOwn(c.Request.Context(), requestID, userID)
	if err != nil {
		h.abortWithLifecycleError(c, err)
		return
	}

	h.respondWithView(c, http.StatusOK, "Fitting room request cancelled", view)
}

// @Summary List fitting room requests (staff)
// @Description List all requests, optionally filtered by status
// @Tags fitting-room
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(new_request, completed, cancelled)
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Router /staff/fitting-room-requests [get]
func (h *FittingRoomHandler) ListAll(c *gin.Context) {
	statusParam := c.Query("status")

	var views []*queries.FittingRoomRequestListItem
	var err error
	if statusParam == "" {
		views, err = h.fittingRoomQueries.ListAll(c.Request.Context())
	} else {
		var status fittingroom.Status
		status, err = fittingroom.NewStatus(statusParam)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status filter")
			return
		}
		views, err = h.fittingRoomQueries.ListByStatus(c.Request.Context(), status)
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	h.respondWithList(c, "Fitting room requests", views)
}

// @Summary Complete fitting room request (staff)
// @Tags fitting-room
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /staff/fitting-room-requests/{id}/complete [post]
func (h *FittingRoomHandler) Complete(c *gin.Context) {
	h.staffTransition(c, "Fitting room request completed", h.fittingRoomCommands.Complete)
}

// @Summary Cancel fitting room request (staff)
// @Tags fitting-room
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /staff/fitting-room-requests/{id}/cancel [post]
func (h *FittingRoomHandler) Cancel(c *gin.Context) {
	h.staffTransition(c, "Fitting room request cancelled", h.fittingRoomCommands.CancelByStaff)
}

// @Summary Delete fitting room request (staff)
// @Description Soft-delete a request; it disappears from all listings
// @Tags fitting-room
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /staff/fitting-room-requests/{id} [delete]
func (h *FittingRoomHandler) Delete(c *gin.Context) {
	staffID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error")
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID")
		return
	}

	if err := h.fittingRoomCommands.Delete(c.Request.Context(), requestID, staffID); err != nil {
		h.abortWithLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.OK("Fitting room request deleted", nil))
}

func (h *FittingRoomHandler) staffTransition(
	c *gin.Context,
	message string,
	transition func(ctx context.Context, requestID, staffID uuid.UUID) (*queries.FittingRoomRequestView, error),
) {
	staffID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error")
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID")
		return
	}

	view, err := transition(c.Request.Context(), requestID, staffID)
	if err != nil {
		h.abortWithLifecycleError(c, err)
		return
	}

	h.respondWithView(c, http.StatusOK, message, view)
}

func (h *FittingRoomHandler) abortWithLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Fitting room request not found")
	case errors.Is(err, commands.ErrRequestAlreadyHandled):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Request has already been handled")
	case errors.Is(err, commands.ErrNotRequestOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "You can only cancel your own requests")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}

func (h *FittingRoomHandler) respondWithView(c *gin.Context, status int, message string, view *queries.FittingRoomRequestView) {
	resp, err := resdto.FromFittingRoomRequestView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(status, resdto.OK(message, resp))
}

func (h *FittingRoomHandler) respondWithList(c *gin.Context, message string, views []*queries.FittingRoomRequestListItem) {
	resp, err := resdto.FromFittingRoomRequestList(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.OK(message, resp))
}

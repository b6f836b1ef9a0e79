package api

import (
	"errors"
	"net/http"

	resdto "fitroom-backend/internal/handler/dto/response"
	"fitroom-backend/internal/handler/httperr"
	"fitroom-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemHandler struct {
	itemQueries queries.ItemQueries
}

func NewItemHandler(itemQueries queries.ItemQueries) *ItemHandler {
	return &ItemHandler{itemQueries: itemQueries}
}

// @Summary List items
// @Description List active catalog items available for fitting room requests
// @Tags items
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope
// @Router /items [get]
func (h *ItemHandler) List(c *gin.Context) {
	views, err := h.itemQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	resp, err := resdto.FromItemViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Items", resp))
}

// @Summary Get item
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [get]
func (h *ItemHandler) GetByID(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID")
		return
	}

	view, err := h.itemQueries.GetByID(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, queries.ErrItemNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	resp, err := resdto.FromItemView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Item", resp))
}

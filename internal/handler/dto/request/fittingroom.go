package request

import (
	"github.com/google/uuid"
)

type CreateFittingRoomRequest struct {
	ItemID uuid.UUID `json:"item_id" binding:"required"`
}

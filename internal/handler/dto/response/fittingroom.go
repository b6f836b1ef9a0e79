package response

import (
	"time"

	"fitroom-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type FittingRoomRequestResponse struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"user_id"`
	UserEmail        string     `json:"user_email"`
	ItemID           uuid.UUID  `json:"item_id"`
	ItemName         string     `json:"item_name"`
	Status           string     `json:"status"`
	StaffMessage     string     `json:"staff_message"`
	HandledByStaffID *uuid.UUID `json:"handled_by_staff_id,omitempty"`
	HandledAt        *time.Time `json:"handled_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type FittingRoomRequestListResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	ItemID       uuid.UUID `json:"item_id"`
	ItemName     string    `json:"item_name"`
	Status       string    `json:"status"`
	StaffMessage string    `json:"staff_message"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromFittingRoomRequestView(view *queries.FittingRoomRequestView) (*FittingRoomRequestResponse, error) {
	var resp FittingRoomRequestResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromFittingRoomRequestList(views []*queries.FittingRoomRequestListItem) ([]*FittingRoomRequestListResponse, error) {
	resp := make([]*FittingRoomRequestListResponse, 0, len(views))
	if err := copier.Copy(&resp, views); err != nil {
		return nil, err
	}
	return resp, nil
}

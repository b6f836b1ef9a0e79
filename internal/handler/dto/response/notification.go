package response

import (
	"time"

	"fitroom-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NotificationResponse struct {
	ID          uuid.UUID  `json:"id"`
	Event       string     `json:"event"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	ItemID      *uuid.UUID `json:"item_id,omitempty"`
	RequestID   *uuid.UUID `json:"request_id,omitempty"`
	Response    *string    `json:"response,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromNotificationView(view *queries.NotificationView) (*NotificationResponse, error) {
	var resp NotificationResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromNotificationViews(views []*queries.NotificationView) ([]*NotificationResponse, error) {
	resp := make([]*NotificationResponse, 0, len(views))
	if err := copier.Copy(&resp, views); err != nil {
		return nil, err
	}
	return resp, nil
}

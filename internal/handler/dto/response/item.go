package response

import (
	"time"

	"fitroom-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	SKU        string    `json:"sku"`
	PriceCents int64     `json:"price_cents"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromItemView(view *queries.ItemView) (*ItemResponse, error) {
	var resp ItemResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromItemViews(views []*queries.ItemView) ([]*ItemResponse, error) {
	resp := make([]*ItemResponse, 0, len(views))
	if err := copier.Copy(&resp, views); err != nil {
		return nil, err
	}
	return resp, nil
}

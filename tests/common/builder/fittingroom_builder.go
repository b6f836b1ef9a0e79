//go:build unit || e2e

package builder

import (
	"time"

	"fitroom-backend/internal/domain/fittingroom"
	"fitroom-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type FittingRoomRequestBuilder struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	ItemID           uuid.UUID
	Status           string
	StaffMessage     string
	HandledByStaffID *uuid.UUID
	HandledAt        *time.Time
	IsDeleted        bool
	CreatedAt        time.Time
}

func NewFittingRoomRequestBuilder() *FittingRoomRequestBuilder {
	return &FittingRoomRequestBuilder{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		ItemID:       uuid.New(),
		Status:       "new_request",
		StaffMessage: fittingroom.MessagePending,
		CreatedAt:    time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func (b *FittingRoomRequestBuilder) BuildDomain() (*fittingroom.Request, error) {
	status, err := fittingroom.NewStatus(b.Status)
	if err != nil {
		return nil, err
	}

	return fittingroom.ReconstructRequest(
		b.ID, b.UserID, b.ItemID,
		status,
		b.StaffMessage,
		b.HandledByStaffID,
		b.HandledAt,
		b.IsDeleted,
		nil, nil,
		b.CreatedAt, b.CreatedAt,
	), nil
}

func (b *FittingRoomRequestBuilder) BuildView() *queries.FittingRoomRequestView {
	return &queries.FittingRoomRequestView{
		ID:               b.ID,
		UserID:           b.UserID,
		UserEmail:        "test@example.com",
		ItemID:           b.ItemID,
		ItemName:         "Denim Jacket",
		Status:           b.Status,
		StaffMessage:     b.StaffMessage,
		HandledByStaffID: b.HandledByStaffID,
		HandledAt:        b.HandledAt,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.CreatedAt,
	}
}

func (b *FittingRoomRequestBuilder) BuildListItems(n int) []*queries.FittingRoomRequestListItem {
	items := make([]*queries.FittingRoomRequestListItem, n)
	for i := range items {
		items[i] = &queries.FittingRoomRequestListItem{
			ID:           uuid.New(),
			UserID:       b.UserID,
			ItemID:       b.ItemID,
			ItemName:     "Denim Jacket",
			Status:       b.Status,
			StaffMessage: b.StaffMessage,
			CreatedAt:    b.CreatedAt,
		}
	}
	return items
}

func (b *FittingRoomRequestBuilder) WithUserID(id uuid.UUID) *FittingRoomRequestBuilder {
	b.UserID = id
	return b
}

func (b *FittingRoomRequestBuilder) WithItemID(id uuid.UUID) *FittingRoomRequestBuilder {
	b.ItemID = id
	return b
}

func (b *FittingRoomRequestBuilder) WithStatus(status string) *FittingRoomRequestBuilder {
	b.Status = status
	return b
}

func (b *FittingRoomRequestBuilder) AsHandled(staffID uuid.UUID, at time.Time) *FittingRoomRequestBuilder {
	b.HandledByStaffID = &staffID
	b.HandledAt = &at
	return b
}

func (b *FittingRoomRequestBuilder) AsDeleted() *FittingRoomRequestBuilder {
	b.IsDeleted = true
	return b
}

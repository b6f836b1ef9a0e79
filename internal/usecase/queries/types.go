package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type FittingRoomRequestView struct {
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

type FittingRoomRequestListItem struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	ItemID       uuid.UUID `json:"item_id"`
	ItemName     string    `json:"item_name"`
	Status       string    `json:"status"`
	StaffMessage string    `json:"staff_message"`
	CreatedAt    time.Time `json:"created_at"`
}

type ItemView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	SKU        string    `json:"sku"`
	PriceCents int64     `json:"price_cents"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type NotificationView struct {
	ID          uuid.UUID  `json:"id"`
	Event       string     `json:"event"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	Group       string     `json:"group,omitempty"`
	ItemID      *uuid.UUID `json:"item_id,omitempty"`
	RequestID   *uuid.UUID `json:"request_id,omitempty"`
	Response    *string    `json:"response,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
}

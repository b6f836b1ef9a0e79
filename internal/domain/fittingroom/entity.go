package fittingroom

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus  = errors.New("invalid request status")
	ErrAlreadyHandled = errors.New("request already handled")
	ErrDeleted        = errors.New("request is deleted")
	ErrAlreadyDeleted = errors.New("request already deleted")
	ErrNotOwner       = errors.New("request does not belong to user")
)

// Staff messages shown to the requesting customer.
const (
	MessagePending          = "ready in about 2 minutes"
	MessageCompletedByStaff = "completed by staff"
	MessageCancelledByStaff = "cancelled by staff"
	MessageCancelledByUser  = "cancelled by user"
	MessageReadyNow         = "ready now"
)

// Request is a customer's ask to have an item brought to a fitting room.
// userID and itemID are fixed at creation; status only moves forward
// (new_request -> completed | cancelled). Deletion is a soft marker and
// never changes status.
type Request struct {
	id               uuid.UUID
	userID           uuid.UUID
	itemID           uuid.UUID
	status           Status
	staffMessage     string
	handledByStaffID *uuid.UUID
	handledAt        *time.Time
	isDeleted        bool
	deletedByStaffID *uuid.UUID
	deletedAt        *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

func NewRequest(userID, itemID uuid.UUID, now time.Time) *Request {
	return &Request{
		id:           uuid.New(),
		userID:       userID,
		itemID:       itemID,
		status:       StatusNew,
		staffMessage: MessagePending,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructRequest(
	id, userID, itemID uuid.UUID,
	status Status,
	staffMessage string,
	handledByStaffID *uuid.UUID,
	handledAt *time.Time,
	isDeleted bool,
	deletedByStaffID *uuid.UUID,
	deletedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:               id,
		userID:           userID,
		itemID:           itemID,
		status:           status,
		staffMessage:     staffMessage,
		handledByStaffID: handledByStaffID,
		handledAt:        handledAt,
		isDeleted:        isDeleted,
		deletedByStaffID: deletedByStaffID,
		deletedAt:        deletedAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Complete resolves the request on behalf of a staff member.
func (r *Request) Complete(staffID uuid.UUID, now time.Time) error {
	return r.resolve(StatusCompleted, MessageCompletedByStaff, &staffID, now)
}

// AutoComplete resolves the request without a human handler. handledAt is
// still recorded so "first resolving transition" stays observable.
func (r *Request) AutoComplete(now time.Time) error {
	return r.resolve(StatusCompleted, MessageReadyNow, nil, now)
}

// CancelByStaff cancels the request on behalf of a staff member.
func (r *Request) CancelByStaff(staffID uuid.UUID, now time.Time) error {
	return r.resolve(StatusCancelled, MessageCancelledByStaff, &staffID, now)
}

// CancelByOwner cancels the request on behalf of the customer who created it.
func (r *Request) CancelByOwner(userID uuid.UUID, now time.Time) error {
	if r.userID != userID {
		return ErrNotOwner
	}
	return r.resolve(StatusCancelled, MessageCancelledByUser, nil, now)
}

func (r *Request) resolve(to Status, message string, staffID *uuid.UUID, now time.Time) error {
	if r.isDeleted {
		return ErrDeleted
	}
	if r.status != StatusNew {
		return ErrAlreadyHandled
	}

	r.status = to
	r.staffMessage = message
	r.handledByStaffID = staffID
	handledAt := now
	r.handledAt = &handledAt
	r.updatedAt = now
	return nil
}

// SoftDelete hides the request from all listings. Current status is kept.
func (r *Request) SoftDelete(staffID uuid.UUID, now time.Time) error {
	if r.isDeleted {
		return ErrAlreadyDeleted
	}

	r.isDeleted = true
	r.deletedByStaffID = &staffID
	deletedAt := now
	r.deletedAt = &deletedAt
	r.updatedAt = now
	return nil
}

// IsUnresolved reports whether the request still awaits staff action.
func (r *Request) IsUnresolved() bool {
	return r.status == StatusNew && !r.isDeleted
}

func (r *Request) ID() uuid.UUID                { return r.id }
func (r *Request) UserID() uuid.UUID            { return r.userID }
func (r *Request) ItemID() uuid.UUID            { return r.itemID }
func (r *Request) Status() Status               { return r.status }
func (r *Request) StaffMessage() string         { return r.staffMessage }
func (r *Request) HandledByStaffID() *uuid.UUID { return r.handledByStaffID }
func (r *Request) HandledAt() *time.Time        { return r.handledAt }
func (r *Request) IsDeleted() bool              { return r.isDeleted }
func (r *Request) DeletedByStaffID() *uuid.UUID { return r.deletedByStaffID }
func (r *Request) DeletedAt() *time.Time        { return r.deletedAt }
func (r *Request) CreatedAt() time.Time         { return r.createdAt }
func (r *Request) UpdatedAt() time.Time         { return r.updatedAt }

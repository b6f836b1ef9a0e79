package notification

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyMessage     = errors.New("notification message cannot be empty")
	ErrNoRecipient      = errors.New("notification needs a user or a group")
	ErrEmptyResponse    = errors.New("response text cannot be empty")
	ErrAlreadyResponded = errors.New("notification already has a response")
)

// Notification is the persisted record of a dispatched message. Real-time
// delivery is best effort; this row is what an offline user sees later.
type Notification struct {
	id          uuid.UUID
	event       Event
	title       string
	message     string
	userID      *uuid.UUID
	group       string
	itemID      *uuid.UUID
	requestID   *uuid.UUID
	response    *string
	respondedAt *time.Time
	createdAt   time.Time
}

type Refs struct {
	ItemID    *uuid.UUID
	RequestID *uuid.UUID
}

func NewUserNotification(userID uuid.UUID, event Event, title, message string, refs Refs, now time.Time) (*Notification, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	return &Notification{
		id:        uuid.New(),
		event:     event,
		title:     title,
		message:   message,
		userID:    &userID,
		itemID:    refs.ItemID,
		requestID: refs.RequestID,
		createdAt: now,
	}, nil
}

func NewGroupNotification(group string, event Event, title, message string, refs Refs, now time.Time) (*Notification, error) {
	if strings.TrimSpace(group) == "" {
		return nil, ErrNoRecipient
	}
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	return &Notification{
		id:        uuid.New(),
		event:     event,
		title:     title,
		message:   message,
		group:     group,
		itemID:    refs.ItemID,
		requestID: refs.RequestID,
		createdAt: now,
	}, nil
}

func ReconstructNotification(
	id uuid.UUID,
	event Event,
	title, message string,
	userID *uuid.UUID,
	group string,
	itemID, requestID *uuid.UUID,
	response *string,
	respondedAt *time.Time,
	createdAt time.Time,
) *Notification {
	return &Notification{
		id:          id,
		event:       event,
		title:       title,
		message:     message,
		userID:      userID,
		group:       group,
		itemID:      itemID,
		requestID:   requestID,
		response:    response,
		respondedAt: respondedAt,
		createdAt:   createdAt,
	}
}

// Respond records a staff reply. A notification takes one response only.
func (n *Notification) Respond(text string, now time.Time) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyResponse
	}
	if n.response != nil {
		return ErrAlreadyResponded
	}

	n.response = &text
	respondedAt := now
	n.respondedAt = &respondedAt
	return nil
}

func (n *Notification) ID() uuid.UUID           { return n.id }
func (n *Notification) Event() Event            { return n.event }
func (n *Notification) Title() string           { return n.title }
func (n *Notification) Message() string         { return n.message }
func (n *Notification) UserID() *uuid.UUID      { return n.userID }
func (n *Notification) Group() string           { return n.group }
func (n *Notification) ItemID() *uuid.UUID      { return n.itemID }
func (n *Notification) RequestID() *uuid.UUID   { return n.requestID }
func (n *Notification) Response() *string       { return n.response }
func (n *Notification) RespondedAt() *time.Time { return n.respondedAt }
func (n *Notification) CreatedAt() time.Time    { return n.createdAt }

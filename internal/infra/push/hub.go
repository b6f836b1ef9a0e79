package push

import (
	"sync"

	"fitroom-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNoActiveConnection = errs.New("no active connection for recipient")

const subscriberBuffer = 16

type subscriber struct {
	ch chan any
}

// Hub fans payloads out to connected SSE streams. Delivery is best effort:
// a subscriber whose buffer is full loses the message, and a recipient with
// no open stream just gets nothing. The persisted notification row is the
// durable record.
type Hub struct {
	mu     sync.RWMutex
	users  map[uuid.UUID]map[*subscriber]struct{}
	groups map[string]map[*subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{
		users:  make(map[uuid.UUID]map[*subscriber]struct{}),
		groups: make(map[string]map[*subscriber]struct{}),
	}
}

// SubscribeUser opens a stream for one user. The returned func must be
// called when the connection closes; it is safe to call more than once.
func (h *Hub) SubscribeUser(userID uuid.UUID) (<-chan any, func()) {
	sub := &subscriber{ch: make(chan any, subscriberBuffer)}

	h.mu.Lock()
	if h.users[userID] == nil {
		h.users[userID] = make(map[*subscriber]struct{})
	}
	h.users[userID][sub] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.users[userID], sub)
			if len(h.users[userID]) == 0 {
				delete(h.users, userID)
			}
			h.mu.Unlock()
		})
	}
	return sub.ch, cancel
}

func (h *Hub) SubscribeGroup(group string) (<-chan any, func()) {
	sub := &subscriber{ch: make(chan any, subscriberBuffer)}

	h.mu.Lock()
	if h.groups[group] == nil {
		h.groups[group] = make(map[*subscriber]struct{})
	}
	h.groups[group][sub] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.groups[group], sub)
			if len(h.groups[group]) == 0 {
				delete(h.groups, group)
			}
			h.mu.Unlock()
		})
	}
	return sub.ch, cancel
}

func (h *Hub) PushToUser(userID uuid.UUID, payload any) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	subs := h.users[userID]
	if len(subs) == 0 {
		return ErrNoActiveConnection
	}
	for sub := range subs {
		sub.send(payload)
	}
	return nil
}

func (h *Hub) PushToGroup(group string, payload any) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	subs := h.groups[group]
	if len(subs) == 0 {
		return ErrNoActiveConnection
	}
	for sub := range subs {
		sub.send(payload)
	}
	return nil
}

// send never blocks the publisher. A slow consumer drops messages.
func (s *subscriber) send(payload any) {
	select {
	case s.ch <- payload:
	default:
	}
}

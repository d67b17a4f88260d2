package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"lido-club-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=broker.go -destination=../mocks/realtime_mocks.go -package=mocks

// Event types carried on realtime channels
const (
	EventMessage      = "message"
	EventNotification = "notification"
)

// Event is one realtime delivery on a channel
type Event struct {
	Channel string          `json:"channel"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Handler receives events of a subscription. It must not block for long.
type Handler func(Event)

// Subscription is an open channel subscription
type Subscription interface {
	Close() error
}

// Broker publishes events and fans them out to subscribers
type Broker interface {
	Publish(ctx context.Context, channel string, eventType string, payload interface{}) error
	Subscribe(ctx context.Context, channel string, handler Handler) (Subscription, error)
	Close() error
}

// ChatChannel is the channel carrying new chat messages of a team
func ChatChannel(teamID uuid.UUID) string {
	return "team-messages-" + teamID.String()
}

// NotificationChannel is the channel carrying new notifications of a user
func NotificationChannel(email string) string {
	return "notifications:" + models.NormalizeEmail(email)
}

func newEvent(channel, eventType string, payload interface{}) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	return Event{Channel: channel, Type: eventType, Payload: raw}, nil
}

// MemoryBroker is an in-process Broker for single-instance deployments and tests
type MemoryBroker struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string]map[uint64]Handler
	closed bool
}

// NewMemoryBroker creates an empty in-process broker
func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{subs: make(map[string]map[uint64]Handler)}
}

// Publish delivers the event synchronously to every current subscriber of channel
func (b *MemoryBroker) Publish(ctx context.Context, channel string, eventType string, payload interface{}) error {
	event, err := newEvent(channel, eventType, payload)
	if err != nil {
		return err
	}

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return fmt.Errorf("broker closed")
	}
	handlers := make([]Handler, 0, len(b.subs[channel]))
	for _, h := range b.subs[channel] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
	return nil
}

// Subscribe registers handler on channel
func (b *MemoryBroker) Subscribe(ctx context.Context, channel string, handler Handler) (Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, fmt.Errorf("broker closed")
	}
	b.nextID++
	id := b.nextID
	if b.subs[channel] == nil {
		b.subs[channel] = make(map[uint64]Handler)
	}
	b.subs[channel][id] = handler
	return &memorySubscription{broker: b, channel: channel, id: id}, nil
}

// Subscribers returns the number of handlers on channel
func (b *MemoryBroker) Subscribers(channel string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[channel])
}

// Close drops every subscription
func (b *MemoryBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.subs = make(map[string]map[uint64]Handler)
	return nil
}

type memorySubscription struct {
	broker  *MemoryBroker
	channel string
	id      uint64
	once    sync.Once
}

func (s *memorySubscription) Close() error {
	s.once.Do(func() {
		s.broker.mu.Lock()
		defer s.broker.mu.Unlock()
		delete(s.broker.subs[s.channel], s.id)
		if len(s.broker.subs[s.channel]) == 0 {
			delete(s.broker.subs, s.channel)
		}
	})
	return nil
}

package events

import (
	"context"
	"sync"

	"gamehall/models"
	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeBalanceChange    EventType = "balance_change"
	EventTypeGameResolved     EventType = "game_resolved"
	EventTypeChallengeCreated EventType = "challenge_created"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// Publisher is the narrow interface services use to emit events
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// BalanceChangeEvent represents a balance change that occurred
type BalanceChangeEvent struct {
	PlayerID     string
	PlayerName   string
	OldBalance   int64
	NewBalance   int64
	ChangeAmount int64
}

func (e BalanceChangeEvent) Type() EventType {
	return EventTypeBalanceChange
}

// GameResolvedEvent represents a completed game round
type GameResolvedEvent struct {
	PlayerID string
	Game     models.GameKind
	Outcome  models.Outcome
}

func (e GameResolvedEvent) Type() EventType {
	return EventTypeGameResolved
}

// ChallengeCreatedEvent represents a new rock-paper-scissors challenge
type ChallengeCreatedEvent struct {
	ChallengerID string
	TargetID     string
	Amount       int64
}

func (e ChallengeCreatedEvent) Type() EventType {
	return EventTypeChallengeCreated
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Publish emits an event to all registered handlers. Handlers run
// asynchronously so a slow subscriber never blocks command handling.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, handler := range handlers {
		go func(h Handler) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType": event.Type(),
						"panic":     r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler)
	}
}

package bus

import (
	"time"

	"github.com/google/uuid"
)

// EventBus is an in-process pub/sub bus for actor lifecycle notifications.
//
// Delivery is synchronous: Publish runs every matching handler on the caller's
// goroutine and joins their errors. Handlers subscribed to Wildcard receive
// every event. Metrics are only collected while an observer is registered.
type EventBus interface {
	// Publish delivers the event to subscribers of event.Type and to wildcard subscribers.
	Publish(event Event) error
	// Subscribe registers a handler for one event type, or Wildcard for all of them.
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
	// Unsubscribe cancels the subscription. Nil is ignored.
	Unsubscribe(Subscription) error

	AddObserver(obs Observer)
	RemoveObserver(obs Observer)
	Metrics() Metrics
}

// Wildcard subscribes to every event type.
const Wildcard = "*"

// Event types published by the proxy.
const (
	TypeClipsetApplied   = "ped.clipset.applied"
	TypeClipsetAbandoned = "ped.clipset.abandoned"
	TypeAnimDictLoaded   = "ped.animdict.loaded"
	TypeAnimDictTimeout  = "ped.animdict.timeout"
	TypeEntityDeleted    = "entity.deleted"
	TypeSessionOpened    = "bridge.session.opened"
	TypeSessionClosed    = "bridge.session.closed"
)

// Event is a read-only notification. Handle is zero when the event is not
// about a particular entity.
type Event struct {
	ID     uuid.UUID      `json:"id"`
	Type   string         `json:"type"`
	Source string         `json:"source"`
	Handle int32          `json:"handle,omitempty"`
	Time   time.Time      `json:"time"`
	Data   map[string]any `json:"data,omitempty"`
}

type (
	EventHandler func(event Event) error
	// EventFilter drops events it returns false for.
	EventFilter func(event Event) bool
)

// Subscription is a registered handler. Cancel is idempotent.
type Subscription interface {
	ID() string
	EventType() string
	IsActive() bool
	Cancel() error
}

// Observer is told about every publish. Observers should return quickly.
type Observer interface {
	OnPublish(event Event)
	OnDelivered(event Event, handlers int, err error, duration time.Duration)
}

type Metrics struct {
	Published         uint64
	DeliveredHandlers uint64
	Errors            uint64
	DroppedByFilters  uint64
}

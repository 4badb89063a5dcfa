package bus

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
)

// NewEvent stamps a fresh id and the current time.
func NewEvent(typ, source string, handle int32, data map[string]any) Event {
	return Event{
		ID:     uuid.New(),
		Type:   typ,
		Source: source,
		Handle: handle,
		Time:   time.Now(),
		Data:   data,
	}
}

type subscription struct {
	id        string
	eventType string
	handler   EventHandler
	active    atomic.Bool
	cancel    func()
}

func (s *subscription) ID() string        { return s.id }
func (s *subscription) EventType() string { return s.eventType }
func (s *subscription) IsActive() bool    { return s.active.Load() }
func (s *subscription) Cancel() error {
	if s.active.CompareAndSwap(true, false) && s.cancel != nil {
		s.cancel()
	}
	return nil
}

type inMemoryBus struct {
	// eventType -> subscription id -> subscription
	handlers *xsync.MapOf[string, *xsync.MapOf[string, *subscription]]

	obsMu     sync.RWMutex
	observers map[Observer]struct{}

	published  atomic.Uint64
	delivered  atomic.Uint64
	errorCount atomic.Uint64
	dropped    atomic.Uint64
}

func New() EventBus {
	return &inMemoryBus{
		handlers:  xsync.NewMapOf[string, *xsync.MapOf[string, *subscription]](),
		observers: make(map[Observer]struct{}),
	}
}

func (b *inMemoryBus) Subscribe(eventType string, handler EventHandler) (Subscription, error) {
	if eventType == "" {
		return nil, errors.New("bus: empty event type")
	}
	if handler == nil {
		return nil, errors.New("bus: nil handler")
	}

	subs, _ := b.handlers.LoadOrCompute(eventType, func() *xsync.MapOf[string, *subscription] {
		return xsync.NewMapOf[string, *subscription]()
	})

	s := &subscription{id: uuid.NewString(), eventType: eventType, handler: handler}
	s.active.Store(true)
	s.cancel = func() { subs.Delete(s.id) }
	subs.Store(s.id, s)

	return s, nil
}

func (b *inMemoryBus) Unsubscribe(sub Subscription) error {
	if sub == nil {
		return nil
	}
	return sub.Cancel()
}

// PublishWithFilters drops the event silently when any filter rejects it.
func PublishWithFilters(b EventBus, event Event, filters ...EventFilter) error {
	for _, f := range filters {
		if !f(event) {
			if mb, ok := b.(*inMemoryBus); ok && mb.observing() {
				mb.dropped.Add(1)
			}
			return nil
		}
	}
	return b.Publish(event)
}

func (b *inMemoryBus) Publish(event Event) error {
	start := time.Now()
	observing := b.observing()
	if observing {
		b.eachObserver(func(o Observer) { o.OnPublish(event) })
	}

	var (
		all   error
		count int
	)
	deliver := func(_ string, s *subscription) bool {
		if !s.IsActive() {
			return true
		}
		count++
		if err := s.handler(event); err != nil {
			all = errors.Join(all, err)
		}
		return true
	}
	if subs, ok := b.handlers.Load(event.Type); ok {
		subs.Range(deliver)
	}
	if event.Type != Wildcard {
		if subs, ok := b.handlers.Load(Wildcard); ok {
			subs.Range(deliver)
		}
	}

	if observing {
		b.published.Add(1)
		b.delivered.Add(uint64(count))
		if all != nil {
			b.errorCount.Add(1)
		}
		dur := time.Since(start)
		b.eachObserver(func(o Observer) { o.OnDelivered(event, count, all, dur) })
	}

	return all
}

func (b *inMemoryBus) AddObserver(obs Observer) {
	b.obsMu.Lock()
	b.observers[obs] = struct{}{}
	b.obsMu.Unlock()
}

func (b *inMemoryBus) RemoveObserver(obs Observer) {
	b.obsMu.Lock()
	delete(b.observers, obs)
	b.obsMu.Unlock()
}

func (b *inMemoryBus) Metrics() Metrics {
	return Metrics{
		Published:         b.published.Load(),
		DeliveredHandlers: b.delivered.Load(),
		Errors:            b.errorCount.Load(),
		DroppedByFilters:  b.dropped.Load(),
	}
}

func (b *inMemoryBus) observing() bool {
	b.obsMu.RLock()
	defer b.obsMu.RUnlock()
	return len(b.observers) > 0
}

func (b *inMemoryBus) eachObserver(fn func(Observer)) {
	b.obsMu.RLock()
	obs := make([]Observer, 0, len(b.observers))
	for o := range b.observers {
		obs = append(obs, o)
	}
	b.obsMu.RUnlock()

	for _, o := range obs {
		fn(o)
	}
}

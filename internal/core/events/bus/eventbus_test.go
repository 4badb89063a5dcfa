package bus

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testObserver struct {
	publishCount   int
	deliveredCount int
	lastErr        error
}

func (o *testObserver) OnPublish(Event) { o.publishCount++ }

func (o *testObserver) OnDelivered(_ Event, handlers int, err error, _ time.Duration) {
	o.deliveredCount += handlers
	o.lastErr = err
}

func TestPublishSubscribe(t *testing.T) {
	b := New()

	var got Event
	_, err := b.Subscribe(TypeClipsetApplied, func(e Event) error {
		got = e
		return nil
	})
	require.NoError(t, err)

	ev := NewEvent(TypeClipsetApplied, "ped", 42, map[string]any{"clipset": "move_m@drunk@a"})
	require.NoError(t, b.Publish(ev))

	assert.Equal(t, ev.ID, got.ID)
	assert.Equal(t, int32(42), got.Handle)
	assert.Equal(t, "move_m@drunk@a", got.Data["clipset"])
}

func TestWildcardReceivesEverything(t *testing.T) {
	b := New()

	var types []string
	_, err := b.Subscribe(Wildcard, func(e Event) error {
		types = append(types, e.Type)
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, b.Publish(NewEvent(TypeClipsetApplied, "t", 1, nil)))
	require.NoError(t, b.Publish(NewEvent(TypeEntityDeleted, "t", 1, nil)))

	assert.Equal(t, []string{TypeClipsetApplied, TypeEntityDeleted}, types)
}

func TestCancelStopsDelivery(t *testing.T) {
	b := New()

	var n atomic.Int32
	sub, err := b.Subscribe("x", func(Event) error { n.Add(1); return nil })
	require.NoError(t, err)

	require.NoError(t, b.Publish(NewEvent("x", "t", 0, nil)))
	require.NoError(t, b.Unsubscribe(sub))
	require.NoError(t, sub.Cancel())
	require.NoError(t, b.Publish(NewEvent("x", "t", 0, nil)))

	assert.Equal(t, int32(1), n.Load())
	assert.False(t, sub.IsActive())
	assert.NoError(t, b.Unsubscribe(nil))
}

func TestHandlerErrorsAreJoined(t *testing.T) {
	b := New()
	e1 := errors.New("one")
	e2 := errors.New("two")
	_, _ = b.Subscribe("x", func(Event) error { return e1 })
	_, _ = b.Subscribe("x", func(Event) error { return e2 })

	err := b.Publish(NewEvent("x", "t", 0, nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, e1)
	assert.ErrorIs(t, err, e2)
}

func TestSubscribeRejectsBadInput(t *testing.T) {
	b := New()
	_, err := b.Subscribe("", func(Event) error { return nil })
	assert.Error(t, err)
	_, err = b.Subscribe("x", nil)
	assert.Error(t, err)
}

func TestObserverMetricsOptional(t *testing.T) {
	b := New()
	_, _ = b.Subscribe("e", func(Event) error { return nil })
	_ = b.Publish(NewEvent("e", "s", 0, nil))
	assert.Zero(t, b.Metrics().Published)

	obs := &testObserver{}
	b.AddObserver(obs)
	_ = b.Publish(NewEvent("e", "s", 0, nil))
	_ = PublishWithFilters(b, NewEvent("e", "s", 0, nil), func(Event) bool { return false })

	m := b.Metrics()
	assert.Equal(t, uint64(1), m.Published)
	assert.Equal(t, uint64(1), m.DeliveredHandlers)
	assert.Equal(t, uint64(1), m.DroppedByFilters)
	assert.Equal(t, 1, obs.publishCount)
	assert.Equal(t, 1, obs.deliveredCount)

	b.RemoveObserver(obs)
	_ = b.Publish(NewEvent("e", "s", 0, nil))
	assert.Equal(t, 1, obs.publishCount)
}

func TestConcurrentPublishers(t *testing.T) {
	b := New()
	var n atomic.Int64
	_, _ = b.Subscribe("c", func(Event) error { n.Add(1); return nil })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = b.Publish(NewEvent("c", "t", 0, nil))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(800), n.Load())
}

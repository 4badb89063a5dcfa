package websocket_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/actorproxy/internal/core/entity"
	"github.com/zeusync/actorproxy/internal/core/events/bus"
	"github.com/zeusync/actorproxy/internal/core/native"
	"github.com/zeusync/actorproxy/internal/core/protocol"
	"github.com/zeusync/actorproxy/internal/core/protocol/websocket"
	"github.com/zeusync/actorproxy/internal/core/sim"
	"github.com/zeusync/actorproxy/internal/core/systems/physics"
)

const modelFranklin = 0x9B22DBAF

func startBridge(t *testing.T, host protocol.Host, events bus.EventBus, config websocket.Config) (*websocket.Server, *websocket.Client) {
	t.Helper()
	srv := websocket.NewServer(config, host, events, nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	config.URL = "ws" + strings.TrimPrefix(ts.URL, "http") + "/bridge"
	client, err := websocket.Dial(context.Background(), config, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return srv, client
}

func TestPedOverBridge(t *testing.T) {
	host := sim.New()
	handle := host.SpawnPed(modelFranklin, true, physics.V3(1, 2, 3))
	_, client := startBridge(t, host, nil, websocket.Config{})

	rt := entity.NewRuntime(client, client)
	p := entity.NewPed(rt, entity.Handle(handle))

	assert.True(t, p.Exists())
	assert.Equal(t, uint32(modelFranklin), p.Model())
	assert.Equal(t, physics.V3(1, 2, 3), p.Position())

	p.SetMoney(99)
	assert.Equal(t, 99, p.Money())

	p.SetSweat(25)
	p.SetCanSufferCriticalHits(false)
	assert.Equal(t, float32(25), p.Sweat())
	assert.False(t, p.CanSufferCriticalHits())
	assert.True(t, p.DropsWeaponsOnDeath())
	assert.Equal(t, entity.SeatNone, p.SeatIndex())

	calls, failures := client.Stats()
	assert.NotZero(t, calls)
	assert.Zero(t, failures)
}

func TestUnknownNativeAnswersVoid(t *testing.T) {
	host := sim.New()
	srv, client := startBridge(t, host, nil, websocket.Config{})

	resp, err := client.Do(context.Background(), protocol.Request{Op: protocol.OpCall, Hash: native.Hash(0xDEADBEEF)})
	require.Error(t, err)
	assert.True(t, resp.Value.IsVoid())

	// the proxy-facing form swallows the failure
	v := client.Invoke(&native.Native{Name: "MADE_UP", Hash: 0xDEADBEEF})
	assert.True(t, v.IsVoid())

	_, failures := client.Stats()
	assert.Equal(t, uint64(1), failures)
	_, rejected := srv.Stats()
	assert.Equal(t, uint64(2), rejected)
	assert.Zero(t, host.Calls())
}

func TestSessionEvents(t *testing.T) {
	events := bus.New()
	var (
		mu   sync.Mutex
		seen []string
	)
	_, err := events.Subscribe(bus.Wildcard, func(e bus.Event) error {
		mu.Lock()
		seen = append(seen, e.Type)
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)

	srv, client := startBridge(t, sim.New(), events, websocket.Config{})
	require.Eventually(t, func() bool { return srv.Sessions() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, client.Close())
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 2
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{bus.TypeSessionOpened, bus.TypeSessionClosed}, seen)
	assert.Zero(t, srv.Sessions())
}

type gatedHost struct {
	*sim.Host
	gate chan struct{}
}

func (g *gatedHost) Invoke(n *native.Native, args ...native.Value) native.Value {
	if n == native.GetPedMoney {
		<-g.gate
	}
	return g.Host.Invoke(n, args...)
}

func TestTimedOutCallDoesNotBreakConnection(t *testing.T) {
	host := &gatedHost{Host: sim.New(), gate: make(chan struct{})}
	handle := host.SpawnPed(modelFranklin, false, physics.Zero)
	_, client := startBridge(t, host, nil, websocket.Config{CallTimeout: 50 * time.Millisecond})

	p := entity.NewPed(entity.NewRuntime(client, client), entity.Handle(handle))

	_, err := client.Do(context.Background(), protocol.Request{
		Op:   protocol.OpCall,
		Hash: native.GetPedMoney.Hash,
		Args: []native.Value{native.Handle(handle)},
	})
	assert.ErrorIs(t, err, protocol.ErrTimeout)

	// release the stuck call; its late answer must be dropped
	close(host.gate)

	p.SetMaxHealth(320)
	assert.Equal(t, 320, p.MaxHealth())
	assert.Equal(t, 0, p.Money())
}

func TestDoAfterClose(t *testing.T) {
	_, client := startBridge(t, sim.New(), nil, websocket.Config{})
	require.NoError(t, client.Close())
	require.NoError(t, client.Close())

	_, err := client.Do(context.Background(), protocol.Request{Op: protocol.OpBase, Handle: 1})
	assert.ErrorIs(t, err, protocol.ErrClosed)
	assert.Zero(t, client.BaseAddress(1))
}

func TestServeStopsOnCancel(t *testing.T) {
	srv := websocket.NewServer(websocket.Config{Listen: "127.0.0.1:0"}, sim.New(), nil, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

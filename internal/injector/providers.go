package injector

import (
	"context"

	"github.com/google/wire"

	"github.com/zeusync/actorproxy/internal/config"
	"github.com/zeusync/actorproxy/internal/core/entity"
	"github.com/zeusync/actorproxy/internal/core/events/bus"
	"github.com/zeusync/actorproxy/internal/core/memory"
	"github.com/zeusync/actorproxy/internal/core/memory/snapshot"
	"github.com/zeusync/actorproxy/internal/core/observability/log"
	"github.com/zeusync/actorproxy/internal/core/protocol/websocket"
	"github.com/zeusync/actorproxy/internal/core/script"
	"github.com/zeusync/actorproxy/internal/core/sim"
)

// CommonSet provides what both sides of the bridge share.
var CommonSet = wire.NewSet(
	ProvideLogger,
	ProvideLayout,
	ProvideBus,
	ProvideBridgeConfig,
)

// ClientSet builds an entity.Runtime backed by a bridge connection.
var ClientSet = wire.NewSet(
	CommonSet,
	ProvideScheduler,
	ProvideClient,
	ProvideRuntime,
)

// SimSet builds a simulation host and the server exposing it.
var SimSet = wire.NewSet(
	CommonSet,
	ProvideSimHost,
	ProvideServer,
	ProvideSnapshots,
	wire.Struct(new(SimBridge), "*"),
)

// SimBridge is everything the simulation process runs.
type SimBridge struct {
	Host      *sim.Host
	Server    *websocket.Server
	Bus       bus.EventBus
	Snapshots *snapshot.Store
	Layout    *memory.Layout
	Log       log.Log
}

func ProvideLogger(cfg *config.Config) log.Log {
	return log.New(log.ParseLevel(cfg.Log.Level))
}

// ProvideLayout loads the configured layout file, or the built-in layout.
func ProvideLayout(cfg *config.Config) (*memory.Layout, error) {
	if cfg.Layout.Path == "" {
		return memory.DefaultLayout(), nil
	}
	return memory.LoadLayoutFile(cfg.Layout.Path)
}

func ProvideBus() bus.EventBus {
	return bus.New()
}

func ProvideBridgeConfig(cfg *config.Config) websocket.Config {
	b := cfg.Bridge
	return websocket.Config{
		URL:          b.URL,
		Listen:       b.Listen,
		Path:         b.Path,
		CallTimeout:  b.CallTimeout,
		WriteTimeout: b.WriteTimeout,
		MaxFrameSize: b.MaxFrameSize,
	}
}

func ProvideScheduler(logger log.Log) *script.Scheduler {
	return script.NewScheduler(script.SystemClock{}, logger)
}

// ProvideClient dials the bridge. The cleanup closes the connection.
func ProvideClient(ctx context.Context, bc websocket.Config, logger log.Log) (*websocket.Client, func(), error) {
	client, err := websocket.Dial(ctx, bc, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close bridge client", log.Error(err))
		}
	}
	return client, cleanup, nil
}

func ProvideRuntime(
	cfg *config.Config,
	client *websocket.Client,
	layout *memory.Layout,
	scheduler *script.Scheduler,
	events bus.EventBus,
	logger log.Log,
) *entity.Runtime {
	rt := entity.NewRuntime(client, client)
	rt.Layout = layout
	rt.Scheduler = scheduler
	rt.Bus = events
	rt.Log = logger
	rt.LoadTimeout = cfg.Resources.LoadTimeout
	return rt
}

func ProvideSimHost(layout *memory.Layout, logger log.Log) *sim.Host {
	return sim.New(sim.WithLayout(layout), sim.WithLogger(logger))
}

func ProvideServer(bc websocket.Config, host *sim.Host, events bus.EventBus, logger log.Log) *websocket.Server {
	return websocket.NewServer(bc, host, events, logger)
}

// ProvideSnapshots opens the snapshot store when a path is configured. The
// store is nil otherwise.
func ProvideSnapshots(cfg *config.Config, logger log.Log) (*snapshot.Store, func(), error) {
	if cfg.Snapshots.Path == "" {
		return nil, func() {}, nil
	}
	store, err := snapshot.Open(cfg.Snapshots.Path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close snapshot store", log.Error(err))
		}
	}
	return store, cleanup, nil
}

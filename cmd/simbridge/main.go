// Command simbridge runs an in-process actor simulation and exposes it over
// the websocket bridge, so proxies can be driven without the real host.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/profile"

	"github.com/zeusync/actorproxy/internal/config"
	"github.com/zeusync/actorproxy/internal/core/observability/log"
	"github.com/zeusync/actorproxy/internal/core/sim"
	"github.com/zeusync/actorproxy/internal/core/systems/physics"
	"github.com/zeusync/actorproxy/internal/injector"
)

const (
	modelFranklin = 0x9B22DBAF
	modelSultan   = 0x39DA2754
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		peds       = flag.Int("peds", 4, "peds to spawn at startup")
		vehicles   = flag.Int("vehicles", 1, "vehicles to spawn at startup")
		loadDelay  = flag.Int("load-delay", 2, "polls before a requested resource reports loaded")
		capture    = flag.String("capture", "", "on shutdown, store a record snapshot of every ped under this version")
		profMode   = flag.String("profile", "", "enable profiling: cpu, mem or block")
	)
	flag.Parse()

	if err := run(*configPath, *peds, *vehicles, *loadDelay, *capture, *profMode); err != nil {
		fmt.Fprintln(os.Stderr, "simbridge:", err)
		os.Exit(1)
	}
}

func run(configPath string, peds, vehicles, loadDelay int, capture, profMode string) error {
	if stop := startProfile(profMode); stop != nil {
		defer stop()
	}

	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}

	bridge, cleanup, err := injector.InitializeSimBridge(cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	logger := bridge.Log
	if s, ok := logger.(interface{ Sync() error }); ok {
		defer func() { _ = s.Sync() }()
	}

	bridge.Host.SetLoadDelay(loadDelay)
	seed(bridge.Host, peds, vehicles)
	logger.Info("simulation seeded",
		log.Int("peds", peds),
		log.Int("vehicles", vehicles),
		log.String("layout", bridge.Layout.Version),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err = bridge.Server.ListenAndServe(ctx); err != nil {
		return err
	}

	if capture != "" {
		return captureAll(bridge, capture)
	}
	return nil
}

func seed(host *sim.Host, peds, vehicles int) {
	for i := 0; i < peds; i++ {
		host.SpawnPed(modelFranklin, i%2 == 0, physics.V3(float64(i)*2, 0, 0))
	}
	for i := 0; i < vehicles; i++ {
		host.SpawnVehicle(modelSultan, 3, physics.V3(float64(i)*5, 10, 0))
	}
}

func captureAll(bridge *injector.SimBridge, version string) error {
	if bridge.Snapshots == nil {
		return fmt.Errorf("-capture needs snapshots.path in the config")
	}
	ctx := context.Background()
	saved := 0
	for _, h := range bridge.Host.Handles(sim.TypePed) {
		snap, ok := bridge.Host.Capture(version, h)
		if !ok {
			continue
		}
		if err := bridge.Snapshots.Save(ctx, snap); err != nil {
			return err
		}
		saved++
	}
	bridge.Log.Info("snapshots stored", log.String("version", version), log.Int("count", saved))
	return nil
}

func startProfile(mode string) func() {
	var opt func(*profile.Profile)
	switch mode {
	case "":
		return nil
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfile
	case "block":
		opt = profile.BlockProfile
	default:
		fmt.Fprintf(os.Stderr, "simbridge: unknown profile mode %q, profiling disabled\n", mode)
		return nil
	}
	return profile.Start(opt, profile.ProfilePath("."), profile.NoShutdownHook).Stop
}

package injector

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/actorproxy/internal/config"
	"github.com/zeusync/actorproxy/internal/core/entity"
	"github.com/zeusync/actorproxy/internal/core/systems/physics"
)

func TestClientRuntimeAgainstSimBridge(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "silent"
	cfg.Snapshots.Path = filepath.Join(t.TempDir(), "snapshots.db")

	bridge, cleanupSim, err := InitializeSimBridge(cfg)
	require.NoError(t, err)
	defer cleanupSim()
	require.NotNil(t, bridge.Snapshots)

	handle := bridge.Host.SpawnPed(0x9B22DBAF, true, physics.V3(5, 5, 5))
	ts := httptest.NewServer(bridge.Server.Handler())
	defer ts.Close()

	cfg.Bridge.URL = "ws" + strings.TrimPrefix(ts.URL, "http") + cfg.Bridge.Path
	rt, cleanupClient, err := InitializeClientRuntime(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanupClient()

	assert.Equal(t, cfg.Resources.LoadTimeout, rt.LoadTimeout)
	assert.NotNil(t, rt.Bus)

	p := entity.NewPed(rt, entity.Handle(handle))
	require.True(t, p.Exists())
	p.SetSweat(12)
	assert.Equal(t, float32(12), p.Sweat())
}

func TestLayoutFromMissingFile(t *testing.T) {
	cfg := config.Default()
	cfg.Layout.Path = filepath.Join(t.TempDir(), "missing.json")

	_, _, err := InitializeSimBridge(cfg)
	assert.Error(t, err)
}

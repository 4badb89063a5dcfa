//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"context"

	"github.com/google/wire"

	"github.com/zeusync/actorproxy/internal/config"
	"github.com/zeusync/actorproxy/internal/core/entity"
)

func InitializeClientRuntime(ctx context.Context, cfg *config.Config) (*entity.Runtime, func(), error) {
	wire.Build(ClientSet)
	return nil, nil, nil
}

func InitializeSimBridge(cfg *config.Config) (*SimBridge, func(), error) {
	wire.Build(SimSet)
	return nil, nil, nil
}

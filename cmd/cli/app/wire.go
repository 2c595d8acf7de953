//go:build wireinject
// +build wireinject

package app

import (
	"dashfix/internal/adapters/filesystem"
	"dashfix/internal/core/domain"
	"dashfix/internal/core/handler"
	"dashfix/internal/logging"
	"dashfix/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	logging.ProvideLogger,
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	domain.LoadDashboardMappingPatch,
)

var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectFixDashboardCommandHandler(verbose logging.Verbose) (handler.FixDashboardCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideFixDashboardCommandHandler,
	)
	return handler.FixDashboardCommandHandler{}, nil
}

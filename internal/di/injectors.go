//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"shorecrew/internal"
	"shorecrew/internal/controllers"
	"shorecrew/internal/providers"
	"shorecrew/internal/services"
	"shorecrew/internal/storage"
	"shorecrew/internal/structures"
	"shorecrew/internal/weather"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewClockProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		services.NewRosterService,
		services.NewWeatherService,
		storage.NewZstdCompressor,
		storage.NewFileManager,
		storage.NewKeeper,
		weather.NewClient,
		weather.NewResolver,
		controllers.NewApiController,
		controllers.NewWeatherController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}

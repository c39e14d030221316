package internal

import (
	"net/http"
	"shorecrew/internal/controllers"
	"shorecrew/internal/providers"
	"shorecrew/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, weatherController *controllers.WeatherController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/crew", http.HandlerFunc(apiController.GetCrew))
	routers.Post("/crew", http.HandlerFunc(apiController.AddCrew))
	routers.Delete("/crew", http.HandlerFunc(apiController.RemoveCrew))

	routers.Get("/events", http.HandlerFunc(apiController.GetEvents))
	routers.Post("/events", http.HandlerFunc(apiController.AddEvent))
	routers.Delete("/events", http.HandlerFunc(apiController.RemoveEvent))

	routers.Post("/demo", http.HandlerFunc(apiController.SeedDemo))

	routers.Get("/weather", http.HandlerFunc(weatherController.GetWeather))
	routers.Post("/weather/refresh", http.HandlerFunc(weatherController.RefreshWeather))

	return routers
}

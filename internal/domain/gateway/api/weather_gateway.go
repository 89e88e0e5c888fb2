package api

import (
	"context"

	"kma-forecast/internal/domain/model"
)

// WeatherGateway defines the outbound village forecast call.
type WeatherGateway interface {
	// FetchForecast performs exactly one request and returns the body verbatim.
	// Only transport failures are errors (model.ErrTransport); the body is not inspected.
	FetchForecast(ctx context.Context, credential string, query model.ForecastQuery) (string, error)
}

package api

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"kma-forecast/internal/domain/model"
)

// rateLimitedWeatherGateway paces calls to the wrapped gateway. It never retries.
type rateLimitedWeatherGateway struct {
	gateway WeatherGateway
	limiter *rate.Limiter
}

// NewRateLimitedWeatherGateway wraps gateway with a token bucket of rps requests per second.
// A non-positive rps returns gateway unchanged.
func NewRateLimitedWeatherGateway(gateway WeatherGateway, rps float64, burst int) WeatherGateway {
	if rps <= 0 {
		return gateway
	}
	if burst < 1 {
		burst = 1
	}
	return &rateLimitedWeatherGateway{
		gateway: gateway,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// FetchForecast waits for the limiter, or for ctx, before forwarding the call
func (g *rateLimitedWeatherGateway) FetchForecast(ctx context.Context, credential string, query model.ForecastQuery) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: rate limit wait canceled: %w", model.ErrTransport, err)
	}
	return g.gateway.FetchForecast(ctx, credential, query)
}

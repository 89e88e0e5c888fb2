package weather

import (
	"context"

	"kma-forecast/internal/domain/model"
)

type UseCase interface {
	// GetForecast fetches the forecast of a grid point and folds it into one record
	GetForecast(ctx context.Context, coordinate model.Coordinate) (*model.ForecastRecord, error)

	// GetForecastByPlace resolves a place in the address index and fetches its forecast
	GetForecastByPlace(ctx context.Context, province, city, neighborhood string) (*model.ForecastRecord, error)

	// GetHourlyForecast fetches the forecast of a grid point as one record per forecast hour
	GetHourlyForecast(ctx context.Context, coordinate model.Coordinate) ([]model.HourlyForecast, error)

	// CheckCredential requests the probe forecast with the bound credential and returns its failure
	CheckCredential(ctx context.Context) error

	// ProbeCredential reports whether the provider serves a forecast for the given credential
	ProbeCredential(ctx context.Context, credential string) bool

	// WithCredential returns a use case bound to another credential
	WithCredential(credential string) UseCase
}

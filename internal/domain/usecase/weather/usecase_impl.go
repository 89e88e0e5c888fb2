package weather

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"kma-forecast/internal/domain/address"
	"kma-forecast/internal/domain/gateway/api"
	"kma-forecast/internal/domain/model"
	"kma-forecast/internal/domain/parser"
	"kma-forecast/pkg/log"
	"kma-forecast/pkg/msg"
)

// ProbeCoordinate is the grid point (Seoul) requested when a credential is probed.
var ProbeCoordinate = model.NewCoordinate(60, 127)

type weatherUseCase struct {
	credential      string
	apiGateway      api.WeatherGateway
	responseParser  *parser.ResponseParser
	addressIndex    *address.Index
	baseTimePolicy  BaseTimePolicy
	probeCoordinate model.Coordinate
	now             func() time.Time
}

// Option customizes a weather use case.
type Option func(*weatherUseCase)

// WithProbeCoordinate overrides ProbeCoordinate.
func WithProbeCoordinate(coordinate model.Coordinate) Option {
	return func(uc *weatherUseCase) {
		uc.probeCoordinate = coordinate
	}
}

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(uc *weatherUseCase) {
		uc.now = now
	}
}

func NewWeatherUseCase(credential string, apiGateway api.WeatherGateway, responseParser *parser.ResponseParser,
	addressIndex *address.Index, baseTimePolicy BaseTimePolicy, opts ...Option) UseCase {
	uc := &weatherUseCase{
		credential:      credential,
		apiGateway:      apiGateway,
		responseParser:  responseParser,
		addressIndex:    addressIndex,
		baseTimePolicy:  baseTimePolicy,
		probeCoordinate: ProbeCoordinate,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// GetForecast fetches the forecast of a grid point and folds it into one record headed by
// the forecast date and time of its first item
func (uc *weatherUseCase) GetForecast(ctx context.Context, coordinate model.Coordinate) (*model.ForecastRecord, error) {
	items, err := uc.fetchItems(ctx, coordinate)
	if err != nil {
		return nil, err
	}

	record := uc.responseParser.FoldForecast(items)
	log.Debug(msg.GetMessage("weather.fetched", coordinate.X, coordinate.Y, record.Len()))
	return record, nil
}

// GetForecastByPlace resolves a place in the address index and fetches its forecast
func (uc *weatherUseCase) GetForecastByPlace(ctx context.Context, province, city, neighborhood string) (*model.ForecastRecord, error) {
	coordinate, err := uc.addressIndex.Resolve(province, city, neighborhood)
	if err != nil {
		return nil, err
	}
	return uc.GetForecast(ctx, coordinate)
}

// GetHourlyForecast fetches the forecast of a grid point as one record per forecast hour
func (uc *weatherUseCase) GetHourlyForecast(ctx context.Context, coordinate model.Coordinate) ([]model.HourlyForecast, error) {
	items, err := uc.fetchItems(ctx, coordinate)
	if err != nil {
		return nil, err
	}
	return uc.responseParser.FoldHourly(items), nil
}

// CheckCredential requests the forecast of the probe coordinate with the bound credential.
func (uc *weatherUseCase) CheckCredential(ctx context.Context) error {
	_, err := uc.GetForecast(ctx, uc.probeCoordinate)
	return err
}

// ProbeCredential reports whether the provider serves a forecast for the given credential.
// Every failure, transport errors included, counts as an invalid credential.
func (uc *weatherUseCase) ProbeCredential(ctx context.Context, credential string) bool {
	if err := uc.withCredential(credential).CheckCredential(ctx); err != nil {
		log.Warn(msg.GetMessage("weather.probe-fail"), zap.Error(err))
		return false
	}

	log.Info(msg.GetMessage("weather.probe-ok"))
	return true
}

// WithCredential returns a use case bound to another credential
func (uc *weatherUseCase) WithCredential(credential string) UseCase {
	return uc.withCredential(credential)
}

func (uc *weatherUseCase) withCredential(credential string) *weatherUseCase {
	bound := *uc
	bound.credential = credential
	return &bound
}

func (uc *weatherUseCase) fetchItems(ctx context.Context, coordinate model.Coordinate) ([]model.ForecastItem, error) {
	baseDate, baseTime := uc.baseTimePolicy.BaseDateTime(uc.now())
	query := model.ForecastQuery{
		BaseDate:   baseDate,
		BaseTime:   baseTime,
		Coordinate: coordinate,
	}

	body, err := uc.apiGateway.FetchForecast(ctx, uc.credential, query)
	if err != nil {
		return nil, uc.fetchFailed(query, err)
	}

	items, err := uc.responseParser.ParseItems(body)
	if err != nil {
		return nil, uc.fetchFailed(query, err)
	}
	return items, nil
}

func (uc *weatherUseCase) fetchFailed(query model.ForecastQuery, cause error) error {
	log.Warn(msg.GetMessage("weather.fetch-failed", query.Coordinate.X, query.Coordinate.Y),
		zap.String("base_date", query.BaseDate),
		zap.String("base_time", query.BaseTime),
		zap.Error(cause))
	return fmt.Errorf("%w: %w", model.ErrFetchFailed, cause)
}

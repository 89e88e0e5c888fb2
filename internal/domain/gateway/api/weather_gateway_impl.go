package api

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"kma-forecast/internal/domain/model"
	"kma-forecast/pkg/http"
	"kma-forecast/pkg/log"
	"kma-forecast/pkg/util/numberutils"
)

const (
	vilageFcstPath = "/getVilageFcst"

	MinNumOfRows     = 10
	MaxNumOfRows     = 12
	DefaultNumOfRows = MaxNumOfRows
)

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
	numOfRows  int
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client.
// numOfRows is kept within 10..12; zero selects the default.
func NewWeatherGateway(baseUrl string, numOfRows int, clientOptions http.ClientOptions) WeatherGateway {
	if numOfRows == 0 {
		numOfRows = DefaultNumOfRows
	}

	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		numOfRows:  numberutils.ClampInt(numOfRows, MinNumOfRows, MaxNumOfRows),
	}
}

// FetchForecast gets the raw village forecast body for a grid point
func (w *weatherGatewayImpl) FetchForecast(ctx context.Context, credential string, query model.ForecastQuery) (string, error) {
	params := map[string]string{
		"serviceKey": credential,
		"pageNo":     "1",
		"numOfRows":  strconv.Itoa(w.numOfRows),
		"dataType":   "JSON",
		"base_date":  query.BaseDate,
		"base_time":  query.BaseTime,
		"nx":         strconv.Itoa(query.Coordinate.X),
		"ny":         strconv.Itoa(query.Coordinate.Y),
	}

	resp, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(vilageFcstPath).
		WithQueryParams(params).
		Execute()
	if err != nil {
		return "", fmt.Errorf("%w: %s", model.ErrTransport, redact(err.Error(), credential))
	}

	log.Debug("Village forecast response",
		zap.Int("status", resp.StatusCode),
		zap.String("base_date", query.BaseDate),
		zap.String("base_time", query.BaseTime),
		zap.Int("nx", query.Coordinate.X),
		zap.Int("ny", query.Coordinate.Y),
		zap.String("body", resp.Body))

	return resp.Body, nil
}

// redact removes the service key from messages that embed the request URL
func redact(message, credential string) string {
	if credential == "" {
		return message
	}
	return strings.ReplaceAll(message, credential, "***")
}

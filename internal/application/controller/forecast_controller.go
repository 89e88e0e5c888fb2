package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kma-forecast/internal/domain/address"
	"kma-forecast/internal/domain/model"
	"kma-forecast/internal/domain/usecase/weather"
	"kma-forecast/pkg/util/numberutils"
)

// WeatherServiceProvider hands out the weather use case bound to the accepted credential.
type WeatherServiceProvider interface {
	Service() (weather.UseCase, error)
}

type ForecastController struct {
	api      *echo.Group
	services WeatherServiceProvider
	index    *address.Index
}

func NewForecastController(api *echo.Group, services WeatherServiceProvider, index *address.Index) *ForecastController {
	return &ForecastController{api: api, services: services, index: index}
}

// InitForecastRoutes initializes forecast routes
func (controller *ForecastController) InitForecastRoutes() {
	controller.api.GET("/forecast", controller.GetForecast)
	controller.api.GET("/forecast/hourly", controller.GetHourlyForecast)
}

// forecastSelector is either a place or a grid coordinate.
type forecastSelector struct {
	place      *model.PlaceQuery
	coordinate *model.Coordinate
}

// GetForecast godoc
// @Summary Get the forecast of a place or grid point
// @Description Folded forecast of a place (province, city, neighborhood) or of a grid point (nx, ny)
// @Tags forecast
// @Produce json
// @Param province query string false "Province name"
// @Param city query string false "City name"
// @Param neighborhood query string false "Neighborhood name"
// @Param nx query int false "Grid X"
// @Param ny query int false "Grid Y"
// @Success 200 {object} model.ForecastResponse "Forecast record"
// @Failure 400 {object} ErrorResponse "Invalid selector"
// @Failure 401 {object} ErrorResponse "Service key rejected"
// @Failure 404 {object} ErrorResponse "Unknown place"
// @Failure 428 {object} ErrorResponse "No accepted service key"
// @Failure 502 {object} ErrorResponse "Provider fault or unreadable response"
// @Failure 504 {object} ErrorResponse "Provider unreachable"
// @Router /forecast [get]
func (controller *ForecastController) GetForecast(c echo.Context) error {
	selector, reason := readSelector(c)
	if reason != "" {
		return badRequest(c, reason)
	}

	service, err := controller.services.Service()
	if err != nil {
		return respondError(c, err)
	}

	ctx := c.Request().Context()
	var record *model.ForecastRecord
	if selector.place != nil {
		record, err = service.GetForecastByPlace(ctx, selector.place.Province, selector.place.City, selector.place.Neighborhood)
	} else {
		record, err = service.GetForecast(ctx, *selector.coordinate)
	}
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, model.ForecastResponse{
		Place:      selector.place,
		Coordinate: selector.coordinate,
		Forecast:   record,
	})
}

// GetHourlyForecast godoc
// @Summary Get the forecast hour by hour
// @Description One record per forecast hour, for the same selectors as /forecast
// @Tags forecast
// @Produce json
// @Param province query string false "Province name"
// @Param city query string false "City name"
// @Param neighborhood query string false "Neighborhood name"
// @Param nx query int false "Grid X"
// @Param ny query int false "Grid Y"
// @Success 200 {object} model.HourlyForecastResponse "Hourly records"
// @Failure 400 {object} ErrorResponse "Invalid selector"
// @Failure 404 {object} ErrorResponse "Unknown place"
// @Failure 428 {object} ErrorResponse "No accepted service key"
// @Failure 502 {object} ErrorResponse "Provider fault or unreadable response"
// @Router /forecast/hourly [get]
func (controller *ForecastController) GetHourlyForecast(c echo.Context) error {
	selector, reason := readSelector(c)
	if reason != "" {
		return badRequest(c, reason)
	}

	service, err := controller.services.Service()
	if err != nil {
		return respondError(c, err)
	}

	var coordinate model.Coordinate
	if selector.place != nil {
		coordinate, err = controller.index.Resolve(selector.place.Province, selector.place.City, selector.place.Neighborhood)
		if err != nil {
			return respondError(c, err)
		}
	} else {
		coordinate = *selector.coordinate
	}

	hours, err := service.GetHourlyForecast(c.Request().Context(), coordinate)
	if err != nil {
		return respondError(c, err)
	}
	if hours == nil {
		hours = []model.HourlyForecast{}
	}

	return c.JSON(http.StatusOK, model.HourlyForecastResponse{
		Place:      selector.place,
		Coordinate: coordinate,
		Hours:      hours,
	})
}

// readSelector returns the request selector, or a non-empty reason when it is invalid.
func readSelector(c echo.Context) (forecastSelector, string) {
	nx, ny := c.QueryParam("nx"), c.QueryParam("ny")
	province := c.QueryParam("province")

	switch {
	case nx != "" || ny != "":
		if province != "" {
			return forecastSelector{}, "use either province/city/neighborhood or nx/ny"
		}
		x, err := numberutils.ToIntWithError(nx)
		if err != nil || numberutils.IsIntNegative(x) {
			return forecastSelector{}, "nx must be a non-negative integer"
		}
		y, err := numberutils.ToIntWithError(ny)
		if err != nil || numberutils.IsIntNegative(y) {
			return forecastSelector{}, "ny must be a non-negative integer"
		}
		coordinate := model.NewCoordinate(x, y)
		return forecastSelector{coordinate: &coordinate}, ""
	case province != "":
		return forecastSelector{place: &model.PlaceQuery{
			Province:     province,
			City:         c.QueryParam("city"),
			Neighborhood: c.QueryParam("neighborhood"),
		}}, ""
	default:
		return forecastSelector{}, "province or nx/ny is required"
	}
}

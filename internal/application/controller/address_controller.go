package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kma-forecast/internal/domain/address"
	"kma-forecast/internal/domain/model"
)

type AddressController struct {
	api   *echo.Group
	index *address.Index
}

func NewAddressController(api *echo.Group, index *address.Index) *AddressController {
	return &AddressController{api: api, index: index}
}

// InitAddressRoutes initializes address lookup routes
func (controller *AddressController) InitAddressRoutes() {
	controller.api.GET("/address/provinces", controller.ListProvinces)
	controller.api.GET("/address/provinces/:province/cities", controller.ListCities)
	controller.api.GET("/address/provinces/:province/cities/:city/neighborhoods", controller.ListNeighborhoods)
	controller.api.GET("/address/neighborhoods", controller.FindNeighborhoods)
	controller.api.GET("/address/resolve", controller.Resolve)
}

// ListProvinces godoc
// @Summary List provinces
// @Description Every province of the address table, in table order
// @Tags address
// @Produce json
// @Success 200 {array} string "Province names"
// @Router /address/provinces [get]
func (controller *AddressController) ListProvinces(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.index.Provinces())
}

// ListCities godoc
// @Summary List the cities of a province
// @Description The cities of a province in table order. The empty string is the province-level entry
// @Tags address
// @Produce json
// @Param province path string true "Province name"
// @Success 200 {array} string "City names"
// @Failure 404 {object} ErrorResponse "Unknown province"
// @Router /address/provinces/{province}/cities [get]
func (controller *AddressController) ListCities(c echo.Context) error {
	cities, err := controller.index.Cities(pathParam(c, "province"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, cities)
}

// ListNeighborhoods godoc
// @Summary List the neighborhoods of a city
// @Description The neighborhoods of a city in table order. Use /address/neighborhoods for the empty city
// @Tags address
// @Produce json
// @Param province path string true "Province name"
// @Param city path string true "City name"
// @Success 200 {array} string "Neighborhood names"
// @Failure 404 {object} ErrorResponse "Unknown province or city"
// @Router /address/provinces/{province}/cities/{city}/neighborhoods [get]
func (controller *AddressController) ListNeighborhoods(c echo.Context) error {
	return controller.neighborhoods(c, pathParam(c, "province"), pathParam(c, "city"))
}

// FindNeighborhoods godoc
// @Summary List the neighborhoods of a city by query
// @Description Same as the path form, but an omitted city selects the province-level entry
// @Tags address
// @Produce json
// @Param province query string true "Province name"
// @Param city query string false "City name"
// @Success 200 {array} string "Neighborhood names"
// @Failure 400 {object} ErrorResponse "Missing province"
// @Failure 404 {object} ErrorResponse "Unknown province or city"
// @Router /address/neighborhoods [get]
func (controller *AddressController) FindNeighborhoods(c echo.Context) error {
	province := c.QueryParam("province")
	if province == "" {
		return badRequest(c, "province is required")
	}
	return controller.neighborhoods(c, province, c.QueryParam("city"))
}

func (controller *AddressController) neighborhoods(c echo.Context, province, city string) error {
	neighborhoods, err := controller.index.Neighborhoods(province, city)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, neighborhoods)
}

// Resolve godoc
// @Summary Resolve a place to its grid coordinate
// @Description Omitted city or neighborhood parameters select the empty entry of their level
// @Tags address
// @Produce json
// @Param province query string true "Province name"
// @Param city query string false "City name"
// @Param neighborhood query string false "Neighborhood name"
// @Success 200 {object} model.Place "Place with its grid coordinate"
// @Failure 400 {object} ErrorResponse "Missing province"
// @Failure 404 {object} ErrorResponse "Unknown place"
// @Router /address/resolve [get]
func (controller *AddressController) Resolve(c echo.Context) error {
	province := c.QueryParam("province")
	if province == "" {
		return badRequest(c, "province is required")
	}
	city := c.QueryParam("city")
	neighborhood := c.QueryParam("neighborhood")

	coordinate, err := controller.index.Resolve(province, city, neighborhood)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, model.Place{
		Province:     province,
		City:         city,
		Neighborhood: neighborhood,
		Coordinate:   coordinate,
	})
}

package controller

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// SwaggerController serves the UI and document registered by the docs package.
type SwaggerController struct {
	api *echo.Group
}

func NewSwaggerController(api *echo.Group) *SwaggerController {
	return &SwaggerController{api: api}
}

// InitSwaggerRoutes initializes swagger routes
func (controller *SwaggerController) InitSwaggerRoutes() {
	controller.api.GET("/swagger/*", echoSwagger.WrapHandler)
}

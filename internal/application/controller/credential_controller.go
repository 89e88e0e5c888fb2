package controller

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"kma-forecast/internal/domain/model"
)

// CredentialSession is the credential state machine driven by this controller.
type CredentialSession interface {
	Status() model.CredentialStatus
	Submit(ctx context.Context, serviceKey string, keepLogin bool) error
	Reset(ctx context.Context) error
}

type CredentialController struct {
	api     *echo.Group
	session CredentialSession
}

func NewCredentialController(api *echo.Group, session CredentialSession) *CredentialController {
	return &CredentialController{api: api, session: session}
}

// InitCredentialRoutes initializes credential routes
func (controller *CredentialController) InitCredentialRoutes() {
	controller.api.GET("/credential", controller.GetStatus)
	controller.api.PUT("/credential", controller.Submit)
	controller.api.DELETE("/credential", controller.Reset)
}

// GetStatus godoc
// @Summary Get the credential state
// @Tags credential
// @Produce json
// @Success 200 {object} model.CredentialStatus "Session state"
// @Router /credential [get]
func (controller *CredentialController) GetStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.session.Status())
}

// Submit godoc
// @Summary Submit a service key
// @Description Validates the key against the provider and keeps it when accepted
// @Tags credential
// @Accept json
// @Produce json
// @Param credential body model.Credential true "Service key and keep-login flag"
// @Success 200 {object} model.CredentialStatus "Session state"
// @Failure 400 {object} ErrorResponse "Malformed body"
// @Failure 401 {object} ErrorResponse "Service key rejected"
// @Failure 409 {object} ErrorResponse "Replaced or cleared during validation"
// @Router /credential [put]
func (controller *CredentialController) Submit(c echo.Context) error {
	var credential model.Credential
	if err := c.Bind(&credential); err != nil {
		return badRequest(c, "body must be {\"serviceKey\": string, \"keepLogin\": bool}")
	}

	if err := controller.session.Submit(c.Request().Context(), credential.ServiceKey, credential.KeepLogin); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, controller.session.Status())
}

// Reset godoc
// @Summary Forget the service key
// @Tags credential
// @Success 204 "Cleared"
// @Router /credential [delete]
func (controller *CredentialController) Reset(c echo.Context) error {
	if err := controller.session.Reset(c.Request().Context()); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

package controller

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"kma-forecast/internal/domain/model"
	"kma-forecast/pkg/log"
	"kma-forecast/pkg/msg"
)

// Error kinds returned in the "kind" field of error bodies.
const (
	KindBadRequest           = "BAD_REQUEST"
	KindPlaceNotFound        = "PLACE_NOT_FOUND"
	KindCredentialRequired   = "CREDENTIAL_REQUIRED"
	KindCredentialInvalid    = "CREDENTIAL_INVALID"
	KindCredentialRejected   = "CREDENTIAL_REJECTED"
	KindCredentialSuperseded = "CREDENTIAL_SUPERSEDED"
	KindProviderFault        = "PROVIDER_FAULT"
	KindTransport            = "TRANSPORT"
	KindMalformedResponse    = "MALFORMED_RESPONSE"
	KindInternal             = "INTERNAL"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func badRequest(c echo.Context, reason string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: msg.GetMessage("error.bad-request", reason),
		Kind:  KindBadRequest,
	})
}

// respondError writes the status and body matching the kind of err.
func respondError(c echo.Context, err error) error {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		log.Warn("Request failed",
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.String("kind", body.Kind),
			zap.Error(err))
	}
	return c.JSON(status, body)
}

func errorResponse(err error) (int, ErrorResponse) {
	var providerErr *model.ProviderError

	switch {
	case errors.Is(err, model.ErrPlaceNotFound):
		return http.StatusNotFound, ErrorResponse{Error: err.Error(), Kind: KindPlaceNotFound}
	case errors.Is(err, model.ErrCredentialRequired):
		return http.StatusPreconditionRequired, ErrorResponse{Error: msg.GetMessage("credential.required"), Kind: KindCredentialRequired}
	case errors.Is(err, model.ErrCredentialInvalid):
		return http.StatusUnauthorized, ErrorResponse{Error: msg.GetMessage("credential.invalid"), Kind: KindCredentialInvalid}
	case errors.Is(err, model.ErrCredentialSuperseded):
		return http.StatusConflict, ErrorResponse{Error: msg.GetMessage("credential.superseded"), Kind: KindCredentialSuperseded}
	case errors.Is(err, model.ErrCredentialRejected):
		return http.StatusUnauthorized, ErrorResponse{Error: msg.GetMessage("error.credential-rejected"), Kind: KindCredentialRejected}
	case errors.Is(err, model.ErrProviderFault):
		detail := err.Error()
		if errors.As(err, &providerErr) {
			detail = providerErr.Error()
		}
		return http.StatusBadGateway, ErrorResponse{Error: msg.GetMessage("error.provider-fault", detail), Kind: KindProviderFault}
	case errors.Is(err, model.ErrTransport):
		return http.StatusGatewayTimeout, ErrorResponse{Error: msg.GetMessage("error.transport"), Kind: KindTransport}
	case errors.Is(err, model.ErrMalformedResponse):
		return http.StatusBadGateway, ErrorResponse{Error: msg.GetMessage("error.malformed"), Kind: KindMalformedResponse}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: msg.GetMessage("error.internal"), Kind: KindInternal}
	}
}

// pathParam returns a decoded path parameter.
func pathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if value, err := url.PathUnescape(raw); err == nil {
		return value
	}
	return raw
}

package model

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport is a connection, timeout or read failure talking to the provider.
	ErrTransport = errors.New("transport error")
	// ErrCredentialRejected is an XML fault naming the service key as not registered.
	ErrCredentialRejected = errors.New("credential rejected")
	// ErrProviderFault is any other XML fault, or a JSON header with a non-success result code.
	ErrProviderFault = errors.New("provider fault")
	// ErrMalformedResponse is a body that is neither an XML fault nor the expected JSON shape.
	ErrMalformedResponse = errors.New("malformed response")

	ErrPlaceNotFound     = errors.New("place not found")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnmappedEnumValue = errors.New("unmapped enum value")

	// ErrFetchFailed wraps every provider or parser failure surfaced by the weather use case.
	ErrFetchFailed = errors.New("forecast fetch failed")

	ErrCredentialRequired = errors.New("credential required")
	ErrCredentialInvalid  = errors.New("credential invalid")

	// ErrCredentialSuperseded is a submitted credential that lost to a later Submit or Reset.
	ErrCredentialSuperseded = errors.New("credential superseded")
)

// ProviderError carries the provider supplied detail of a fault.
// Kind is one of ErrCredentialRejected, ErrProviderFault or ErrMalformedResponse.
type ProviderError struct {
	Kind    error
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("%v: %s (resultCode=%s)", e.Kind, e.Message, e.Code)
	case e.Message != "":
		return fmt.Sprintf("%v: %s", e.Kind, e.Message)
	case e.Code != "":
		return fmt.Sprintf("%v: resultCode=%s", e.Kind, e.Code)
	default:
		return e.Kind.Error()
	}
}

func (e *ProviderError) Unwrap() error {
	return e.Kind
}

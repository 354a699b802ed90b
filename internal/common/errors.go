// Package common defines shared constants and sentinel errors used across
// the server, the transports and the client. Callers should use errors.Is to
// match these values; services wrap them with a human readable detail.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// ErrorMissingToken is reported when a protected call carries no
	// credential at all. It is a validation failure, not an auth failure.
	ErrorMissingToken = fmt.Errorf("%w: authorization token is required", ErrorValidation)
)

// Invalid returns an ErrorValidation carrying the given detail.
func Invalid(detail string) error {
	return fmt.Errorf("%w: %s", ErrorValidation, detail)
}

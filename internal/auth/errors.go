package auth

import "errors"

var (
	// ErrAuthenticationRequired is returned by RequireResolve when the request
	// carries no usable session. Handlers map it to 401.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrMalformedToken covers a wrong segment count, undecodable base64 and
	// an invalid JSON payload.
	ErrMalformedToken = errors.New("malformed token")
)

package auth

import "errors"

// Errors returned by [TokenManager]. Callers match with [errors.Is].
var (
	// ErrInvalidTokenParams indicates the manager is missing the settings
	// required to issue tokens (sign key, issuer, or duration).
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")
	// ErrTokenIsExpired indicates a structurally valid token whose
	// expiration claim has passed.
	ErrTokenIsExpired = errors.New("token is expired")
	// ErrTokenInvalid indicates any other token validation failure
	// (bad signature, wrong issuer, malformed, missing subject).
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrAPIKeyNotConfigured indicates an API key was presented but no
	// hash is configured to check it against.
	ErrAPIKeyNotConfigured = errors.New("no API key is configured")
	// ErrWrongAPIKey indicates the presented API key does not match the
	// configured hash.
	ErrWrongAPIKey = errors.New("wrong API key")
)

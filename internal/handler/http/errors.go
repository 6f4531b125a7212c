// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package http

import "errors"

// Sentinel errors used by the authentication stage when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth stage when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into a scheme and a credential.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrUnsupportedAuthScheme is returned when the header carries a scheme
	// other than "Bearer" or "ApiKey".
	ErrUnsupportedAuthScheme = errors.New("unsupported `Authorization` scheme")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the credential itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

package server

import "errors"

var (
	// ErrAlreadyStarted is returned by Run when the lifecycle has left
	// the configuring state, which happens on a second Run call.
	ErrAlreadyStarted = errors.New("server already started")

	// ErrNoHandler is returned by NewServer when no request handler is
	// provided.
	ErrNoHandler = errors.New("no request handler is configured")
)

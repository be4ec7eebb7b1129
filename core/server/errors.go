package server

import "errors"

var (
	// ErrMissingAddress is returned when the server address is not provided.
	ErrMissingAddress = errors.New("server address is required")

	// ErrAlreadyRunning is returned when Start is called on a running server.
	ErrAlreadyRunning = errors.New("server is already running")
)

package loglayer

import "errors"

var (
	// ErrNoTransport is returned by Build when no transport was configured.
	ErrNoTransport = errors.New("loglayer: at least one transport is required")
	// ErrDuplicateTransportID is returned by Build when two transports report the same ID.
	ErrDuplicateTransportID = errors.New("loglayer: duplicate transport id")
)

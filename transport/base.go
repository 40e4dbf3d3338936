// Package transport holds the contract shared by every loglayer transport:
// a required target logger and an identifier.
package transport

import (
	"errors"

	"github.com/trickstertwo/loglayer/internal/nilcheck"
)

// ErrNoLogger is returned when a transport is constructed without a target logger.
var ErrNoLogger = errors.New("transport: logger is required")

// Base stores the target logger a transport delivers to. It is immutable
// after NewBase; embed it by value.
type Base[L any] struct {
	id     string
	logger L
}

// NewBase validates logger and returns the base. Typed nils count as missing.
func NewBase[L any](id string, logger L) (Base[L], error) {
	if nilcheck.Interface(logger) {
		return Base[L]{}, ErrNoLogger
	}
	return Base[L]{id: id, logger: logger}, nil
}

// ID identifies the transport, e.g. for diagnostics.
func (b Base[L]) ID() string { return b.id }

// Logger returns the target logger. The transport does not own its lifecycle.
func (b Base[L]) Logger() L { return b.logger }

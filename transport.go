package loglayer

// Params is the normalized record handed to every transport.
//
// Messages keeps the caller's parts in order. Data carries the merged
// context and event metadata; HasData reports whether any was collected.
// Transports must treat both as read-only.
type Params struct {
	Level    Level
	Messages []any
	Data     any
	HasData  bool
}

// Transport is the delivery Strategy a Logger ships records to.
// ShipToLogger returns the argument list it delivered downstream.
type Transport interface {
	ShipToLogger(p Params) []any
}

// TransportFunc adapter.
type TransportFunc func(Params) []any

func (f TransportFunc) ShipToLogger(p Params) []any { return f(p) }

package loglayer

import "time"

// Entry is sent to Observers after every transport has been shipped to.
type Entry struct {
	At       time.Time
	Level    Level
	Messages []any
	Fields   []Field // context + event fields, in bind order
	// Shipped holds, per transport and in registration order, the argument
	// list the transport delivered.
	Shipped [][]any
}

// Observer is notified for each emitted entry (Observer pattern).
// Implementations MUST be concurrency-safe.
type Observer interface {
	OnLog(entry Entry)
}

// ObserverFunc adapter.
type ObserverFunc func(Entry)

func (f ObserverFunc) OnLog(e Entry) { f(e) }

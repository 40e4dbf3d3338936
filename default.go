package loglayer

import (
	"io"
	"os"
)

// defaultTransportFactory is set by a target package (e.g., target/zerolog)
// in its init() to avoid import cycles. Default() uses this to build a logger.
var defaultTransportFactory func(w io.Writer) Transport

// RegisterDefaultTransportFactory registers the constructor used by loglayer.Default().
// Target packages call this from init() to avoid import cycles.
// Example (in target/zerolog):
//
//	func init() {
//	  loglayer.RegisterDefaultTransportFactory(func(w io.Writer) loglayer.Transport {
//	    t, _ := cflo.New(cflo.Config{Logger: zerolog.New(zl)})
//	    return t
//	  })
//	}
func RegisterDefaultTransportFactory(f func(io.Writer) Transport) {
	defaultTransportFactory = f
}

// Default creates a logger using the registered transport factory.
// It writes to os.Stdout and ships everything from LevelDebug up.
// E.g. side import github.com/trickstertwo/loglayer/target/zerolog to auto-register
// the zerolog-backed cflo transport. Panics if no factory is registered.
func Default() *Logger {
	if defaultTransportFactory == nil {
		panic("loglayer: no default transport registered. Import target/zerolog or call loglayer.RegisterDefaultTransportFactory")
	}
	cfg := Config{
		Transports: []Transport{defaultTransportFactory(os.Stdout)},
		MinLevel:   LevelDebug,
	}
	return newLogger(cfg)
}

// New creates a default logger (via Default()) and sets it as global.
// It returns the global logger for convenience.
func New() *Logger {
	l := Default()
	SetGlobal(l)
	return l
}

// UseTransport sets a logger shipping to t as the global logger with the provided min level.
// It builds the logger, sets it as global, and returns it.
func UseTransport(t Transport, min Level, observers ...Observer) *Logger {
	b := NewBuilder().
		AddTransport(t).
		WithMinLevel(min)
	for _, o := range observers {
		b.AddObserver(o)
	}
	l, err := b.Build()
	if err != nil {
		panic(err)
	}
	SetGlobal(l)
	return l
}

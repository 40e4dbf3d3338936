// Package cflo ships loglayer records to a cflo-style logger, the
// five-method console logger used by edge/serverless runtimes.
//
// Level mapping:
//
//	trace, debug -> Debug
//	info         -> Info
//	warn         -> Warn
//	error, fatal -> Error
//	anything else -> Log
package cflo

import (
	"github.com/trickstertwo/loglayer"
	"github.com/trickstertwo/loglayer/internal/nilcheck"
	"github.com/trickstertwo/loglayer/transport"
)

// DefaultID is used when Config.ID is empty.
const DefaultID = "cflo"

// Logger is the capability the transport delivers to. Any type with these
// five methods qualifies; return values, if any, are not observed.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Log(args ...any)
	Warn(args ...any)
	Error(args ...any)
}

// Config for New.
type Config struct {
	Logger Logger // required
	// IncludeMetadata appends the record's metadata as the last argument.
	// nil means true.
	IncludeMetadata *bool
	ID              string
}

// Transport implements loglayer.Transport. It holds no mutable state after
// New and is safe for concurrent use; concurrency of the target logger is
// the target's business.
type Transport struct {
	transport.Base[Logger]
	includeMetadata bool
}

var _ loglayer.Transport = (*Transport)(nil)

// New validates cfg and returns a transport. It fails with transport.ErrNoLogger
// when cfg.Logger is missing.
func New(cfg Config) (*Transport, error) {
	id := cfg.ID
	if id == "" {
		id = DefaultID
	}
	base, err := transport.NewBase(id, cfg.Logger)
	if err != nil {
		return nil, err
	}
	include := true
	if cfg.IncludeMetadata != nil {
		include = *cfg.IncludeMetadata
	}
	return &Transport{Base: base, includeMetadata: include}, nil
}

// Bool returns a pointer to v, for Config.IncludeMetadata.
func Bool(v bool) *bool { return &v }

// IncludeMetadata reports the resolved metadata setting.
func (t *Transport) IncludeMetadata() bool { return t.includeMetadata }

// ShipToLogger delivers p to exactly one method of the target logger and
// returns the argument list it passed. p.Messages and p.Data are never
// modified. Panics raised by the target logger propagate to the caller.
func (t *Transport) ShipToLogger(p loglayer.Params) []any {
	args := make([]any, 0, len(p.Messages)+1)
	args = append(args, p.Messages...)

	// HasData alone is not enough: Data must also be present.
	if t.includeMetadata && p.HasData && !nilcheck.Interface(p.Data) {
		args = append(args, p.Data)
	}

	method(t.Logger(), p.Level)(args...)
	return args
}

// method classifies level onto one of the five target methods.
func method(l Logger, level loglayer.Level) func(...any) {
	switch level {
	case loglayer.LevelTrace, loglayer.LevelDebug:
		return l.Debug
	case loglayer.LevelInfo:
		return l.Info
	case loglayer.LevelWarn:
		return l.Warn
	case loglayer.LevelError, loglayer.LevelFatal:
		return l.Error
	default:
		return l.Log
	}
}

package loglayer

import (
	"fmt"
	"sort"

	"github.com/trickstertwo/xclock"
)

// Config holds everything a Logger is built from.
type Config struct {
	Transports []Transport
	MinLevel   Level
	Observers  []Observer
	Clock      xclock.Clock   // optional; xclock.Now() is used when nil
	Context    map[string]any // bound to every record, like Logger.WithContext
}

// Builder accumulates a Config. The zero MinLevel is LevelInfo.
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: Config{MinLevel: LevelInfo}}
}

// AddTransport appends transports, skipping nil ones. Records are shipped
// in registration order.
func (b *Builder) AddTransport(ts ...Transport) *Builder {
	for _, t := range ts {
		if t != nil {
			b.cfg.Transports = append(b.cfg.Transports, t)
		}
	}
	return b
}

func (b *Builder) WithMinLevel(l Level) *Builder {
	b.cfg.MinLevel = l
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

// WithContext merges ctx into the context bound at build time. Later calls
// win on key collisions.
func (b *Builder) WithContext(ctx map[string]any) *Builder {
	if len(ctx) == 0 {
		return b
	}
	if b.cfg.Context == nil {
		b.cfg.Context = make(map[string]any, len(ctx))
	}
	for k, v := range ctx {
		b.cfg.Context[k] = v
	}
	return b
}

func (b *Builder) AddObserver(o Observer) *Builder {
	if o != nil {
		b.cfg.Observers = append(b.cfg.Observers, o)
	}
	return b
}

// Build validates the configuration and returns the Logger. It fails with
// ErrNoTransport when no transport was added and ErrDuplicateTransportID
// when two identified transports share an ID.
func (b *Builder) Build() (*Logger, error) {
	if len(b.cfg.Transports) == 0 {
		return nil, ErrNoTransport
	}
	seen := make(map[string]struct{}, len(b.cfg.Transports))
	for _, t := range b.cfg.Transports {
		it, ok := t.(identified)
		if !ok {
			continue
		}
		id := it.ID()
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTransportID, id)
		}
		seen[id] = struct{}{}
	}
	return newLogger(b.cfg), nil
}

// identified is implemented by transports built on transport.Base.
type identified interface {
	ID() string
}

// contextFields turns ctx into fields ordered by key.
func contextFields(ctx map[string]any) []Field {
	if len(ctx) == 0 {
		return nil
	}
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fs := make([]Field, len(keys))
	for i, k := range keys {
		fs[i] = FAny(k, ctx[k])
	}
	return fs
}

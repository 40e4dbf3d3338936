package loglayer

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/trickstertwo/xclock"
)

type Logger struct {
	transports []Transport
	minLevel   Level
	clock      xclock.Clock
	baseFields []Field

	// Observers: lock-free reads via atomic.Value; synchronized updates via obsMu.
	// Stored value is []Observer and MUST be treated as immutable by readers.
	observers atomic.Value // holds []Observer
	obsMu     sync.Mutex
}

// Factory: internal constructor.
func newLogger(cfg Config) *Logger {
	l := &Logger{
		transports: append([]Transport(nil), cfg.Transports...),
		minLevel:   cfg.MinLevel,
		clock:      cfg.Clock,
		baseFields: contextFields(cfg.Context),
	}
	if len(cfg.Observers) > 0 {
		obs := make([]Observer, len(cfg.Observers))
		copy(obs, cfg.Observers)
		l.observers.Store(obs)
	} else {
		l.observers.Store(([]Observer)(nil))
	}
	return l
}

// Facade: global access (Singleton + Facade).
var global atomic.Pointer[Logger]

// SetGlobal sets the global Logger (Singleton setter).
func SetGlobal(l *Logger) { global.Store(l) }

// L returns the global Logger; panic if unset to surface misconfig early.
func L() *Logger {
	l := global.Load()
	if l == nil {
		panic("loglayer: global logger not set. Build one and call loglayer.SetGlobal(...)")
	}
	return l
}

// Enabled reports whether logs at 'level' would be shipped by this logger.
// Use to avoid building fields in hot paths when disabled.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.minLevel
}

// Level entry points returning fluent builders.

func (l *Logger) Trace() *Event { return getEvent(l, LevelTrace) }
func (l *Logger) Debug() *Event { return getEvent(l, LevelDebug) }
func (l *Logger) Info() *Event  { return getEvent(l, LevelInfo) }
func (l *Logger) Warn() *Event  { return getEvent(l, LevelWarn) }
func (l *Logger) Error() *Event { return getEvent(l, LevelError) }

// Fatal is shipped like any other level. It never exits the process.
func (l *Logger) Fatal() *Event { return getEvent(l, LevelFatal) }

// Log starts an event at an arbitrary level, including custom ones.
func (l *Logger) Log(level Level) *Event { return getEvent(l, level) }

// With returns a child logger with bound context fields.
func (l *Logger) With(fs ...Field) *Logger {
	child := &Logger{
		transports: l.transports,
		minLevel:   l.minLevel,
		clock:      l.clock,
		baseFields: append(copyFields(nil, l.baseFields), fs...),
	}
	// Inherit a snapshot of observers.
	child.observers.Store(l.snapshotObservers())
	return child
}

// WithContext binds every key of ctx as an Any field.
func (l *Logger) WithContext(ctx map[string]any) *Logger {
	return l.With(contextFields(ctx)...)
}

func (l *Logger) snapshotObservers() []Observer {
	v := l.observers.Load()
	if v == nil {
		return nil
	}
	cur := v.([]Observer)
	if len(cur) == 0 {
		return nil
	}
	out := make([]Observer, len(cur))
	copy(out, cur)
	return out
}

func (l *Logger) AddObserver(o Observer) {
	l.obsMu.Lock()
	defer l.obsMu.Unlock()
	cur := l.snapshotObservers()
	cur = append(cur, o)
	l.observers.Store(cur)
}

func (l *Logger) now() time.Time {
	if l.clock != nil {
		return l.clock.Now()
	}
	return xclock.Now()
}

func (l *Logger) emit(level Level, parts []any, evFields []Field) {
	if level < l.minLevel {
		return
	}
	at := l.now()

	p := Params{Level: level, Messages: parts}
	if n := len(l.baseFields) + len(evFields); n > 0 {
		data := make(map[string]any, n)
		for i := range l.baseFields {
			data[l.baseFields[i].K] = l.baseFields[i].Value()
		}
		// Event fields win over bound context on key collisions.
		for i := range evFields {
			data[evFields[i].K] = evFields[i].Value()
		}
		p.Data = data
		p.HasData = true
	}

	v := l.observers.Load()
	var obs []Observer
	if v != nil {
		obs = v.([]Observer)
	}

	if len(obs) == 0 {
		for _, t := range l.transports {
			t.ShipToLogger(p)
		}
		return
	}

	shipped := make([][]any, len(l.transports))
	for i, t := range l.transports {
		shipped[i] = t.ShipToLogger(p)
	}

	merged := make([]Field, 0, len(l.baseFields)+len(evFields))
	merged = append(merged, l.baseFields...)
	merged = append(merged, evFields...)

	entry := Entry{
		At:       at,
		Level:    level,
		Messages: parts,
		Fields:   merged,
		Shipped:  shipped,
	}
	for _, o := range obs {
		o.OnLog(entry)
	}
}

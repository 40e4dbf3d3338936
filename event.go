package loglayer

import (
	"sync"
	"time"
)

// ErrKey is the metadata key Event.Err stores errors under.
const ErrKey = "err"

// Event collects metadata for one record and ships it on Msg. Events are
// pooled: do not keep a reference after Msg.
//
//	log.Info().Str("requestId", id).Msg("User authentication successful")
type Event struct {
	l      *Logger
	level  Level
	fields []Field
}

var eventPool = sync.Pool{
	New: func() any { return &Event{fields: make([]Field, 0, 8)} },
}

func getEvent(l *Logger, level Level) *Event {
	ev := eventPool.Get().(*Event)
	ev.l, ev.level = l, level
	ev.fields = ev.fields[:0]
	return ev
}

func (e *Event) release() {
	if cap(e.fields) > 128 {
		e.fields = make([]Field, 0, 8)
	} else {
		clear(e.fields)
	}
	e.l, e.level = nil, 0
	eventPool.Put(e)
}

func (e *Event) add(f Field) *Event {
	e.fields = append(e.fields, f)
	return e
}

func (e *Event) Str(k, v string) *Event               { return e.add(FStr(k, v)) }
func (e *Event) Int(k string, v int) *Event           { return e.add(FInt(k, int64(v))) }
func (e *Event) Int64(k string, v int64) *Event       { return e.add(FInt(k, v)) }
func (e *Event) Uint64(k string, v uint64) *Event     { return e.add(FUint(k, v)) }
func (e *Event) Float64(k string, v float64) *Event   { return e.add(FFloat(k, v)) }
func (e *Event) Bool(k string, v bool) *Event         { return e.add(FBool(k, v)) }
func (e *Event) Dur(k string, v time.Duration) *Event { return e.add(FDur(k, v)) }
func (e *Event) Time(k string, v time.Time) *Event    { return e.add(FTime(k, v)) }
func (e *Event) Bytes(k string, v []byte) *Event      { return e.add(FBytes(k, v)) }
func (e *Event) Any(k string, v any) *Event           { return e.add(FAny(k, v)) }

// Err attaches err under ErrKey. Nil errors are skipped.
func (e *Event) Err(err error) *Event {
	if err == nil {
		return e
	}
	return e.add(FErr(ErrKey, err))
}

// Fields attaches every key of m as metadata, in key order.
func (e *Event) Fields(m map[string]any) *Event {
	e.fields = append(e.fields, contextFields(m)...)
	return e
}

// Msg ships the record. Parts reach transports in order and unchanged;
// Msg() with no parts is valid.
func (e *Event) Msg(parts ...any) {
	e.l.emit(e.level, parts, e.fields)
	e.release()
}

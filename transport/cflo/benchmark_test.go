package cflo

import (
	"testing"

	"github.com/trickstertwo/loglayer"
)

var bhLen int

type nopLogger struct{}

func (nopLogger) Debug(args ...any) { bhLen = len(args) }
func (nopLogger) Info(args ...any)  { bhLen = len(args) }
func (nopLogger) Log(args ...any)   { bhLen = len(args) }
func (nopLogger) Warn(args ...any)  { bhLen = len(args) }
func (nopLogger) Error(args ...any) { bhLen = len(args) }

func BenchmarkShipToLogger_NoData(b *testing.B) {
	tr, err := New(Config{Logger: nopLogger{}})
	if err != nil {
		b.Fatal(err)
	}
	p := loglayer.Params{Level: loglayer.LevelInfo, Messages: []any{"ok"}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.ShipToLogger(p)
	}
}

func BenchmarkShipToLogger_WithData(b *testing.B) {
	tr, err := New(Config{Logger: nopLogger{}})
	if err != nil {
		b.Fatal(err)
	}
	p := loglayer.Params{
		Level:    loglayer.LevelWarn,
		Messages: []any{"user", 42, "signed in"},
		Data:     map[string]any{"request_id": "req-1"},
		HasData:  true,
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.ShipToLogger(p)
	}
}

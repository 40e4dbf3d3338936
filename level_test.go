package loglayer

import "testing"

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"trace":   LevelTrace,
		"DEBUG":   LevelDebug,
		" info ":  LevelInfo,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"Fatal":   LevelFatal,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
		if in == "warning" {
			continue
		}
		if back, _ := ParseLevel(got.String()); back != got {
			t.Fatalf("String round trip failed for %v", got)
		}
	}

	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestLevelStringCustom(t *testing.T) {
	t.Parallel()

	if s := Level(2).String(); s != "LEVEL(2)" {
		t.Fatalf("custom level string: %q", s)
	}
}

package cflo_test

import (
	"fmt"

	"github.com/trickstertwo/loglayer"
	"github.com/trickstertwo/loglayer/transport/cflo"
)

// consoleLogger prints like a worker console: level tag, then the arguments.
type consoleLogger struct{}

func (consoleLogger) Debug(args ...any) { fmt.Println(append([]any{"[debug]"}, args...)...) }
func (consoleLogger) Info(args ...any)  { fmt.Println(append([]any{"[info]"}, args...)...) }
func (consoleLogger) Log(args ...any)   { fmt.Println(append([]any{"[log]"}, args...)...) }
func (consoleLogger) Warn(args ...any)  { fmt.Println(append([]any{"[warn]"}, args...)...) }
func (consoleLogger) Error(args ...any) { fmt.Println(append([]any{"[error]"}, args...)...) }

func Example() {
	tr, err := cflo.New(cflo.Config{Logger: consoleLogger{}})
	if err != nil {
		panic(err)
	}
	log, err := loglayer.NewBuilder().
		AddTransport(tr).
		WithMinLevel(loglayer.LevelTrace).
		Build()
	if err != nil {
		panic(err)
	}

	log.WithContext(map[string]any{"service": "auth"}).
		Info().
		Str("requestId", "req-123").
		Str("userId", "456").
		Msg("User authentication successful")
	log.Trace().Msg("Debug information")
	log.Warn().Msg("Warning message")
	log.Fatal().Msg("Error occurred")

	// Output:
	// [info] User authentication successful map[requestId:req-123 service:auth userId:456]
	// [debug] Debug information
	// [warn] Warning message
	// [error] Error occurred
}

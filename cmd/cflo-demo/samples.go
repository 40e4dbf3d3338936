package main

import (
	"errors"

	"github.com/trickstertwo/loglayer"
)

// emitSamples writes the canonical demo records.
func emitSamples(log *loglayer.Logger) {
	log.WithContext(map[string]any{"service": "auth"}).
		Info().
		Fields(map[string]any{"requestId": "req-123", "userId": "456"}).
		Msg("User authentication successful")

	log.Error().
		Err(errors.New("database connection failed")).
		Msg("Failed to connect to database")

	log.Debug().Fields(map[string]any{"debugData": "test"}).Msg("Debug information")
	log.Warn().Msg("Warning message")
	log.Error().Msg("Error occurred")
}

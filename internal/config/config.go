// Package config loads the YAML configuration of the cflo-demo command.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"

	"github.com/trickstertwo/loglayer"
)

// Backends lists the accepted values of Config.Backend.
var Backends = []string{"zap", "zerolog", "slog", "logr", "otel", "gelf"}

// ErrUnknownBackend is returned when backend is not one of Backends.
var ErrUnknownBackend = errors.New("config: unknown backend")

// Output describes where rendered lines go. An empty Path means stdout.
type Output struct {
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" validate:"gte=0"`
	Compress   bool   `yaml:"compress"`
}

// OTel configures the OTLP exporter used by the otel backend.
type OTel struct {
	Protocol    string `yaml:"protocol" validate:"oneof=grpc http"`
	Endpoint    string `yaml:"endpoint" validate:"omitempty,hostname_port"`
	Insecure    bool   `yaml:"insecure"`
	ServiceName string `yaml:"service_name"`
}

// GELF configures the Graylog input used by the gelf backend.
type GELF struct {
	Address     string `yaml:"address" validate:"omitempty,hostname_port"`
	Protocol    string `yaml:"protocol" validate:"oneof=udp tcp"`
	Compression string `yaml:"compression" validate:"oneof=none gzip zlib"`
	Facility    string `yaml:"facility"`
}

// Config represents the demo configuration.
type Config struct {
	Backend         string `yaml:"backend" validate:"required"`
	Level           string `yaml:"level" validate:"required"`
	IncludeMetadata bool   `yaml:"include_metadata"`
	Format          string `yaml:"format" validate:"oneof=json text"`
	Output          Output `yaml:"output"`
	OTel            OTel   `yaml:"otel"`
	GELF            GELF   `yaml:"gelf"`
}

// Default returns the configuration used when a key is absent.
func Default() Config {
	return Config{
		Backend:         "zap",
		Level:           "info",
		IncludeMetadata: true,
		Format:          "json",
		Output: Output{
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		OTel: OTel{
			Protocol:    "grpc",
			Endpoint:    "localhost:4317",
			Insecure:    true,
			ServiceName: "cflo-demo",
		},
		GELF: GELF{
			Address:     "localhost:12201",
			Protocol:    "udp",
			Compression: "none",
			Facility:    "cflo-demo",
		},
	}
}

// LoadConfig reads, parses and validates the configuration at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file '%s': %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints, the backend name and the level.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed '%s' (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("configuration validation failed: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if !slices.Contains(Backends, c.Backend) {
		return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownBackend, c.Backend, strings.Join(Backends, ", "))
	}
	if c.Backend == "otel" && c.OTel.Endpoint == "" {
		return errors.New("otel.endpoint is required when backend is 'otel'")
	}
	if c.Backend == "gelf" && c.GELF.Address == "" {
		return errors.New("gelf.address is required when backend is 'gelf'")
	}
	if _, err := loglayer.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid level: %w", err)
	}
	return nil
}

// MinLevel returns the parsed level. Validate must have succeeded.
func (c *Config) MinLevel() loglayer.Level {
	l, err := loglayer.ParseLevel(c.Level)
	if err != nil {
		return loglayer.LevelInfo
	}
	return l
}

// OpenOutput returns the writer for rendered lines: stdout (os.Stdout when
// nil), or a rotating file when Output.Path is set. Closing the stdout
// writer is a no-op.
func (c *Config) OpenOutput(stdout io.Writer) io.WriteCloser {
	if c.Output.Path == "" {
		if stdout == nil {
			stdout = os.Stdout
		}
		return nopCloser{stdout}
	}
	return &lumberjack.Logger{
		Filename:   c.Output.Path,
		MaxSize:    c.Output.MaxSizeMB,
		MaxBackups: c.Output.MaxBackups,
		MaxAge:     c.Output.MaxAgeDays,
		Compress:   c.Output.Compress,
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

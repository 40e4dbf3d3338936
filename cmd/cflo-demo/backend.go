package main

import (
	"context"
	"fmt"
	"io"

	"github.com/go-logr/logr/funcr"

	"github.com/trickstertwo/loglayer"
	"github.com/trickstertwo/loglayer/internal/config"
	gelftarget "github.com/trickstertwo/loglayer/target/gelf"
	logrtarget "github.com/trickstertwo/loglayer/target/logr"
	oteltarget "github.com/trickstertwo/loglayer/target/otel"
	slogtarget "github.com/trickstertwo/loglayer/target/slog"
	zaptarget "github.com/trickstertwo/loglayer/target/zap"
	zerologtarget "github.com/trickstertwo/loglayer/target/zerolog"
	"github.com/trickstertwo/loglayer/transport/cflo"
)

type shutdownFunc func(context.Context) error

func noShutdown(context.Context) error { return nil }

// buildTarget creates the cflo.Logger for cfg.Backend writing to w. The
// returned shutdown flushes backends that buffer.
func buildTarget(ctx context.Context, cfg *config.Config, w io.Writer) (cflo.Logger, shutdownFunc, error) {
	minLevel := cfg.MinLevel()
	text := cfg.Format == "text"

	switch cfg.Backend {
	case "zap":
		l := zaptarget.Build(zaptarget.Config{Writer: w, MinLevel: minLevel, Console: text})
		return l, func(context.Context) error { return l.Sync() }, nil
	case "zerolog":
		return zerologtarget.Build(zerologtarget.Config{Writer: w, MinLevel: minLevel, Console: text}), noShutdown, nil
	case "slog":
		format := slogtarget.FormatJSON
		if text {
			format = slogtarget.FormatText
		}
		return slogtarget.Build(slogtarget.Config{Writer: w, MinLevel: minLevel, Format: format}), noShutdown, nil
	case "logr":
		write := func(obj string) { _, _ = fmt.Fprintln(w, obj) }
		opts := funcr.Options{Verbosity: logrtarget.DefaultDebugVerbosity}
		if text {
			return logrtarget.New(funcr.New(func(prefix, args string) { write(prefix + args) }, opts)), noShutdown, nil
		}
		return logrtarget.New(funcr.NewJSON(write, opts)), noShutdown, nil
	case "otel":
		p, err := oteltarget.NewProvider(ctx, oteltarget.ProviderConfig{
			Protocol:    cfg.OTel.Protocol,
			Endpoint:    cfg.OTel.Endpoint,
			Insecure:    cfg.OTel.Insecure,
			ServiceName: cfg.OTel.ServiceName,
		})
		if err != nil {
			return nil, nil, err
		}
		return oteltarget.NewFromProvider(p, ""), p.Shutdown, nil
	case "gelf":
		l, err := gelftarget.Build(gelftarget.Config{
			Address:     cfg.GELF.Address,
			Protocol:    cfg.GELF.Protocol,
			Compression: cfg.GELF.Compression,
			Facility:    cfg.GELF.Facility,
		})
		if err != nil {
			return nil, nil, err
		}
		return l, func(context.Context) error { return l.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
	}
}

func newLogger(target cflo.Logger, cfg *config.Config) (*loglayer.Logger, error) {
	t, err := cflo.New(cflo.Config{
		Logger:          target,
		IncludeMetadata: cflo.Bool(cfg.IncludeMetadata),
		ID:              "cflo-" + cfg.Backend,
	})
	if err != nil {
		return nil, fmt.Errorf("create transport: %w", err)
	}
	return loglayer.NewBuilder().
		AddTransport(t).
		WithMinLevel(cfg.MinLevel()).
		Build()
}

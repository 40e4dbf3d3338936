package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trickstertwo/loglayer"
	"github.com/trickstertwo/loglayer/internal/config"
)

type runOptions struct {
	configPath string
	backend    string
	level      string
	noMetadata bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cflo-demo",
		Short:        "Ship sample records through the cflo transport",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newValidateCmd())
	return root
}

func newRunCmd() *cobra.Command {
	opts := runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Emit the sample records to the configured backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadRunConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd, cfg)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "path to the YAML config (defaults apply when empty)")
	f.StringVar(&opts.backend, "backend", "", "override backend (zap, zerolog, slog, logr, otel, gelf)")
	f.StringVar(&opts.level, "level", "", "override minimum level")
	f.BoolVar(&opts.noMetadata, "no-metadata", false, "do not append metadata to the delivered arguments")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate path",
		Short: "Validate a config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (backend=%s level=%s)\n", args[0], cfg.Backend, cfg.Level)
			return err
		},
	}
}

func loadRunConfig(cmd *cobra.Command, opts runOptions) (*config.Config, error) {
	var cfg *config.Config
	if opts.configPath != "" {
		c, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = c
	} else {
		c := config.Default()
		cfg = &c
	}

	if cmd.Flags().Changed("backend") {
		cfg.Backend = opts.backend
	}
	if cmd.Flags().Changed("level") {
		cfg.Level = opts.level
	}
	if opts.noMetadata {
		cfg.IncludeMetadata = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	out := cfg.OpenOutput(cmd.OutOrStdout())
	defer out.Close()

	target, shutdown, err := buildTarget(ctx, cfg, out)
	if err != nil {
		return err
	}
	defer func() { _ = shutdown(ctx) }()

	log, err := newLogger(target, cfg)
	if err != nil {
		return err
	}
	loglayer.SetGlobal(log)

	log.Debug().Str("backend", cfg.Backend).Bool("include_metadata", cfg.IncludeMetadata).Msg("cflo-demo starting")
	emitSamples(log)
	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/team-matcher/internal/config"
	"github.com/jonathan/team-matcher/internal/logging"
	"github.com/jonathan/team-matcher/internal/matching"
	"github.com/jonathan/team-matcher/internal/observability"
	"github.com/jonathan/team-matcher/internal/profiles"
)

// rootOptions carries the global flags and what PersistentPreRunE builds from them
type rootOptions struct {
	configPath string
	debug      bool
	jsonLogs   bool
	verbose    bool

	fileConfig config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "teammatch",
		Short:         "Teammate compatibility matching",
		Long:          "teammatch scores how well two co-founder or teammate profiles fit together and ranks candidate matches, from the command line or over a REST API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to JSON config file")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.jsonLogs, "json-logs", false, "Emit logs as JSON")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print a human-readable summary to stderr")

	cmd.AddCommand(
		newScoreCmd(opts),
		newRankCmd(opts),
		newValidateCmd(opts),
		newServeCmd(opts),
	)

	return cmd
}

// setup loads the config file, if any, and builds the logger
func (o *rootOptions) setup() error {
	if o.configPath != "" {
		cfg, err := config.LoadConfig(o.configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		o.fileConfig = *cfg
	}

	logger, err := logging.New(o.jsonLogs || o.fileConfig.JSONLogs, o.debug || o.fileConfig.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	o.logger = logger
	return nil
}

// merged applies config file values beneath the command's flag values
func (o *rootOptions) merged(flags config.Config) (config.Config, error) {
	cfg := flags.MergeWithDefaults(o.fileConfig)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadService builds a matching service over the profile bank at path
func (o *rootOptions) loadService(path string, defaults matching.RankOptions) (*matching.Service, error) {
	if path == "" {
		return nil, fmt.Errorf("--profiles is required (or set \"profiles\" in the config file)")
	}
	store, err := profiles.LoadMemoryStore(path)
	if err != nil {
		return nil, err
	}
	return matching.NewService(store, o.logger, defaults), nil
}

func (o *rootOptions) printer(cmd *cobra.Command) *observability.Printer {
	if !o.verbose {
		return nil
	}
	return observability.NewPrinter(cmd.ErrOrStderr())
}

// writeJSON writes v as indented JSON to path, or to w when path is empty.
// It returns the bytes written so callers can validate them.
func writeJSON(w io.Writer, path string, v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output JSON: %w", err)
	}

	if path == "" {
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return nil, fmt.Errorf("failed to write output: %w", err)
		}
		return data, nil
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return data, nil
}

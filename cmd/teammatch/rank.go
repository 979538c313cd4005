package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/team-matcher/internal/config"
	"github.com/jonathan/team-matcher/internal/matching"
	"github.com/jonathan/team-matcher/internal/schemas"
)

type rankOptions struct {
	profiles string
	user     string
	minScore int
	limit    int
	workers  int
	out      string
}

func newRankCmd(root *rootOptions) *cobra.Command {
	opts := &rankOptions{}

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank every profile in a bank against one user",
		Long:  "Scores each profile in the bank against --user and prints RankedMatches JSON, best match first.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRank(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.profiles, "profiles", "p", "", "Path to profile bank JSON file")
	cmd.Flags().StringVarP(&opts.user, "user", "u", "", "ID of the profile to rank matches for (required)")
	cmd.Flags().IntVar(&opts.minScore, "min-score", 0, "Drop matches with an overall score below this")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Maximum number of matches (0 = all)")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Score candidates in parallel with this many goroutines")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the RankedMatches JSON to this file instead of stdout")

	if err := cmd.MarkFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}

	return cmd
}

func runRank(cmd *cobra.Command, root *rootOptions, opts *rankOptions) error {
	cfg, err := root.merged(config.Config{
		Profiles: opts.profiles,
		MinScore: opts.minScore,
		Limit:    opts.limit,
		Workers:  opts.workers,
	})
	if err != nil {
		return err
	}
	// An explicit zero on the command line beats a config file value
	if cmd.Flags().Changed("min-score") {
		cfg.MinScore = opts.minScore
	}
	if cmd.Flags().Changed("limit") {
		cfg.Limit = opts.limit
	}

	svc, err := root.loadService(cfg.Profiles, matching.RankOptions{})
	if err != nil {
		return err
	}

	ranked, err := svc.MatchesFor(cmd.Context(), opts.user, matching.RankOptions{
		MinScore: cfg.MinScore,
		Limit:    cfg.Limit,
		Workers:  cfg.Workers,
	})
	if err != nil {
		return fmt.Errorf("failed to rank matches for %s: %w", opts.user, err)
	}

	if p := root.printer(cmd); p != nil {
		p.PrintRankedMatches(ranked)
	}

	data, err := writeJSON(cmd.OutOrStdout(), opts.out, ranked)
	if err != nil {
		return err
	}

	// Output validation is a safety check; failures only warn
	if schemaPath := schemas.ResolveSchemaPath(schemas.RankedMatchesSchema); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			root.logger.Warn("output validation failed", zap.Error(err))
		}
	}

	return nil
}

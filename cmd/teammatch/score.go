package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/team-matcher/internal/config"
	"github.com/jonathan/team-matcher/internal/matching"
)

type scoreOptions struct {
	profiles string
	a        string
	b        string
	out      string
}

func newScoreCmd(root *rootOptions) *cobra.Command {
	opts := &scoreOptions{}

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score two profiles against each other",
		Long:  "Loads a profile bank and prints the MatchResult JSON for profiles --a and --b.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScore(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.profiles, "profiles", "p", "", "Path to profile bank JSON file")
	cmd.Flags().StringVar(&opts.a, "a", "", "ID of the first profile (required)")
	cmd.Flags().StringVar(&opts.b, "b", "", "ID of the second profile (required)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the MatchResult JSON to this file instead of stdout")

	if err := cmd.MarkFlagRequired("a"); err != nil {
		panic(fmt.Sprintf("failed to mark a flag as required: %v", err))
	}
	if err := cmd.MarkFlagRequired("b"); err != nil {
		panic(fmt.Sprintf("failed to mark b flag as required: %v", err))
	}

	return cmd
}

func runScore(cmd *cobra.Command, root *rootOptions, opts *scoreOptions) error {
	cfg, err := root.merged(config.Config{Profiles: opts.profiles})
	if err != nil {
		return err
	}

	svc, err := root.loadService(cfg.Profiles, matching.RankOptions{})
	if err != nil {
		return err
	}

	result, err := svc.MatchPair(cmd.Context(), opts.a, opts.b)
	if err != nil {
		return fmt.Errorf("failed to score %s against %s: %w", opts.a, opts.b, err)
	}

	if p := root.printer(cmd); p != nil {
		p.PrintMatchResult(result)
	}

	_, err = writeJSON(cmd.OutOrStdout(), opts.out, result)
	return err
}

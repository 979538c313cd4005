package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/team-matcher/internal/config"
	"github.com/jonathan/team-matcher/internal/profiles"
	"github.com/jonathan/team-matcher/internal/schemas"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	var bankPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a profile bank",
		Long:  "Checks a profile bank against schemas/profile_bank.schema.json, then loads it to catch duplicate ids and invalid profiles.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.merged(config.Config{Profiles: bankPath})
			if err != nil {
				return err
			}
			if cfg.Profiles == "" {
				return fmt.Errorf("--profiles is required (or set \"profiles\" in the config file)")
			}

			schemaPath := schemas.ResolveSchemaPath(schemas.ProfileBankSchema)
			if schemaPath == "" {
				return fmt.Errorf("schema not found: %s", schemas.ProfileBankSchema)
			}
			if err := schemas.ValidateJSON(schemaPath, cfg.Profiles); err != nil {
				return err
			}

			bank, err := profiles.LoadBank(cfg.Profiles)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Profile bank %s is valid: %d profiles\n", cfg.Profiles, len(bank.Profiles))
			return err
		},
	}

	cmd.Flags().StringVarP(&bankPath, "profiles", "p", "", "Path to profile bank JSON file")

	return cmd
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/team-matcher/internal/config"
	"github.com/jonathan/team-matcher/internal/db"
	"github.com/jonathan/team-matcher/internal/matching"
	"github.com/jonathan/team-matcher/internal/profiles"
	"github.com/jonathan/team-matcher/internal/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var (
		port     int
		bankPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long: `Start an HTTP server exposing profile and matching endpoints.
Profiles are stored in PostgreSQL when DATABASE_URL is set, otherwise in memory seeded from --profiles.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.merged(config.Config{
				Profiles:    bankPath,
				Port:        port,
				DatabaseURL: os.Getenv("DATABASE_URL"),
			})
			if err != nil {
				return err
			}

			store, closeStore, err := openStore(cmd.Context(), cfg, root.logger)
			if err != nil {
				return err
			}
			defer closeStore()

			srv := server.New(server.Config{
				Port: cfg.Port,
				Defaults: matching.RankOptions{
					MinScore: cfg.MinScore,
					Limit:    cfg.Limit,
					Workers:  cfg.Workers,
				},
			}, store, root.logger)

			return srv.Start()
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, fmt.Sprintf("Port to listen on (default %d)", config.DefaultPort))
	cmd.Flags().StringVarP(&bankPath, "profiles", "p", "", "Profile bank JSON to seed the store with")

	return cmd
}

// openStore picks PostgreSQL when a database URL is configured and the in-memory store otherwise.
// A configured profile bank seeds whichever store is chosen.
func openStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (profiles.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		if cfg.Profiles == "" {
			logger.Info("starting with an empty in-memory profile store")
			return profiles.NewMemoryStore(nil), func() {}, nil
		}
		store, err := profiles.LoadMemoryStore(cfg.Profiles)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("loaded profile bank into memory", zap.String("path", cfg.Profiles))
		return store, func() {}, nil
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, nil, err
	}

	if cfg.Profiles != "" {
		if err := seedStore(ctx, database, cfg.Profiles); err != nil {
			database.Close()
			return nil, nil, err
		}
		logger.Info("seeded database from profile bank", zap.String("path", cfg.Profiles))
	}

	return database, database.Close, nil
}

// seedStore saves every profile in the bank at path into store
func seedStore(ctx context.Context, store profiles.Store, path string) error {
	bank, err := profiles.LoadBank(path)
	if err != nil {
		return err
	}
	for i := range bank.Profiles {
		if err := store.Save(ctx, &bank.Profiles[i]); err != nil {
			return fmt.Errorf("failed to seed profile %s: %w", bank.Profiles[i].ID, err)
		}
	}
	return nil
}

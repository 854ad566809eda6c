package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-matcher/internal/db"
	"github.com/jonathan/talent-matcher/internal/store"
	"github.com/jonathan/talent-matcher/internal/types"
)

const connectTimeout = 10 * time.Second

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronise the profile pool with PostgreSQL",
	Long:  "Pushes the pool file into the database in one transaction, or with --pull replaces the pool file with the database contents. --list prints the persisted profiles without touching the pool.",
	RunE:  runSync,
}

var (
	syncPull   bool
	syncList   bool
	syncOutput string
)

func init() {
	syncCmd.Flags().BoolVar(&syncPull, "pull", false, "Load the pool from the database instead of pushing it")
	syncCmd.Flags().BoolVar(&syncList, "list", false, "List the profiles stored in the database")
	syncCmd.Flags().StringVarP(&syncOutput, "out", "o", "", "Path to output the --list records JSON (default stdout)")
	syncCmd.MarkFlagsMutuallyExclusive("pull", "list")

	rootCmd.AddCommand(syncCmd)
}

func runSync(_ *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	ctx := context.Background()

	if syncList {
		database, err := a.connect(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		records, err := database.ListProfileRecords(ctx)
		if err != nil {
			return err
		}
		a.logger.Info("database profiles listed", zap.Int("profiles", len(records)))
		if records == nil {
			records = []db.ProfileRecord{}
		}
		return emitJSON(records, syncOutput)
	}

	if syncPull {
		database, err := a.connect(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		s, err := pullPool(ctx, a, database)
		if err != nil {
			return err
		}
		if err := a.savePool(s); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Pulled %d profiles into %s\n", s.Count(), poolPath)
		return nil
	}

	s, err := a.openPool(false)
	if err != nil {
		return err
	}
	stats, err := pushPool(ctx, a, s)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Synced %d profiles and %d scoring results\n", stats.Profiles, stats.ScoringResults)
	return nil
}

// connect opens the database named by the configuration and makes sure the schema exists
func (a *app) connect(ctx context.Context) (*db.DB, error) {
	if a.cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("no database configured: set DATABASE_URL or database_url in the config file")
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	database, err := db.Connect(connectCtx, a.cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// pushPool writes every pool profile and its scoring result to the database
func pushPool(ctx context.Context, a *app, s *store.Store) (*db.SyncStats, error) {
	database, err := a.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	profiles := s.List()
	results := make([]*types.ScoringResult, 0, len(profiles))
	for _, p := range profiles {
		r, err := s.GetScoringResult(p.ID)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	stats, err := database.SyncPool(ctx, profiles, results)
	if err != nil {
		return nil, err
	}
	a.logger.Info("pool synced to database", zap.Int("profiles", stats.Profiles), zap.Int("scoring_results", stats.ScoringResults))
	return stats, nil
}

// pullPool loads profiles and scoring results concurrently into a fresh store
func pullPool(ctx context.Context, a *app, database *db.DB) (*store.Store, error) {
	var (
		profiles []*types.CandidateProfile
		results  map[string]*types.ScoringResult
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profiles, err = database.LoadProfiles(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		results, err = database.LoadScoringResults(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := a.newStore()
	for _, p := range profiles {
		if _, err := s.StoreProfile(p); err != nil {
			return nil, err
		}
		if r, ok := results[p.ID]; ok {
			if err := s.StoreScoringResult(p.ID, r); err != nil {
				return nil, err
			}
		}
	}
	a.logger.Info("pool loaded from database", zap.Int("profiles", len(profiles)), zap.Int("scoring_results", len(results)))
	return s, nil
}

package cmd

import (
	"context"
	"fmt"
	"time"

	"country-pulse/core/config"
	"country-pulse/core/database"
	"country-pulse/core/logger"
	"country-pulse/core/storage"
	"country-pulse/feature/countries"
	"country-pulse/feature/countries/source"
	"country-pulse/feature/summary"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	refreshTimeout time.Duration
	skipSummary    bool
)

// refreshCmd runs one refresh cycle from the CLI, without the HTTP server.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Run one fetch-reconcile-persist cycle",
	Long: `Fetches the country list and exchange rates, reconciles them against
the database, and regenerates the summary image.

Examples:
  # Full refresh with summary image
  country-pulse refresh

  # Refresh without touching object storage
  country-pulse refresh --skip-summary

  # Bound the whole cycle
  country-pulse refresh --timeout 2m`,
	RunE: runRefresh,
}

func init() {
	refreshCmd.Flags().DurationVar(&refreshTimeout, "timeout", 5*time.Minute, "Upper bound for the whole refresh cycle")
	refreshCmd.Flags().BoolVar(&skipSummary, "skip-summary", false, "Skip rendering and uploading the summary image")

	RootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := countries.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}

	var sink countries.SummarySink
	if !skipSummary {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		sink = summary.NewSink(client, cfg.Storage.Bucket, l)
	}

	recordStore := countries.NewStore(db)
	engine := countries.NewEngine(
		source.NewRestCountriesClient(cfg.Sources),
		source.NewExchangeRateClient(cfg.Sources),
		recordStore,
		countries.RandomMultiplier{},
		l,
		nil, // no metrics endpoint in one-shot mode
	)
	service := countries.NewService(recordStore, engine, sink, cfg.Server.TopN(), l)

	l.Info("Starting refresh cycle")

	outcome, err := service.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	l.Info("Refresh finished",
		zap.Int("total", outcome.TotalCountries),
		zap.Int("inserted", outcome.Inserted),
		zap.Int("updated", outcome.Updated),
		zap.Bool("degraded", outcome.Degraded),
	)
	return nil
}

package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"country-pulse/core/config"
	"country-pulse/core/database"
	"country-pulse/core/loader"
	"country-pulse/core/logger"
	"country-pulse/core/metrics"
	"country-pulse/core/middleware/rayid"
	"country-pulse/core/storage"
	"country-pulse/feature/countries"
	"country-pulse/feature/countries/source"
	"country-pulse/feature/summary"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "country-pulse/docs/swagger"
)

// @title Country Pulse API
// @version 1.0
// @description RESTful API for country data reconciled with currency exchange rates.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the country pulse server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := countries.AutoMigrate(db); err != nil {
			logg.Fatal("Failed to migrate database schema", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 5. Metrics Registry
		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector())
		refreshMetrics := metrics.NewRefreshMetrics(registry)

		// 6. Assemble the countries pipeline
		recordStore := countries.NewStore(db)
		countrySrc := source.NewRestCountriesClient(cfg.Sources)
		rateSrc := source.NewExchangeRateClient(cfg.Sources)
		engine := countries.NewEngine(countrySrc, rateSrc, recordStore,
			countries.RandomMultiplier{}, logg, refreshMetrics)

		summaryFeature := summary.NewFeature(store, cfg.Storage.Bucket, logg)
		service := countries.NewService(recordStore, engine,
			summaryFeature.Sink(), cfg.Server.TopN(), logg)

		// 7. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// RayID must be first to trace everything
		app.Use(rayid.New())

		// Request logging with Zap + RayID
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Documentation and metrics (public)
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

		// 8. Load Features
		// Summary goes first: /countries/image must be registered before
		// the /countries/:name wildcard.
		mgr := loader.NewManager()
		mgr.Register(summaryFeature)
		mgr.Register(countries.NewFeature(service, logg, cfg.Server.ApiKey))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

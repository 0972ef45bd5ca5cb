package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wellness/wellness/internal/config"
	"github.com/wellness/wellness/internal/domain/advisory"
	"github.com/wellness/wellness/internal/domain/emergency"
	"github.com/wellness/wellness/internal/domain/engagement"
	"github.com/wellness/wellness/internal/domain/identity"
	"github.com/wellness/wellness/internal/domain/preventive"
	"github.com/wellness/wellness/internal/domain/symptom"
	"github.com/wellness/wellness/internal/domain/wellness"
	"github.com/wellness/wellness/internal/platform/db"
	"github.com/wellness/wellness/internal/platform/middleware"
	"github.com/wellness/wellness/internal/platform/seed"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wellness-server",
		Short: "Wellness Platform API Server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(initCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

// connect loads config and opens the store connection shared by every
// subcommand.
func connect(ctx context.Context, logger zerolog.Logger) (*config.Config, *mongo.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return nil, nil, err
	}
	logger.Info().Str("database", cfg.DatabaseName).Msg("connected to store")
	return cfg, client, nil
}

// buildStores wires the document-backed repositories for a database handle.
func buildStores(database *mongo.Database) (seed.Stores, preventive.Repository) {
	stores := seed.Stores{
		Users:      identity.NewService(identity.NewUserRepoMongo(database)),
		Providers:  identity.NewProviderRepoMongo(database),
		Patients:   identity.NewPatientRepoMongo(database),
		Wellness:   wellness.NewRepoMongo(database),
		Reminders:  engagement.NewReminderRepoMongo(database),
		Adherence:  engagement.NewAdherenceRepoMongo(database),
		Advisories: advisory.NewRepoMongo(database),
		Symptoms:   symptom.NewRepoMongo(database),
		Cards:      emergency.NewRepoMongo(database),
	}
	return stores, preventive.NewRepoMongo(database)
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the store with seed data",
	}

	defaults := seed.DefaultConfig()
	dataCmd := &cobra.Command{
		Use:   "data",
		Short: "Clear the store and generate a synthetic dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := seed.Config{}
			cfg.Providers, _ = cmd.Flags().GetInt("providers")
			cfg.Patients, _ = cmd.Flags().GetInt("patients")
			cfg.WellnessEntries, _ = cmd.Flags().GetInt("wellness-entries")
			cfg.Reminders, _ = cmd.Flags().GetInt("reminders")
			cfg.Advisories, _ = cmd.Flags().GetInt("advisories")
			cfg.SymptomReports, _ = cmd.Flags().GetInt("symptom-reports")
			cfg.Seed, _ = cmd.Flags().GetInt64("seed")

			logger := newLogger()
			ctx := context.Background()
			appCfg, client, err := connect(ctx, logger)
			if err != nil {
				return err
			}
			defer client.Disconnect(ctx)

			stores, _ := buildStores(client.Database(appCfg.DatabaseName))
			_, err = seed.NewSeeder(cfg, stores, logger).Run(ctx)
			return err
		},
	}
	dataCmd.Flags().Int("providers", defaults.Providers, "Number of providers to create")
	dataCmd.Flags().Int("patients", defaults.Patients, "Number of patients to create")
	dataCmd.Flags().Int("wellness-entries", defaults.WellnessEntries, "Number of wellness entries to create")
	dataCmd.Flags().Int("reminders", defaults.Reminders, "Number of reminders to create")
	dataCmd.Flags().Int("advisories", defaults.Advisories, "Number of advisories to create")
	dataCmd.Flags().Int("symptom-reports", defaults.SymptomReports, "Number of symptom reports to create")
	dataCmd.Flags().Int64("seed", 0, "Randomness seed (0 = time-based)")
	cmd.AddCommand(dataCmd)

	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "Replace the preventive care rule catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := context.Background()
			appCfg, client, err := connect(ctx, logger)
			if err != nil {
				return err
			}
			defer client.Disconnect(ctx)

			_, rules := buildStores(client.Database(appCfg.DatabaseName))
			return preventive.SeedRules(ctx, rules, logger)
		},
	}
	cmd.AddCommand(rulesCmd)

	return cmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Seed rules and synthetic data if the store is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := context.Background()
			appCfg, client, err := connect(ctx, logger)
			if err != nil {
				return err
			}
			defer client.Disconnect(ctx)

			database := client.Database(appCfg.DatabaseName)
			stores, rules := buildStores(database)
			seeder := seed.NewSeeder(seed.DefaultConfig(), stores, logger)
			gate := seed.NewGate(stores.Users, rules, seeder, logger)

			initialized, err := gate.InitializeIfEmpty(ctx)
			if err != nil {
				return err
			}
			if initialized {
				logger.Info().Msg("backend is ready to use")
			}
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the wellness API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to store")
	}
	defer client.Disconnect(context.Background())
	logger.Info().Msg("connected to store")

	database := client.Database(cfg.DatabaseName)
	stores, rules := buildStores(database)

	// First-boot initialization. Failures are logged, not fatal: an
	// unreachable seed should not keep the API down.
	if cfg.AutoInit {
		seeder := seed.NewSeeder(seed.DefaultConfig(), stores, logger)
		gate := seed.NewGate(stores.Users, rules, seeder, logger)
		if _, err := gate.InitializeIfEmpty(ctx); err != nil {
			logger.Warn().Err(err).Msg("store initialization failed")
		}
	} else {
		logger.Info().Msg("auto initialization disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	admin := e.Group("/admin")
	seedHandler := seed.NewHandler(stores, rules, logger)
	seedHandler.RegisterRoutes(admin)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maydkoch/levlresources/internal/config"
	"github.com/maydkoch/levlresources/internal/core"
	"github.com/maydkoch/levlresources/internal/driver"
	"github.com/maydkoch/levlresources/internal/llm"
)

var cfgPath string

// app holds the wired pipeline for one command invocation.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	driver   *driver.Neo4jDriver
	pipeline *core.Pipeline
}

func newApp(ctx context.Context) (*app, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	var cfg *config.Config
	switch {
	case cfgPath != "":
		cfg, err = config.Load(cfgPath)
	default:
		// Fall back to env-only config when the default file is absent.
		if _, statErr := os.Stat("config/config.toml"); statErr == nil {
			cfg, err = config.Load("config/config.toml")
		} else {
			cfg = config.Default()
		}
	}
	if err != nil {
		return nil, err
	}

	d, err := driver.NewNeo4jDriver(cfg.Neo4j.URI, cfg.Neo4j.User, cfg.Neo4j.Password, logger)
	if err != nil {
		return nil, err
	}

	llmClient, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		d.Close(ctx)
		return nil, err
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		driver:   d,
		pipeline: core.NewPipeline(d, llmClient, cfg, logger),
	}, nil
}

func (a *app) close(ctx context.Context) {
	if err := a.driver.Close(ctx); err != nil {
		a.logger.Warn("failed to close graph driver", zap.Error(err))
	}
	_ = a.logger.Sync()
}

func main() {
	// No .env file is fine; environment may already be set.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "levl",
		Short: "Build and review a health-literature knowledge graph",
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default config/config.toml)")

	root.AddCommand(newIngestCmd(), newResolveCmd(), newServeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

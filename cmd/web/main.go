package main

import (
	"fmt"
	"os"

	"github.com/edu-tools/board-atlas/pkg/export/pdf"
	"github.com/edu-tools/board-atlas/pkg/server"
	"github.com/edu-tools/board-atlas/pkg/services/aggregator"
	"github.com/edu-tools/board-atlas/pkg/services/config"
	"github.com/edu-tools/board-atlas/pkg/services/images"
	"github.com/edu-tools/board-atlas/pkg/services/report"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the report generation web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the YAML config file (BOARD_ATLAS_* env vars override it)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Info().
		Str("aggregator", cfg.Aggregator.BaseURL).
		Int("image_concurrency", cfg.Images.Concurrency).
		Msg("configuration loaded")

	generator := report.NewGenerator(
		aggregator.NewHTTPClient(cfg.Aggregator.BaseURL, cfg.Aggregator.Timeout),
		images.NewHTTPEmbedder(cfg.Images.Timeout),
		report.WithImageConcurrency(cfg.Images.Concurrency),
	)

	if err := os.MkdirAll(cfg.Export.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Server.Addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		ExportDir:       cfg.Export.Dir,
		Dependencies: server.Dependencies{
			Reports:  generator,
			Exporter: pdf.NewRenderer(cfg.Export.FontDir),
		},
	})

	return webAPI.Start()
}

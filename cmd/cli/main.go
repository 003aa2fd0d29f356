package main

import (
	"fmt"
	"os"

	"github.com/edu-tools/board-atlas/pkg/export/pdf"
	"github.com/edu-tools/board-atlas/pkg/runtime/terminal"
	"github.com/edu-tools/board-atlas/pkg/services/aggregator"
	"github.com/edu-tools/board-atlas/pkg/services/config"
	"github.com/edu-tools/board-atlas/pkg/services/images"
	"github.com/edu-tools/board-atlas/pkg/services/report"
)

func main() {
	cfg, err := config.Load(os.Getenv("BOARD_ATLAS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	generator := report.NewGenerator(
		aggregator.NewHTTPClient(cfg.Aggregator.BaseURL, cfg.Aggregator.Timeout),
		images.NewHTTPEmbedder(cfg.Images.Timeout),
		report.WithImageConcurrency(cfg.Images.Concurrency),
	)

	cli := terminal.NewCLI(terminal.Options{
		Generator: generator,
		Exporter:  pdf.NewRenderer(cfg.Export.FontDir),
		ExportDir: cfg.Export.Dir,
		Output:    os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package terminal

import (
	"io"
	"os"

	"github.com/edu-tools/board-atlas/pkg/runtime/terminal/commands"
	"github.com/edu-tools/board-atlas/pkg/runtime/terminal/export"
	"github.com/edu-tools/board-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	generator *report.Generator
	exporter  report.Exporter
	exportDir string
	reporter  *export.Reporter
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Generator *report.Generator
	Exporter  report.Exporter
	ExportDir string
	Output    io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		generator: opts.Generator,
		exporter:  opts.Exporter,
		exportDir: opts.ExportDir,
		reporter:  export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Bulletin report generation tool",
	}

	cmd.AddCommand(commands.NewGenerateCmd(cli.generator, cli.exporter, cli.exportDir, cli.reporter))
	cmd.AddCommand(commands.NewPresetsCmd())

	return cmd
}

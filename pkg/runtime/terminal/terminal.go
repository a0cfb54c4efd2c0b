package terminal

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/urban-tools/congestion-atlas/pkg/runtime/terminal/commands"
	"github.com/urban-tools/congestion-atlas/pkg/runtime/terminal/export"
	"github.com/urban-tools/congestion-atlas/pkg/services/synth"
)

// CLI represents the command-line interface
type CLI struct {
	registry synth.Registry
	reporter *export.Reporter
	rootCmd  *cobra.Command
	ctx      context.Context
}

// Options contain configuration for the CLI
type Options struct {
	Registry synth.Registry
	Output   io.Writer
	Logger   zerolog.Logger
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		registry: opts.Registry,
		reporter: export.NewReporter(opts.Output),
		ctx:      opts.Logger.WithContext(context.Background()),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.ExecuteContext(cli.ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "congestion-atlas",
		Short: "Congestion pricing impact analysis over synthetic city data",
	}

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewGenerateCmd(cli.registry))
	cmd.AddCommand(commands.NewChartCmd(cli.registry))
	cmd.AddCommand(commands.NewDomainsCmd(cli.registry))

	return cmd
}

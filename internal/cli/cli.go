// Package cli implements the fgctl command-line interface: inspect, evaluate,
// and export factor graphs persisted in the codec's YAML format.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/factorgraph/codec"
	"github.com/katalvlaran/factorgraph/factorgraph"
)

// CLI encapsulates the command tree with its shared state.
type CLI struct {
	version string
	rootCmd *cobra.Command
}

// New creates a CLI instance with the given version string.
func New(version string) *CLI {
	c := &CLI{version: version}
	c.setupCommands()

	return c
}

// setupCommands initializes the root command and its subcommands.
func (c *CLI) setupCommands() {
	c.rootCmd = &cobra.Command{
		Use:           "fgctl",
		Short:         "Factor-graph inspection toolkit",
		Long:          "fgctl inspects factor graphs: topology analysis, energy evaluation, and DOT export.",
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	c.rootCmd.AddCommand(c.newInfoCommand())
	c.rootCmd.AddCommand(c.newEnergyCommand())
	c.rootCmd.AddCommand(c.newDotCommand())
}

// Run executes the CLI, reporting errors on stderr.
func (c *CLI) Run() error {
	if err := c.rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fgctl:", err)

		return err
	}

	return nil
}

// loadGraph decodes the factor-graph document at path.
func loadGraph(path string) (*factorgraph.FactorGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return codec.Decode(data)
}

package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// newInfoCommand builds `fgctl info <graph.yaml>`: decode, derive topology,
// and print a report.
func (c *CLI) newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <graph.yaml>",
		Short: "Analyze a factor graph's topology",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			if err = fg.ConnectComponents(); err != nil {
				return err
			}

			edges, err := fg.NumEdges()
			if err != nil {
				return err
			}
			acyclic, err := fg.IsAcyclicGraph()
			if err != nil {
				return err
			}
			connected, err := fg.IsConnectedGraph()
			if err != nil {
				return err
			}
			tree, err := fg.IsTreeGraph()
			if err != nil {
				return err
			}
			_, components, err := fg.ComponentLabels()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "variables:    %d\n", fg.NumVariables())
			fmt.Fprintf(out, "factors:      %d\n", fg.NumVectors())
			fmt.Fprintf(out, "data sources: %d\n", len(fg.DataSources()))
			fmt.Fprintf(out, "edges:        %d\n", edges)
			fmt.Fprintf(out, "components:   %d\n", components)
			fmt.Fprintf(out, "acyclic:      %s\n", verdict(acyclic))
			fmt.Fprintf(out, "connected:    %s\n", verdict(connected))
			fmt.Fprintf(out, "tree:         %s\n", verdict(tree))

			return nil
		},
	}
}

// verdict colors a boolean for the report: green yes, red no.
func verdict(ok bool) string {
	if ok {
		return color.GreenString("yes")
	}

	return color.RedString("no")
}

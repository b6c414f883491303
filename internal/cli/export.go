package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/factorgraph/dot"
)

// newDotCommand builds `fgctl dot <graph.yaml> [-o out.dot]`: render the
// bipartite topology as Graphviz DOT.
func (c *CLI) newDotCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "dot <graph.yaml>",
		Short: "Export the topology as Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			rendered := dot.Marshal(fg)
			if outPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), rendered)

				return nil
			}

			return os.WriteFile(outPath, []byte(rendered), 0o644)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write DOT to a file instead of stdout")

	return cmd
}

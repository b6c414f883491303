package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// newEnergyCommand builds `fgctl energy <graph.yaml> --state 0,1,...`:
// evaluate the total energy of one full assignment.
func (c *CLI) newEnergyCommand() *cobra.Command {
	var (
		stateFlag   string
		materialize bool
	)

	cmd := &cobra.Command{
		Use:   "energy <graph.yaml>",
		Short: "Evaluate the total energy of an assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			if materialize {
				if err = fg.ComputeEnergies(); err != nil {
					return err
				}
			}

			state, err := parseState(stateFlag)
			if err != nil {
				return err
			}

			energy, err := fg.EvaluateEnergy(state)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "E%v = %g\n", state, energy)

			return nil
		},
	}

	cmd.Flags().StringVar(&stateFlag, "state", "", "comma-separated assignment, one value per variable")
	cmd.Flags().BoolVar(&materialize, "materialize", false, "refresh factor tables from their data sources first")
	_ = cmd.MarkFlagRequired("state")

	return cmd
}

// parseState parses "0,1,2" into an assignment vector.
func parseState(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	state := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid state component %q", p)
		}
		state = append(state, v)
	}

	return state, nil
}

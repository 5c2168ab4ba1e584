package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cyclequbo/qubo"
)

func (a *app) newEnergyCmd() *cobra.Command {
	var state string

	cmd := &cobra.Command{
		Use:   "energy [graph.json|-] --state STATE",
		Short: "Print the QUBO energy of a state",
		Long: `Encode the graph and evaluate the QUBO at the state whose active
variables are the listed edges. Edges that are not in the graph contribute
nothing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edges, err := readGraph(cmd, args)
			if err != nil {
				return err
			}
			active, err := parseStateFlag(state)
			if err != nil {
				return err
			}
			q, err := a.encode(cmd, edges)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%g\n", qubo.Energy(q, active))
			return errors.Wrap(err, "writing energy")
		},
	}
	cmd.Flags().StringVar(&state, "state", "", `active edges, e.g. "['(0, 1)', '(1, 2)']"`)
	_ = cmd.MarkFlagRequired("state")
	addEpsilonFlag(cmd)

	return cmd
}

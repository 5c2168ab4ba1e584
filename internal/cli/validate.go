package cli

import (
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cyclequbo/partition"
)

// validation is the output of the validate command.
type validation struct {
	Valid  bool                `json:"valid"`
	Cycles partition.Partition `json:"cycles"`
}

func (a *app) newValidateCmd() *cobra.Command {
	var state string

	cmd := &cobra.Command{
		Use:   "validate [graph.json|-] --state STATE",
		Short: "Check whether a state partitions the graph into cycles",
		Long: `Check that the state covers exactly the vertices of the graph with
vertex-disjoint directed cycles of length 3 or more, and print the cycles.
For an invalid state the cycles closed before the failure are printed.`,
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

			cycles, ok := partition.Decompose(active, edges)
			klog.V(1).Infof("state with %d edges: valid=%v, %d cycles", len(active), ok, len(cycles))

			return writeJSON(cmd, validation{Valid: ok, Cycles: cycles})
		},
	}
	cmd.Flags().StringVar(&state, "state", "", `active edges, e.g. "['(0, 1)', '(1, 2)', '(2, 0)']"`)
	_ = cmd.MarkFlagRequired("state")

	return cmd
}

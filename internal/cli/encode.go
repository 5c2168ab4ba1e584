package cli

import (
	"math"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cyclequbo/core"
	"github.com/katalvlaran/cyclequbo/qubo"
)

func (a *app) newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [graph.json|-]",
		Short: "Print the QUBO coefficients of a graph",
		Long: `Encode the cycle partition problem of a graph as a QUBO and print its
coefficients as a list of {"i", "j", "value"} entries in canonical order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edges, err := readGraph(cmd, args)
			if err != nil {
				return err
			}
			q, err := a.encode(cmd, edges)
			if err != nil {
				return err
			}
			klog.V(1).Infof("encoded %d variables into %d coefficients", len(edges), len(q))

			return writeJSON(cmd, q.Entries())
		},
	}
	addEpsilonFlag(cmd)

	return cmd
}

// addEpsilonFlag registers --epsilon on commands that encode a graph.
func addEpsilonFlag(cmd *cobra.Command) {
	cmd.Flags().Float64("epsilon", 0, "penalty margin (overrides encoder.epsilon)")
}

// encode builds the QUBO using the configured or flagged epsilon.
func (a *app) encode(cmd *cobra.Command, edges []core.Edge) (qubo.QUBO, error) {
	eps := a.cfg.Encoder.Epsilon
	if cmd.Flags().Changed("epsilon") {
		eps, _ = cmd.Flags().GetFloat64("epsilon")
		if !(eps > 0) || math.IsInf(eps, 0) {
			return nil, errors.Errorf("--epsilon must be a positive finite number, got %v", eps)
		}
	}

	return qubo.Encode(edges, qubo.WithEpsilon(eps)), nil
}

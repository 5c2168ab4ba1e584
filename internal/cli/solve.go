package cli

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cyclequbo/qubo"
	"github.com/katalvlaran/cyclequbo/report"
)

func (a *app) newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [graph.json|-]",
		Short: "Exactly minimize the QUBO of a small graph and summarize the minima",
		Long: `Enumerate every state of the encoded graph (at most 24 edges), collect
the degenerate lowest-energy states and summarize them as if each had been
read once: the frequency is the share of minima that are valid partitions.`,
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

			res, err := qubo.ExactMinimum(q)
			if err != nil {
				return errors.Wrap(err, "solving")
			}
			klog.V(1).Infof("minimum energy %g with %d degenerate states", res.Energy, len(res.States))

			samples := make([]report.Sample, 0, len(res.States))
			for _, s := range res.States {
				samples = append(samples, report.Sample{State: s, Energy: res.Energy, Occurrences: 1})
			}
			sum, err := report.Summarize(samples, edges, len(samples), a.reportOptions()...)
			if err != nil {
				return errors.Wrap(err, "summarizing")
			}
			klog.V(1).Infof("run %s: frequency %g", sum.RunID, sum.Frequency)

			return writeJSON(cmd, sum)
		},
	}
	addEpsilonFlag(cmd)

	return cmd
}

// reportOptions maps the report section of the configuration to options.
func (a *app) reportOptions() []report.Option {
	return []report.Option{
		report.WithTolerance(a.cfg.Report.EnergyTolerance),
		report.WithConfidence(a.cfg.Report.Confidence),
	}
}

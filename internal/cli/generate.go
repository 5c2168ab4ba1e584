package cli

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cyclequbo/builder"
	"github.com/katalvlaran/cyclequbo/core"
	"github.com/katalvlaran/cyclequbo/internal/config"
)

func (a *app) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate disjoint cycles plus random noise edges",
		Long: `Generate a graph made of disjoint directed cycles, then add noise edges
between existing vertices. Cycle j covers vertices j*length .. j*length+length-1.

Flags override the generator section of the configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := a.cfg.Generator
			flags := cmd.Flags()
			if flags.Changed("cycles") {
				g.Cycles, _ = flags.GetInt("cycles")
			}
			if flags.Changed("length") {
				g.CycleLength, _ = flags.GetInt("length")
			}
			if flags.Changed("noise") {
				g.NoiseEdges, _ = flags.GetInt("noise")
				g.NoiseFraction = 0
			}
			if flags.Changed("noise-fraction") {
				g.NoiseFraction, _ = flags.GetFloat64("noise-fraction")
				g.NoiseEdges = 0
			}
			if flags.Changed("seed") {
				g.Seed, _ = flags.GetInt64("seed")
			}

			edges, err := generate(g)
			if err != nil {
				return err
			}
			klog.V(1).Infof("generated %d edges over %d vertices", len(edges), core.VertexCount(edges))

			return writeJSON(cmd, edges)
		},
	}

	cmd.Flags().Int("cycles", 0, "number of disjoint cycles")
	cmd.Flags().Int("length", 0, "vertices per cycle (min 3)")
	cmd.Flags().Int("noise", 0, "number of noise edges")
	cmd.Flags().Float64("noise-fraction", 0, "share of absent edges to add as noise, in [0,1]")
	cmd.Flags().Int64("seed", 0, "noise RNG seed")
	cmd.MarkFlagsMutuallyExclusive("noise", "noise-fraction")

	return cmd
}

// generate runs the builder for a generator configuration.
func generate(g config.GeneratorConfig) ([]core.Edge, error) {
	cons := []builder.Constructor{builder.HamiltonianCycles(g.Cycles, g.CycleLength)}
	switch {
	case g.NoiseFraction > 0:
		cons = append(cons, builder.NoiseFraction(g.NoiseFraction))
	case g.NoiseEdges > 0:
		cons = append(cons, builder.Noise(g.NoiseEdges))
	}

	edges, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(g.Seed)}, cons...)
	if err != nil {
		return nil, errors.Wrap(err, "generating graph")
	}

	return edges, nil
}

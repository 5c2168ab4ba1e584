package cli

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cyclequbo/core"
	"github.com/katalvlaran/cyclequbo/qubo"
	"github.com/katalvlaran/cyclequbo/report"
)

// samplesFile is the on-disk form of a sampler response.
type samplesFile struct {
	// NumReads defaults to the sum of occurrences, then to report.num_reads.
	NumReads int            `json:"num_reads"`
	Samples  []sampleRecord `json:"samples"`
}

// sampleRecord carries a state in sampler label form. A missing energy is
// recomputed from the encoded graph.
type sampleRecord struct {
	State       string   `json:"state"`
	Energy      *float64 `json:"energy,omitempty"`
	Occurrences int      `json:"occurrences"`
}

func (a *app) newReportCmd() *cobra.Command {
	var samplesPath string

	cmd := &cobra.Command{
		Use:   "report [graph.json|-] --samples FILE",
		Short: "Summarize sampler results for a graph",
		Long: `Read a sampler response, keep the lowest-energy states, validate each
against the graph and report the frequency of valid partitions together
with the number of runs needed to find one with the configured confidence.

The samples file looks like:

  {"num_reads": 100,
   "samples": [{"state": "['(1, 2)', '(2, 3)', '(3, 1)']", "energy": -3, "occurrences": 80}]}`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edges, err := readGraph(cmd, args)
			if err != nil {
				return err
			}
			in, err := readSamples(samplesPath)
			if err != nil {
				return err
			}

			var q qubo.QUBO
			samples := make([]report.Sample, 0, len(in.Samples))
			total := 0
			for i, rec := range in.Samples {
				state, err := core.ParseState(rec.State)
				if err != nil {
					return errors.Wrapf(err, "sample #%d", i)
				}
				s := report.Sample{State: state, Occurrences: rec.Occurrences}
				if rec.Energy != nil {
					s.Energy = *rec.Energy
				} else {
					if q == nil {
						if q, err = a.encode(cmd, edges); err != nil {
							return err
						}
					}
					s.Energy = qubo.Energy(q, state)
				}
				samples = append(samples, s)
				total += rec.Occurrences
			}

			numReads := in.NumReads
			switch {
			case numReads > 0:
			case total > 0:
				numReads = total
			default:
				numReads = a.cfg.Report.NumReads
			}

			sum, err := report.Summarize(samples, edges, numReads, a.reportOptions()...)
			if err != nil {
				return errors.Wrap(err, "summarizing")
			}
			klog.V(1).Infof("run %s: %d samples, %d reads, frequency %g", sum.RunID, len(samples), numReads, sum.Frequency)

			return writeJSON(cmd, sum)
		},
	}
	cmd.Flags().StringVar(&samplesPath, "samples", "", "JSON file with sampler results")
	_ = cmd.MarkFlagRequired("samples")
	addEpsilonFlag(cmd)

	return cmd
}

// readSamples decodes a samples file.
func readSamples(path string) (samplesFile, error) {
	var in samplesFile
	data, err := os.ReadFile(path)
	if err != nil {
		return in, errors.Wrap(err, "reading samples")
	}
	if err = json.Unmarshal(data, &in); err != nil {
		return in, errors.Wrapf(err, "decoding samples from %s", path)
	}

	return in, nil
}

package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cyclequbo/core"
)

// stdinArg names standard input as a graph source.
const stdinArg = "-"

// readGraph decodes a JSON edge list from the file named by args[0], or from
// stdin when no argument (or "-") is given, and checks it with core.Check.
func readGraph(cmd *cobra.Command, args []string) ([]core.Edge, error) {
	var (
		r    io.Reader = cmd.InOrStdin()
		name           = "stdin"
	)
	if len(args) > 0 && args[0] != stdinArg {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, errors.Wrap(err, "opening graph")
		}
		defer f.Close()
		r, name = f, args[0]
	}

	var edges []core.Edge
	if err := json.NewDecoder(r).Decode(&edges); err != nil {
		return nil, errors.Wrapf(err, "decoding graph from %s", name)
	}
	if err := core.Check(edges); err != nil {
		return nil, errors.Wrapf(err, "graph %s", name)
	}

	return edges, nil
}

// writeJSON prints v as indented JSON on the command's output.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encoding output")
	}

	return nil
}

// parseStateFlag parses the --state flag value.
func parseStateFlag(s string) ([]core.Edge, error) {
	state, err := core.ParseState(s)
	if err != nil {
		return nil, errors.Wrap(err, "--state")
	}

	return state, nil
}

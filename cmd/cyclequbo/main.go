// Command cyclequbo encodes directed cycle partitioning as a QUBO and
// validates the states a sampler returns.
package main

import (
	"os"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/cyclequbo/internal/cli"
)

func main() {
	err := cli.NewRootCmd().Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

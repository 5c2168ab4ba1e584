// Package cli wires the cyclequbo library packages into a cobra command tree.
package cli

import (
	"flag"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cyclequbo/internal/config"
)

// app carries state shared by all subcommands of one command tree.
type app struct {
	cfgFile string
	envFile string
	cfg     *config.Config
}

// NewRootCmd builds a fresh command tree. Each call is independent, so tests
// can execute several trees without sharing flag state.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "cyclequbo",
		Short: "Encode directed cycle partitioning as a QUBO and check the answers",
		Long: `cyclequbo turns the problem of partitioning a directed graph into
vertex-disjoint cycles of length 3 or more into a QUBO for an annealer,
and validates and scores the states an annealer returns.

Graphs are JSON edge lists, e.g. [[0,1],[1,2],[2,0]]. States use the
sampler label form, e.g. "['(0, 1)', '(1, 2)', '(2, 0)']".`,
		SilenceUsage:      true,
		PersistentPreRunE: a.loadConfig,
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./cyclequbo.yaml if present)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", config.DefaultEnvFile, "dotenv file with CYCLEQUBO_* overrides")

	// klog registers its flags (-v, -logtostderr, ...) on a Go flag set.
	gofs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(gofs)
	_ = gofs.Set("logtostderr", "true")
	root.PersistentFlags().AddGoFlagSet(gofs)
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          false,
	})

	root.AddCommand(
		a.newGenerateCmd(),
		a.newEncodeCmd(),
		a.newEnergyCmd(),
		a.newValidateCmd(),
		a.newSolveCmd(),
		a.newReportCmd(),
	)

	return root
}

// loadConfig resolves .env, config file, env vars and defaults into a.cfg.
func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(a.envFile); err != nil {
		return err
	}
	v, err := config.NewViper(a.cfgFile)
	if err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	a.cfg = cfg

	if used := v.ConfigFileUsed(); used != "" {
		klog.V(1).Infof("config file: %s", used)
	}
	klog.V(2).Infof("%s: config %+v", cmd.Name(), *cfg)

	return nil
}

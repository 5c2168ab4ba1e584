package report

import (
	"fmt"
	"math"
)

const (
	// DefaultTolerance is the energy distance within which states count as
	// degenerate with the lowest one.
	DefaultTolerance = 1e-9

	// DefaultConfidence is the target probability used for RunsToSolution.
	DefaultConfidence = 0.99
)

// Option configures Summarize.
type Option func(*config)

type config struct {
	tolerance  float64
	confidence float64
}

func newConfig(opts ...Option) config {
	cfg := config{tolerance: DefaultTolerance, confidence: DefaultConfidence}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithTolerance sets the degeneracy tolerance. Panics if tol is negative or
// not finite.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(fmt.Sprintf("report: WithTolerance(%v)", tol))
	}
	return func(c *config) { c.tolerance = tol }
}

// WithConfidence sets the target probability for RunsToSolution.
// Panics unless 0 < c < 1.
func WithConfidence(c float64) Option {
	if !(c > 0 && c < 1) {
		panic(fmt.Sprintf("report: WithConfidence(%v)", c))
	}
	return func(cfg *config) { cfg.confidence = c }
}

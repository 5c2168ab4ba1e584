// options.go - functional options for Encode.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     Encode itself never panics.
//   • Later options override earlier ones.

package qubo

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the penalty margin ε used when no option overrides it.
const DefaultEpsilon = 0.01

// Option customizes encoding.
type Option func(*config)

type config struct {
	epsilon float64
}

func newConfig(opts ...Option) config {
	cfg := config{epsilon: DefaultEpsilon}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithEpsilon sets the penalty margin ε. It panics unless eps is finite and
// strictly positive: a zero margin would make violating states tie with
// valid ones.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic(fmt.Sprintf("qubo: WithEpsilon(%v): epsilon must be finite and > 0", eps))
	}
	return func(c *config) {
		c.epsilon = eps
	}
}

package streamgen

import (
	"math/rand/v2"
)

// Option defines a functional option for configuring a Generator.
type Option func(*Generator) error

// WithSeed seeds the generator's random source so that repeated runs with the
// same seed produce identical streams. Useful when generated fixtures must
// themselves be reproducible in tests.
func WithSeed(seed uint64) Option {
	return func(g *Generator) error {
		g.rand = rand.New(rand.NewPCG(seed, seed))
		return nil
	}
}

// WithRand sets a custom random source for the Generator.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) error {
		if r == nil {
			return ErrNilRandSource
		}

		g.rand = r

		return nil
	}
}

// WithNewClientProbability sets the per-step probability of introducing a new
// client instead of reusing an existing one.
func WithNewClientProbability(p float64) Option {
	return func(g *Generator) error {
		if p < 0 || p > 1 {
			return ErrProbabilityOutOfRange
		}

		g.newClientProbability = p

		return nil
	}
}

// WithDisputeProbability sets the per-step probability of disputing the base
// transaction emitted in that step.
func WithDisputeProbability(p float64) Option {
	return func(g *Generator) error {
		if p < 0 || p > 1 {
			return ErrProbabilityOutOfRange
		}

		g.disputeProbability = p

		return nil
	}
}

// WithResolveProbability sets the per-step probability of resolving one of
// the currently open disputes.
func WithResolveProbability(p float64) Option {
	return func(g *Generator) error {
		if p < 0 || p > 1 {
			return ErrProbabilityOutOfRange
		}

		g.resolveProbability = p

		return nil
	}
}

// WithChargebackProbability sets the per-step probability of charging back
// one of the currently open disputes.
func WithChargebackProbability(p float64) Option {
	return func(g *Generator) error {
		if p < 0 || p > 1 {
			return ErrProbabilityOutOfRange
		}

		g.chargebackProbability = p

		return nil
	}
}

// WithLogger sets the logger for the Generator.
// The logger will receive messages at different levels:
//
// Debug level: per-step dispute pool movements (development use)
// Info level: stream summary after Generate completes (production-safe).
func WithLogger(logger Logger) Option {
	return func(g *Generator) error {
		g.logger = logger
		return nil
	}
}

// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// config is the resolved, immutable view of the options for one build.
type config struct {
	rng      *rand.Rand
	weightFn WeightFn
	directed bool
}

// Option customizes a build.
type Option func(*config)

func newConfig(opts ...Option) config {
	c := config{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithRand attaches an RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed attaches a fresh RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *config) { c.weightFn = fn }
}

// weight draws the next edge weight.
func (c config) weight() float64 { return c.weightFn(c.rng) }

// SPDX-License-Identifier: MIT
// Package builder generates deterministic weighted graphs for tests,
// examples and benchmarks.
//
// BuildGraph / BuildDigraph create a graph with V vertices and apply
// constructors in order:
//
//	g, err := builder.BuildGraph(1000,
//		[]builder.Option{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 10))},
//		builder.Path(), builder.RandomSparse(0.01),
//	)
//
// Constructors: Path, Cycle, Star, Complete, Grid, RandomSparse.
// The same vertex count, options, seed and constructor order always yield
// the same graph, edge order included.
//
// Errors (sentinel, use errors.Is):
//
//   - ErrTooFewVertices:     the graph is too small for the constructor.
//   - ErrInvalidProbability: RandomSparse p outside [0, 1].
//   - ErrNeedRandSource:     a stochastic step without WithSeed / WithRand.
//   - ErrConstructFailed:    nil constructor, or a shape that does not fit V.
package builder

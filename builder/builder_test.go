// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/railnet/builder"
	"github.com/katalvlaran/railnet/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopologies_EdgeCounts(t *testing.T) {
	cases := []struct {
		name      string
		v         int
		cons      builder.Constructor
		undirects int
		directs   int
	}{
		{"path", 5, builder.Path(), 4, 4},
		{"cycle", 5, builder.Cycle(), 5, 5},
		{"star", 5, builder.Star(2), 4, 4},
		{"complete", 5, builder.Complete(), 10, 20},
		{"grid", 6, builder.Grid(2, 3), 7, 14},
		{"sparse-none", 5, builder.RandomSparse(0), 0, 0},
		{"sparse-all", 5, builder.RandomSparse(1), 10, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.v, nil, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.undirects, g.EdgeCount())

			d, err := builder.BuildDigraph(tc.v, nil, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.directs, d.EdgeCount())
		})
	}
}

func TestPath_Orientation(t *testing.T) {
	d, err := builder.BuildDigraph(3, nil, builder.Path())
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 1}}, core.Edges(d))
}

func TestErrors(t *testing.T) {
	_, err := builder.BuildGraph(1, nil, builder.Path())
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(2, nil, builder.Cycle())
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(3, nil, builder.Star(3))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(5, nil, builder.Grid(2, 2))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(4, nil, builder.Grid(0, 4))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(4, nil, builder.RandomSparse(1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(4, nil, builder.RandomSparse(0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(4, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(-1, nil)
	assert.ErrorIs(t, err, core.ErrNegativeVertices)
}

func TestDeterminism(t *testing.T) {
	opts := func() []builder.Option {
		return []builder.Option{builder.WithSeed(99), builder.WithWeightFn(builder.UniformWeightFn(1, 50))}
	}
	a, err := builder.BuildGraph(40, opts(), builder.Path(), builder.RandomSparse(0.1))
	require.NoError(t, err)
	b, err := builder.BuildGraph(40, opts(), builder.Path(), builder.RandomSparse(0.1))
	require.NoError(t, err)
	assert.Equal(t, core.Edges(a), core.Edges(b))

	c, err := builder.BuildGraph(40,
		[]builder.Option{builder.WithRand(rand.New(rand.NewSource(99))), builder.WithWeightFn(builder.UniformWeightFn(1, 50))},
		builder.Path(), builder.RandomSparse(0.1),
	)
	require.NoError(t, err)
	assert.Equal(t, core.Edges(a), core.Edges(c))
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, -2.5, builder.ConstantWeightFn(-2.5)(nil))
	assert.Equal(t, 3.0, builder.UniformWeightFn(3, 9)(nil))
	assert.Equal(t, 4.0, builder.IntWeightFn(4, 9)(nil))

	r := rand.New(rand.NewSource(1))
	u, n := builder.UniformWeightFn(3, 9), builder.IntWeightFn(4, 6)
	for i := 0; i < 100; i++ {
		w := u(r)
		assert.True(t, w >= 3 && w < 9, w)
		k := n(r)
		assert.True(t, k >= 4 && k <= 6 && k == float64(int(k)), k)
	}

	assert.Panics(t, func() { builder.UniformWeightFn(2, 1) })
	assert.Panics(t, func() { builder.IntWeightFn(2, 1) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}

func TestWeightFnAppliesToEdges(t *testing.T) {
	g, err := builder.BuildGraph(4, []builder.Option{builder.WithWeightFn(builder.ConstantWeightFn(7))}, builder.Cycle())
	require.NoError(t, err)
	for _, e := range core.Edges(g) {
		assert.Equal(t, 7.0, e.Weight)
	}
}

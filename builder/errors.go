// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates that the vertex count is below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic step ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a shape that cannot be
// laid over the graph.
var ErrConstructFailed = errors.New("builder: construction failed")

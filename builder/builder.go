// SPDX-License-Identifier: MIT
// File: builder.go
// Role: BuildGraph / BuildDigraph orchestrators and the Constructor contract.
// Determinism:
//   - Constructors run in the order given; each emits edges in a fixed order
//     and draws weights from the shared RNG in that order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/railnet/core"
)

// target is the mutation surface shared by core.Graph and core.Digraph.
type target interface {
	VertexCount() int
	AddEdge(from, to int, w float64) error
}

// Constructor adds edges to a graph. It must validate its parameters
// against g.VertexCount() and return sentinel errors, never panic.
type Constructor func(g target, cfg config) error

// BuildGraph creates an undirected core.Graph with v vertices and applies
// every constructor in order. The first error is wrapped and returned.
func BuildGraph(v int, opts []Option, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(v)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	if err := apply(g, newConfig(opts...), cons); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// BuildDigraph is BuildGraph for a core.Digraph. Constructors add arcs in
// their natural orientation (i→i+1 for Path and Cycle, center→leaf for Star);
// Complete, Grid and RandomSparse consider ordered pairs.
func BuildDigraph(v int, opts []Option, cons ...Constructor) (*core.Digraph, error) {
	g, err := core.NewDigraph(v)
	if err != nil {
		return nil, fmt.Errorf("BuildDigraph: %w", err)
	}
	cfg := newConfig(opts...)
	cfg.directed = true
	if err := apply(g, cfg, cons); err != nil {
		return nil, fmt.Errorf("BuildDigraph: %w", err)
	}

	return g, nil
}

func apply(g target, cfg config, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Path links 0—1—…—(V-1).
func Path() Constructor {
	return func(g target, cfg config) error {
		n := g.VertexCount()
		if n < minPathNodes {
			return fmt.Errorf("Path: V=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i+1 < n; i++ {
			if err := g.AddEdge(i, i+1, cfg.weight()); err != nil {
				return fmt.Errorf("Path: %w", err)
			}
		}

		return nil
	}
}

// Cycle is Path plus the closing edge (V-1)—0.
func Cycle() Constructor {
	return func(g target, cfg config) error {
		n := g.VertexCount()
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: V=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddEdge(i, (i+1)%n, cfg.weight()); err != nil {
				return fmt.Errorf("Cycle: %w", err)
			}
		}

		return nil
	}
}

// Star links center to every other vertex.
func Star(center int) Constructor {
	return func(g target, cfg config) error {
		n := g.VertexCount()
		if n < minStarNodes {
			return fmt.Errorf("Star: V=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		if center < 0 || center >= n {
			return fmt.Errorf("Star: center %d not in [0,%d): %w", center, n, ErrConstructFailed)
		}
		for v := 0; v < n; v++ {
			if v == center {
				continue
			}
			if err := g.AddEdge(center, v, cfg.weight()); err != nil {
				return fmt.Errorf("Star: %w", err)
			}
		}

		return nil
	}
}

// Complete links every pair (ordered pairs on a digraph).
func Complete() Constructor {
	return func(g target, cfg config) error {
		n := g.VertexCount()
		if n < minCompleteNodes {
			return fmt.Errorf("Complete: V=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}

		return eachPair(n, cfg.directed, func(i, j int) error {
			return g.AddEdge(i, j, cfg.weight())
		})
	}
}

// Grid lays a rows×cols lattice over the vertices, vertex r*cols+c at (r, c),
// linking right and down neighbours (and back, on a digraph).
// rows*cols must equal V.
func Grid(rows, cols int) Constructor {
	return func(g target, cfg config) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
		}
		if rows*cols != g.VertexCount() {
			return fmt.Errorf("Grid: %dx%d does not cover V=%d: %w", rows, cols, g.VertexCount(), ErrConstructFailed)
		}
		link := func(u, v int) error {
			if err := g.AddEdge(u, v, cfg.weight()); err != nil {
				return err
			}
			if cfg.directed {
				return g.AddEdge(v, u, cfg.weight())
			}

			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := link(u, u+1); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
				if r+1 < rows {
					if err := link(u, u+cols); err != nil {
						return fmt.Errorf("Grid: %w", err)
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse adds each pair (ordered pairs on a digraph) independently
// with probability p. Requires an RNG unless p is 0 or 1.
func RandomSparse(p float64) Constructor {
	return func(g target, cfg config) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}

		return eachPair(g.VertexCount(), cfg.directed, func(i, j int) error {
			if p == 0 || (p < 1 && cfg.rng.Float64() >= p) {
				return nil
			}

			return g.AddEdge(i, j, cfg.weight())
		})
	}
}

// eachPair calls fn for i<j (undirected) or i≠j (directed), i ascending then j.
func eachPair(n int, directed bool, fn func(i, j int) error) error {
	for i := 0; i < n; i++ {
		start := i + 1
		if directed {
			start = 0
		}
		for j := start; j < n; j++ {
			if i == j {
				continue
			}
			if err := fn(i, j); err != nil {
				return err
			}
		}
	}

	return nil
}

// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate correct behavior under various configurations, including
// basic functionality, directed graphs, MaxDistance, InfEdgeThreshold,
// blocked edges and edge cases such as single-vertex and self-loop graphs.
package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/railnet/core"
	"github.com/katalvlaran/railnet/dijkstra"
	"github.com/katalvlaran/railnet/shortestpath"
)

const (
	A = iota
	B
	C
	D
	E
	F
	G
)

// undirected builds an undirected core.Graph with n vertices from triples.
func undirected(t *testing.T, n int, edges [][3]float64) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range edges {
		if err := g.AddEdge(int(e[0]), int(e[1]), e[2]); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

// directed builds a core.Digraph with n vertices from triples.
func directed(t *testing.T, n int, edges [][3]float64) *core.Digraph {
	t.Helper()
	g, err := core.NewDigraph(n)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range edges {
		if err := g.AddEdge(int(e[0]), int(e[1]), e[2]); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

func mustDist(t *testing.T, res *shortestpath.Result, v int) float64 {
	t.Helper()
	d, err := res.DistanceTo(v)
	if err != nil {
		t.Fatalf("DistanceTo(%d): %v", v, err)
	}

	return d
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, dijkstra.Source(0))
	if !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := directed(t, 2, nil)
	for _, s := range []int{-1, 2} {
		_, err := dijkstra.Dijkstra(g, dijkstra.Source(s))
		if !errors.Is(err, dijkstra.ErrVertexNotFound) {
			t.Fatalf("source %d: expected ErrVertexNotFound, got %v", s, err)
		}
	}
}

func TestDijkstra_EmptyGraph_ReturnsVertexNotFound(t *testing.T) {
	g := directed(t, 0, nil)
	_, err := dijkstra.Dijkstra(g)
	if !errors.Is(err, core.ErrVertexOutOfRange) {
		t.Fatalf("Expected ErrVertexOutOfRange on empty graph, got %v", err)
	}
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g := directed(t, 2, [][3]float64{{A, B, -5}})
	_, err := dijkstra.Dijkstra(g, dijkstra.Source(A))
	if !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("Expected ErrNegativeWeight, got %v", err)
	}
}

func TestDijkstra_BadOptionsPanic(t *testing.T) {
	for name, opt := range map[string]func() dijkstra.Option{
		"max distance":  func() dijkstra.Option { return dijkstra.WithMaxDistance(-1) },
		"inf threshold": func() dijkstra.Option { return dijkstra.WithInfEdgeThreshold(0) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			o := dijkstra.DefaultOptions(0)
			opt()(&o)
		})
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: Small graphs, path correctness.
// ------------------------------------------------------------------------

func TestDijkstra_SimpleTriangle(t *testing.T) {
	// Graph: A—B(1), B—C(2), A—C(5).
	g := undirected(t, 3, [][3]float64{{A, B, 1}, {B, C, 2}, {A, C, 5}})

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(A))
	if err != nil {
		t.Fatal(err)
	}
	if got := mustDist(t, res, C); got != 3 {
		t.Errorf("dist[C] = %g; want 3", got)
	}
	e, err := res.EdgeTo(C)
	if err != nil {
		t.Fatal(err)
	}
	if e.From != B || e.To != C {
		t.Errorf("edgeTo[C] = %v; want B→C", e)
	}
}

func TestDijkstra_FourCityCycle(t *testing.T) {
	// A-B-C-D-A with AB:1, BC:2, CD:1, DA:4.
	g := undirected(t, 4, [][3]float64{{A, B, 1}, {B, C, 2}, {C, D, 1}, {D, A, 4}})

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(A))
	if err != nil {
		t.Fatal(err)
	}
	if got := mustDist(t, res, C); got != 3 {
		t.Errorf("dist[C] = %g; want 3", got)
	}
	path, err := res.PathTo(C)
	if err != nil {
		t.Fatal(err)
	}
	want := []core.Edge{{From: A, To: B, Weight: 1}, {From: B, To: C, Weight: 2}}
	if len(path) != len(want) {
		t.Fatalf("path = %v; want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path[%d] = %v; want %v", i, path[i], want[i])
		}
	}
	// D is reached via C (1+2+1=4) or directly (4); tie keeps the first found.
	if got := mustDist(t, res, D); got != 4 {
		t.Errorf("dist[D] = %g; want 4", got)
	}
}

func TestDijkstra_ChainWithPath(t *testing.T) {
	// A—B—C—D—E
	//         |
	//         F—G
	g := undirected(t, 7, [][3]float64{
		{A, B, 1}, {B, C, 1}, {C, D, 1}, {D, E, 1}, {D, F, 1}, {F, G, 1},
	})

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(A))
	if err != nil {
		t.Fatal(err)
	}

	expected := []float64{0, 1, 2, 3, 4, 4, 5}
	for v, want := range expected {
		if got := mustDist(t, res, v); got != want {
			t.Errorf("dist[%d] = %g; want %g", v, got, want)
		}
	}

	// Path invariants: chained endpoints and weight sum equal to distance.
	for v := range expected {
		path, err := res.PathTo(v)
		if err != nil {
			t.Fatal(err)
		}
		at := A
		for _, e := range path {
			if e.From != at {
				t.Fatalf("path to %d broken at %v", v, e)
			}
			at = e.To
		}
		if at != v {
			t.Errorf("path to %d ends at %d", v, at)
		}
		if w := shortestpath.PathWeight(path); w != expected[v] {
			t.Errorf("path weight to %d = %g; want %g", v, w, expected[v])
		}
	}
}

// ------------------------------------------------------------------------
// 3. Directed Graph Tests: Ensure correct handling of one-way edges.
// ------------------------------------------------------------------------

func TestDijkstra_MediumDirectedGraph(t *testing.T) {
	// A→B(2), A→C(1), C→B(1), B→D(3), C→D(5)
	g := directed(t, 4, [][3]float64{{A, B, 2}, {A, C, 1}, {C, B, 1}, {B, D, 3}, {C, D, 5}})

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(A))
	if err != nil {
		t.Fatal(err)
	}
	for v, want := range map[int]float64{B: 2, C: 1, D: 5} {
		if got := mustDist(t, res, v); got != want {
			t.Errorf("dist[%d] = %g; want %g", v, got, want)
		}
	}

	// Nothing flows back into A along one-way edges.
	back, err := dijkstra.Dijkstra(g, dijkstra.Source(D))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := back.DistanceTo(A); !errors.Is(err, shortestpath.ErrUnreachable) {
		t.Errorf("expected A unreachable from D, got %v", err)
	}
	if _, err := back.PathTo(A); !errors.Is(err, shortestpath.ErrUnreachable) {
		t.Errorf("expected PathTo(A) unreachable from D, got %v", err)
	}
}

func TestDijkstra_TieBreakLowestIndexFirst(t *testing.T) {
	// B and C both at distance 1; both lead to D with weight 1.
	// B (lower index) is finalized first and relaxes D first.
	g := directed(t, 4, [][3]float64{{A, C, 1}, {A, B, 1}, {C, D, 1}, {B, D, 1}})

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(A))
	if err != nil {
		t.Fatal(err)
	}
	e, _ := res.EdgeTo(D)
	if e.From != B {
		t.Errorf("edgeTo[D].From = %d; want %d", e.From, B)
	}
}

// ------------------------------------------------------------------------
// 4. MaxDistance Tests: Ensure that vertices with distance > MaxDistance are not explored.
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	// Linear graph: A—B(1)—C(1)—D(1)
	g := undirected(t, 4, [][3]float64{{A, B, 1}, {B, C, 1}, {C, D, 1}})

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(A), dijkstra.WithMaxDistance(1))
	if err != nil {
		t.Fatal(err)
	}
	if got := mustDist(t, res, B); got != 1 {
		t.Errorf("dist[B] = %g; want 1", got)
	}
	for _, v := range []int{C, D} {
		if res.HasPathTo(v) {
			t.Errorf("vertex %d should be beyond MaxDistance", v)
		}
	}
}

func TestDijkstra_MaxDistanceZero(t *testing.T) {
	g := undirected(t, 2, [][3]float64{{A, B, 1}})

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(A), dijkstra.WithMaxDistance(0))
	if err != nil {
		t.Fatal(err)
	}
	if got := mustDist(t, res, A); got != 0 {
		t.Errorf("dist[A] = %g; want 0", got)
	}
	if res.HasPathTo(B) {
		t.Errorf("B should be unreachable with MaxDistance=0")
	}
}

// ------------------------------------------------------------------------
// 5. InfEdgeThreshold and blocked edges.
// ------------------------------------------------------------------------

func TestDijkstra_InfThresholdStopsHeavyEdge(t *testing.T) {
	// Graph: A—B(2), B—C(4), A—C(10)
	g := undirected(t, 3, [][3]float64{{A, B, 2}, {B, C, 4}, {A, C, 10}})

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(A), dijkstra.WithInfEdgeThreshold(5))
	if err != nil {
		t.Fatal(err)
	}
	if got := mustDist(t, res, C); got != 6 {
		t.Errorf("dist[C] = %g; want 6", got)
	}
}

func TestDijkstra_BlockedVertexUnreachable(t *testing.T) {
	// A—B(1)—C(1) with every edge touching B blocked; A—C(10) remains.
	g := undirected(t, 3, [][3]float64{{A, B, core.Infinity}, {B, C, core.Infinity}, {A, C, 10}})

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(A))
	if err != nil {
		t.Fatal(err)
	}
	if got := mustDist(t, res, C); got != 10 {
		t.Errorf("dist[C] = %g; want 10", got)
	}
	if _, err := res.DistanceTo(B); !errors.Is(err, shortestpath.ErrUnreachable) {
		t.Errorf("expected blocked B unreachable, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 6. Edge Cases: Single vertex, self-loop, idempotence.
// ------------------------------------------------------------------------

func TestDijkstra_SingleVertex_ReturnsZero(t *testing.T) {
	g := directed(t, 1, nil)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	if err != nil {
		t.Fatal(err)
	}
	if got := mustDist(t, res, 0); got != 0 {
		t.Errorf("dist[0] = %g; want 0", got)
	}
	path, err := res.PathTo(0)
	if err != nil || len(path) != 0 {
		t.Errorf("PathTo(0) = %v, %v; want empty path", path, err)
	}
}

func TestDijkstra_SelfLoopZeroWeight(t *testing.T) {
	g := directed(t, 2, [][3]float64{{A, A, 0}, {A, B, 3}})

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(A))
	if err != nil {
		t.Fatal(err)
	}
	if got := mustDist(t, res, B); got != 3 {
		t.Errorf("dist[B] = %g; want 3", got)
	}
	e, _ := res.EdgeTo(A)
	if e != (core.Edge{From: A, To: A, Weight: 0}) {
		t.Errorf("edgeTo[A] = %v; want self-edge", e)
	}
}

func TestDijkstra_Idempotent(t *testing.T) {
	g := directed(t, 4, [][3]float64{{A, B, 2}, {A, C, 1}, {C, B, 1}, {B, D, 3}, {C, D, 5}})

	first, err := dijkstra.Dijkstra(g, dijkstra.Source(A))
	if err != nil {
		t.Fatal(err)
	}
	second, err := dijkstra.Dijkstra(g, dijkstra.Source(A))
	if err != nil {
		t.Fatal(err)
	}
	if !shortestpath.Equal(first, second) {
		t.Fatalf("repeated runs differ: %v vs %v", first.Distances(), second.Distances())
	}
	for v := 0; v < g.VertexCount(); v++ {
		e1, _ := first.EdgeTo(v)
		e2, _ := second.EdgeTo(v)
		if e1 != e2 {
			t.Errorf("edgeTo[%d] differs: %v vs %v", v, e1, e2)
		}
	}
}

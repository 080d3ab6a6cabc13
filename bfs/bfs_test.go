package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/railnet/bfs"
	"github.com/katalvlaran/railnet/core"
)

// undirected builds a core.Graph from unit-weight pairs.
func undirected(t testing.TB, n int, pairs ...[2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range pairs {
		if err := g.AddEdge(p[0], p[1], 1); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	g := undirected(t, 1)
	for _, s := range []int{-1, 1} {
		if _, err := bfs.BFS(g, s); !errors.Is(err, bfs.ErrStartVertexNotFound) {
			t.Errorf("start %d: want ErrStartVertexNotFound, got %v", s, err)
		}
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	// 0–1–2–3–0 undirected cycle
	g := undirected(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})

	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 1, 2, 1}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	if want := []int{-1, 0, 1, 0}; !reflect.DeepEqual(res.Parent, want) {
		t.Errorf("Parent = %v; want %v", res.Parent, want)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := undirected(t, 4, [2]int{0, 1}, [2]int{2, 3})

	res, _ := bfs.BFS(g, 2)
	if !reflect.DeepEqual(res.Order, []int{2, 3}) {
		t.Errorf("From 2: got %v; want [2 3]", res.Order)
	}
	if res.Reached(0) || res.Depth[0] != -1 {
		t.Errorf("vertex 0 must stay unreached, depth %d", res.Depth[0])
	}
	if _, err := res.PathTo(0); err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

// TestBFS_Directed follows edges only in their direction.
func TestBFS_Directed(t *testing.T) {
	g, _ := core.NewDigraph(3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(2, 1, 1)

	res, _ := bfs.BFS(g, 0)
	if !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("directed: got %v; want [0 1]", res.Order)
	}
}

// TestBFS_BlockedEdges verifies that infinite edges are never followed.
func TestBFS_BlockedEdges(t *testing.T) {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1, core.Infinity)
	_ = g.AddEdge(1, 2, 4)

	res, _ := bfs.BFS(g, 0)
	if !reflect.DeepEqual(res.Order, []int{0}) {
		t.Errorf("blocked: got %v; want [0]", res.Order)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := undirected(t, 3, [2]int{0, 1}, [2]int{1, 2})
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("MaxDepth=1: got %v; want [0 1]", res.Order)
	}
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=0: got %v; want [0 1 2]", res.Order)
	}
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=10: got %v; want [0 1 2]", res.Order)
	}
}

// TestBFS_FilterEdge shows how filtering prunes certain edges.
func TestBFS_FilterEdge(t *testing.T) {
	g := undirected(t, 3, [2]int{0, 1}, [2]int{1, 2})
	res, _ := bfs.BFS(g, 0,
		bfs.WithFilterEdge(func(e core.Edge) bool {
			return !(e.From == 1 && e.To == 2)
		}),
	)
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterEdge: got %v; want %v", res.Order, want)
	}
}

// TestBFS_SelfLoopAndParallelDedup ensures that loops and parallel edges do not enqueue twice.
func TestBFS_SelfLoopAndParallelDedup(t *testing.T) {
	g := undirected(t, 2, [2]int{0, 0}, [2]int{0, 1}, [2]int{0, 1})
	res, _ := bfs.BFS(g, 0)
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("SelfLoop/Parallel: got %v; want %v", res.Order, want)
	}
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := undirected(t, 3, [2]int{0, 1}, [2]int{1, 2})

	var enq, deq, vis [][2]int
	_, err := bfs.BFS(
		g, 0,
		bfs.WithOnEnqueue(func(v, d int) { enq = append(enq, [2]int{v, d}) }),
		bfs.WithOnDequeue(func(v, d int) { deq = append(deq, [2]int{v, d}) }),
		bfs.WithOnVisit(func(v, d int) error { vis = append(vis, [2]int{v, d}); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}
	want := [][2]int{{0, 0}, {1, 1}, {2, 2}}
	for name, got := range map[string][][2]int{"enqueue": enq, "dequeue": deq, "visit": vis} {
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s = %v; want %v", name, got, want)
		}
	}

	stop := errors.New("stop")
	_, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit error: want wrapped stop, got %v", err)
	}
}

// TestBFS_PathTo covers both trivial (start→start) and longer paths.
func TestBFS_PathTo(t *testing.T) {
	g := undirected(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{0, 2})
	res, _ := bfs.BFS(g, 0)
	if path, _ := res.PathTo(0); !reflect.DeepEqual(path, []int{0}) {
		t.Errorf("PathTo start: got %v; want [0]", path)
	}
	if path, _ := res.PathTo(3); !reflect.DeepEqual(path, []int{0, 2, 3}) {
		t.Errorf("PathTo 3: got %v; want [0 2 3]", path)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g, _ := core.NewGraph(101)
	for i := 0; i < 100; i++ {
		_ = g.AddEdge(i, i+1, 1)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestReachableAndComponents checks the helpers on a graph with three components.
func TestReachableAndComponents(t *testing.T) {
	g := undirected(t, 6, [2]int{0, 3}, [2]int{3, 4}, [2]int{1, 5})

	seen, err := bfs.Reachable(g, 4)
	if err != nil {
		t.Fatal(err)
	}
	if want := []bool{true, false, false, true, true, false}; !reflect.DeepEqual(seen, want) {
		t.Errorf("Reachable = %v; want %v", seen, want)
	}

	comp, count, err := bfs.Components(g)
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("count = %d; want 3", count)
	}
	if want := []int{0, 1, 2, 0, 0, 1}; !reflect.DeepEqual(comp, want) {
		t.Errorf("Components = %v; want %v", comp, want)
	}

	if _, _, err := bfs.Components(nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	empty := undirected(t, 0)
	if _, count, _ := bfs.Components(empty); count != 0 {
		t.Errorf("empty graph: count = %d; want 0", count)
	}
}

// TestBFS_ConcurrentSafety ensures two concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := undirected(t, 2, [2]int{0, 1})
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS(g, 0); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}

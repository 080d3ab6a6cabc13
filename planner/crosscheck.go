package planner

import (
	"io"
	"math"
	"time"

	"github.com/katalvlaran/railnet/bellmanford"
	"github.com/katalvlaran/railnet/core"
	"github.com/katalvlaran/railnet/dijkstra"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// tolerance absorbs summation-order differences between the engines.
const tolerance = 1e-9

// CrossCheck runs Bellman-Ford and Dijkstra from source over g and
// compares the distances vertex by vertex. Bellman-Ford uses the queue
// variant, which reads ForEachAdjacentEdge and so accepts undirected views.
//
// A graph with negative weights fails with dijkstra.ErrNegativeWeight.
func CrossCheck(g core.View, source int, log logrus.FieldLogger) (*Comparison, error) {
	if log == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		log = discard
	}
	log = log.WithField("module", "crosscheck")

	start := time.Now()
	ref, err := bellmanford.BellmanFord(g, bellmanford.Source(source), bellmanford.WithQueue())
	if err != nil {
		return nil, errors.Wrap(err, "bellman-ford")
	}
	bfTime := time.Since(start)

	start = time.Now()
	got, err := dijkstra.Dijkstra(g, dijkstra.Source(source))
	if err != nil {
		return nil, errors.Wrap(err, "dijkstra")
	}
	dTime := time.Since(start)

	c := &Comparison{Vertices: g.VertexCount(), Dijkstra: dTime, BellmanFord: bfTime}
	for v := 0; v < g.VertexCount(); v++ {
		a, b := got.Dist(v), ref.Dist(v)
		if !sameDistance(a, b) {
			c.Mismatches = append(c.Mismatches, Mismatch{Vertex: v, Dijkstra: a, BellmanFord: b})
		}
	}
	log.WithFields(logrus.Fields{
		"vertices":     c.Vertices,
		"mismatches":   len(c.Mismatches),
		"dijkstra":     dTime,
		"bellman_ford": bfTime,
	}).Debug("cross-check")

	return c, nil
}

func sameDistance(a, b float64) bool {
	if core.IsInf(a) || core.IsInf(b) {
		return core.IsInf(a) == core.IsInf(b)
	}

	return math.Abs(a-b) <= tolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

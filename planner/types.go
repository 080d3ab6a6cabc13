package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/railnet/prim_kruskal"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrNoRoute indicates that the destination cannot be reached, either
// because the network is disconnected or because a closed station cuts
// every route (or is itself an endpoint).
var ErrNoRoute = errors.New("planner: no route")

// Leg is one line travelled along a Route.
type Leg struct {
	From   string
	To     string
	Weight float64
}

// Route is a sequence of legs and its total weight (km or minutes,
// depending on the query).
type Route struct {
	From  string
	To    string
	Legs  []Leg
	Total float64
}

// Cities lists the stations visited, endpoints included.
func (r *Route) Cities() []string {
	out := []string{r.From}
	for _, l := range r.Legs {
		out = append(out, l.To)
	}

	return out
}

// String renders "A -> B -> C".
func (r *Route) String() string {
	return strings.Join(r.Cities(), " -> ")
}

// RenovatedLine is one line selected for renovation.
type RenovatedLine struct {
	From string
	To   string
	Cost float64
}

// Renovation is the cheapest set of lines keeping the network connected.
// Connected is false when the network itself is disconnected, in which case
// Lines spans each component separately.
type Renovation struct {
	Lines      []RenovatedLine
	Total      float64
	Connected  bool
	Components int
}

// Mismatch is a vertex on which the two engines disagree.
type Mismatch struct {
	Vertex      int
	Dijkstra    float64
	BellmanFord float64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("vertex %d: dijkstra=%g bellman-ford=%g", m.Vertex, m.Dijkstra, m.BellmanFord)
}

// Comparison is the outcome of CrossCheck.
type Comparison struct {
	Vertices    int
	Mismatches  []Mismatch
	Dijkstra    time.Duration
	BellmanFord time.Duration
}

// OK reports whether both engines agreed everywhere.
func (c *Comparison) OK() bool { return len(c.Mismatches) == 0 }

// Summary describes a network at a glance.
type Summary struct {
	Cities      int
	Lines       int
	TotalLength int
	Components  int
}

// Options configures a Planner.
type Options struct {
	Logger    logrus.FieldLogger
	MSTMethod string
}

// Option is a functional option for New.
type Option func(*Options)

// WithLogger routes planner logs to l. A nil logger discards them.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMSTMethod selects the MST algorithm used by CheapestRenovation
// (prim_kruskal.MethodKruskal, MethodPrim or MethodLazyPrim).
func WithMSTMethod(m string) Option {
	return func(o *Options) { o.MSTMethod = m }
}

// DefaultOptions discards logs and renovates with Kruskal.
func DefaultOptions() Options {
	return Options{MSTMethod: prim_kruskal.MethodKruskal}
}

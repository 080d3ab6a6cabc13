// File: view.go
// Role: core.View projections of a Network. One View type covers every
// weighting policy (length, duration, renovation cost) and both the
// undirected and the bidirectional-directed shapes.
// Determinism:
//   - ForEachAdjacentEdge follows line insertion order.
//   - ForEachEdge follows line insertion order; a directed view emits the
//     stored direction first, then the reverse.

package network

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/railnet/core"
	"github.com/pkg/errors"
)

// WeightFunc derives an edge weight from a line.
type WeightFunc func(l Line) (float64, error)

// ByLength weighs a line by its length in km.
func ByLength(l Line) (float64, error) { return float64(l.Length), nil }

// ByDuration weighs a line by its travel time in minutes.
func ByDuration(l Line) (float64, error) { return float64(l.Duration), nil }

// RenovationCosts maps a track count to a renovation cost per km.
type RenovationCosts map[int]float64

// DefaultRenovationCosts returns the standard tariff:
// 3 per km for one track, 6 for two, 10 for three and 15 for four.
func DefaultRenovationCosts() RenovationCosts {
	return RenovationCosts{1: 3, 2: 6, 3: 10, 4: 15}
}

// String renders the costs ordered by track count, e.g. "1:3 2:6".
func (c RenovationCosts) String() string {
	keys := make([]int, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	s := ""
	for i, k := range keys {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d:%g", k, c[k])
	}

	return s
}

// RenovationCost weighs a line by cost-per-km(tracks) × length.
// A track count missing from costs yields ErrUnknownTrackCount.
func RenovationCost(costs RenovationCosts) WeightFunc {
	return func(l Line) (float64, error) {
		perKm, ok := costs[l.Tracks]
		if !ok {
			return 0, errors.Wrapf(ErrUnknownTrackCount, "%d tracks", l.Tracks)
		}

		return perKm * float64(l.Length), nil
	}
}

// ViewOptions configures NewView.
type ViewOptions struct {
	// Directed makes ForEachEdge emit both directions of every line.
	// ForEachAdjacentEdge is the same in both shapes.
	Directed bool

	// Blocked lists closed cities; every line touching one weighs core.Infinity.
	Blocked []string
}

// ViewOption is a functional option for NewView.
type ViewOption func(*ViewOptions)

// Directed selects the bidirectional directed shape (two arcs per line),
// required by pass-based Bellman-Ford.
func Directed() ViewOption { return func(o *ViewOptions) { o.Directed = true } }

// Undirected selects the undirected shape (one edge per line). Default.
func Undirected() ViewOption { return func(o *ViewOptions) { o.Directed = false } }

// WithBlocked closes the named cities.
func WithBlocked(cities ...string) ViewOption {
	return func(o *ViewOptions) { o.Blocked = append(o.Blocked, cities...) }
}

// View is an immutable core.View over a Network.
type View struct {
	net      *Network
	weights  []float64 // per line, Infinity when blocked
	directed bool
	blocked  []bool
}

var _ core.View = (*View)(nil)

// NewView projects n through weight. Weights are computed once here, so a
// failing WeightFunc (e.g. an unknown track count) fails construction.
func NewView(n *Network, weight WeightFunc, opts ...ViewOption) (*View, error) {
	if n == nil {
		return nil, core.ErrNilView
	}
	if weight == nil {
		return nil, errors.New("network: nil weight function")
	}
	var o ViewOptions
	for _, opt := range opts {
		opt(&o)
	}

	v := &View{
		net:      n,
		weights:  make([]float64, len(n.lines)),
		directed: o.Directed,
		blocked:  make([]bool, len(n.cities)),
	}
	for _, name := range o.Blocked {
		i, err := n.CityIndex(name)
		if err != nil {
			return nil, errors.Wrap(err, "blocked city")
		}
		v.blocked[i] = true
	}
	for i, l := range n.lines {
		w, err := weight(l)
		if err != nil {
			return nil, errors.Wrapf(err, "line %s-%s", n.CityName(l.From), n.CityName(l.To))
		}
		if v.blocked[l.From] || v.blocked[l.To] {
			w = core.Infinity
		}
		v.weights[i] = w
	}

	return v, nil
}

// Network returns the underlying dataset.
func (v *View) Network() *Network { return v.net }

// IsDirected reports the shape chosen at construction.
func (v *View) IsDirected() bool { return v.directed }

// IsBlocked reports whether city c is closed in this view.
func (v *View) IsBlocked(c int) bool { return c >= 0 && c < len(v.blocked) && v.blocked[c] }

// VertexCount implements core.View.
func (v *View) VertexCount() int { return len(v.net.cities) }

// ForEachVertex implements core.View.
func (v *View) ForEachVertex(visit func(int)) {
	for i := range v.net.cities {
		visit(i)
	}
}

// ForEachAdjacentEdge yields every line touching c, oriented out of c.
func (v *View) ForEachAdjacentEdge(c int, visit func(core.Edge)) {
	if c < 0 || c >= len(v.net.incident) {
		return
	}
	for _, li := range v.net.incident[c] {
		l := v.net.lines[li]
		visit(core.Edge{From: c, To: otherEnd(l, c), Weight: v.weights[li]})
	}
}

// ForEachEdge yields each line once (undirected) or as two arcs (directed).
func (v *View) ForEachEdge(visit func(core.Edge)) {
	for i, l := range v.net.lines {
		e := core.Edge{From: l.From, To: l.To, Weight: v.weights[i]}
		visit(e)
		if v.directed {
			visit(e.Reversed())
		}
	}
}

func otherEnd(l Line, c int) int {
	if l.From == c {
		return l.To
	}

	return l.From
}

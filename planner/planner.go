package planner

import (
	"io"

	"github.com/katalvlaran/railnet/bfs"
	"github.com/katalvlaran/railnet/dijkstra"
	"github.com/katalvlaran/railnet/network"
	"github.com/katalvlaran/railnet/prim_kruskal"
	"github.com/katalvlaran/railnet/shortestpath"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Planner answers route and renovation queries over one Network.
// It holds no mutable state; concurrent queries are safe.
type Planner struct {
	net    *network.Network
	log    logrus.FieldLogger
	method string
}

// New returns a Planner over n.
func New(n *network.Network, opts ...Option) (*Planner, error) {
	if n == nil {
		return nil, errors.New("planner: nil network")
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.Logger
	if logger == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		logger = discard
	}

	return &Planner{
		net:    n,
		log:    logger.WithField("module", "planner"),
		method: o.MSTMethod,
	}, nil
}

// Network returns the dataset the planner works on.
func (p *Planner) Network() *network.Network { return p.net }

// Summary counts cities, lines, total length and connected components.
func (p *Planner) Summary() (*Summary, error) {
	v, err := network.NewView(p.net, network.ByLength)
	if err != nil {
		return nil, err
	}
	_, count, err := bfs.Components(v)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Cities:      p.net.CityCount(),
		Lines:       p.net.LineCount(),
		TotalLength: p.net.TotalLength(),
		Components:  count,
	}, nil
}

// CheapestRenovation selects the cheapest set of lines that keeps every
// city connected, each line costing costs[tracks] per km. A nil costs map
// uses network.DefaultRenovationCosts.
func (p *Planner) CheapestRenovation(costs network.RenovationCosts) (*Renovation, error) {
	if costs == nil {
		costs = network.DefaultRenovationCosts()
	}
	v, err := network.NewView(p.net, network.RenovationCost(costs))
	if err != nil {
		return nil, err
	}
	tree, err := prim_kruskal.Compute(v, prim_kruskal.WithMethod(p.method))
	if err != nil {
		return nil, errors.Wrapf(err, "renovation (%s)", p.method)
	}

	r := &Renovation{
		Lines:      make([]RenovatedLine, 0, len(tree.Edges)),
		Total:      tree.Weight,
		Connected:  tree.Spanning(),
		Components: tree.Components(),
	}
	for _, e := range tree.Edges {
		r.Lines = append(r.Lines, RenovatedLine{
			From: p.net.CityName(e.Either()),
			To:   p.net.CityName(e.Other(e.Either())),
			Cost: e.Weight,
		})
	}
	p.log.WithFields(logrus.Fields{
		"method":    p.method,
		"lines":     len(r.Lines),
		"total":     r.Total,
		"connected": r.Connected,
	}).Debug("cheapest renovation")

	return r, nil
}

// ShortestRoute finds the shortest route by length (km).
func (p *Planner) ShortestRoute(from, to string) (*Route, error) {
	v, err := network.NewView(p.net, network.ByLength)
	if err != nil {
		return nil, err
	}

	return p.route(v, from, to)
}

// ShortestRouteAvoiding finds the shortest route by length with the closed
// station out of service. ErrNoRoute when closed is an endpoint or cuts
// every route.
func (p *Planner) ShortestRouteAvoiding(from, to, closed string) (*Route, error) {
	if closed == from || closed == to {
		return nil, errors.Wrapf(ErrNoRoute, "%s is closed", closed)
	}
	v, err := network.NewView(p.net, network.ByLength, network.WithBlocked(closed))
	if err != nil {
		return nil, err
	}

	return p.route(v, from, to)
}

// FastestRouteVia finds the fastest route (minutes) from -> via -> to.
// Both halves are independent shortest routes, so a city may appear in both.
func (p *Planner) FastestRouteVia(from, to, via string) (*Route, error) {
	v, err := network.NewView(p.net, network.ByDuration)
	if err != nil {
		return nil, err
	}
	first, err := p.route(v, from, via)
	if err != nil {
		return nil, err
	}
	second, err := p.route(v, via, to)
	if err != nil {
		return nil, err
	}

	return &Route{
		From:  from,
		To:    to,
		Legs:  append(first.Legs, second.Legs...),
		Total: first.Total + second.Total,
	}, nil
}

// FastestRoute finds the fastest route (minutes).
func (p *Planner) FastestRoute(from, to string) (*Route, error) {
	v, err := network.NewView(p.net, network.ByDuration)
	if err != nil {
		return nil, err
	}

	return p.route(v, from, to)
}

// route runs Dijkstra on v from one named city and extracts the path to another.
func (p *Planner) route(v *network.View, from, to string) (*Route, error) {
	s, err := p.net.CityIndex(from)
	if err != nil {
		return nil, err
	}
	t, err := p.net.CityIndex(to)
	if err != nil {
		return nil, err
	}

	res, err := dijkstra.Dijkstra(v, dijkstra.Source(s))
	if err != nil {
		return nil, errors.Wrapf(err, "route %s -> %s", from, to)
	}
	path, err := res.PathTo(t)
	if errors.Is(err, shortestpath.ErrUnreachable) {
		return nil, errors.Wrapf(ErrNoRoute, "%s -> %s", from, to)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "route %s -> %s", from, to)
	}
	total, _ := res.DistanceTo(t)

	r := &Route{From: from, To: to, Legs: make([]Leg, 0, len(path)), Total: total}
	for _, e := range path {
		r.Legs = append(r.Legs, Leg{From: p.net.CityName(e.From), To: p.net.CityName(e.To), Weight: e.Weight})
	}
	p.log.WithFields(logrus.Fields{
		"from":    from,
		"to":      to,
		"legs":    len(r.Legs),
		"total":   r.Total,
		"blocked": blockedNames(v),
	}).Debug("route")

	return r, nil
}

func blockedNames(v *network.View) []string {
	var out []string
	for c := 0; c < v.VertexCount(); c++ {
		if v.IsBlocked(c) {
			out = append(out, v.Network().CityName(c))
		}
	}

	return out
}

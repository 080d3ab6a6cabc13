// File: network.go
// Role: The train-network dataset. Cities are indexed [0, V) in insertion
// order; lines are undirected and keep their original endpoint order.
// Concurrency:
//   - A Network is immutable after construction; concurrent readers are safe.

package network

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors.
var (
	// ErrUnknownCity indicates a lookup of a name that is not in the network.
	ErrUnknownCity = errors.New("network: unknown city")

	// ErrInvalidLine indicates a line with a missing endpoint, a loop,
	// a negative length or duration, or fewer than one track.
	ErrInvalidLine = errors.New("network: invalid line")

	// ErrMalformed indicates an input document that cannot be parsed.
	ErrMalformed = errors.New("network: malformed input")

	// ErrUnknownTrackCount indicates a line whose track count has no
	// renovation cost.
	ErrUnknownTrackCount = errors.New("network: no renovation cost for track count")
)

// City is a station of the network.
type City struct {
	Name string
}

// Line is an undirected railway line between two cities.
// Length is in km, Duration in minutes.
type Line struct {
	From     int
	To       int
	Length   int
	Duration int
	Tracks   int
}

// Network is an immutable set of cities and the lines between them.
type Network struct {
	cities   []City
	lines    []Line
	index    map[string]int
	incident [][]int // incident[v] = indices into lines touching v
}

// New validates cities and lines and builds the lookup indexes.
// City names must be unique and non-empty.
func New(cities []City, lines []Line) (*Network, error) {
	n := &Network{
		cities:   append([]City(nil), cities...),
		lines:    append([]Line(nil), lines...),
		index:    make(map[string]int, len(cities)),
		incident: make([][]int, len(cities)),
	}
	for i, c := range n.cities {
		if c.Name == "" {
			return nil, errors.Wrapf(ErrMalformed, "city %d has no name", i)
		}
		if _, dup := n.index[c.Name]; dup {
			return nil, errors.Wrapf(ErrMalformed, "duplicate city %q", c.Name)
		}
		n.index[c.Name] = i
	}
	for i, l := range n.lines {
		if err := checkLine(l, len(n.cities)); err != nil {
			return nil, errors.Wrapf(err, "line %d", i)
		}
		n.incident[l.From] = append(n.incident[l.From], i)
		n.incident[l.To] = append(n.incident[l.To], i)
	}

	return n, nil
}

func checkLine(l Line, cities int) error {
	switch {
	case l.From < 0 || l.From >= cities || l.To < 0 || l.To >= cities:
		return errors.Wrapf(ErrInvalidLine, "endpoint out of range (%d, %d)", l.From, l.To)
	case l.From == l.To:
		return errors.Wrapf(ErrInvalidLine, "loop at city %d", l.From)
	case l.Length < 0 || l.Duration < 0:
		return errors.Wrapf(ErrInvalidLine, "negative length or duration (%d, %d)", l.Length, l.Duration)
	case l.Tracks < 1:
		return errors.Wrapf(ErrInvalidLine, "tracks must be >= 1, got %d", l.Tracks)
	}

	return nil
}

// CityCount returns the number of cities.
func (n *Network) CityCount() int { return len(n.cities) }

// LineCount returns the number of lines.
func (n *Network) LineCount() int { return len(n.lines) }

// Cities returns a copy of the cities, in index order.
func (n *Network) Cities() []City { return append([]City(nil), n.cities...) }

// Lines returns a copy of the lines, in insertion order.
func (n *Network) Lines() []Line { return append([]Line(nil), n.lines...) }

// Line returns the i-th line.
func (n *Network) Line(i int) Line { return n.lines[i] }

// CityIndex resolves a city name.
func (n *Network) CityIndex(name string) (int, error) {
	i, ok := n.index[name]
	if !ok {
		return -1, errors.Wrapf(ErrUnknownCity, "%q", name)
	}

	return i, nil
}

// MustCityIndex is CityIndex for names known to exist. It panics otherwise.
func (n *Network) MustCityIndex(name string) int {
	i, err := n.CityIndex(name)
	if err != nil {
		panic(err)
	}

	return i
}

// CityName returns the name of city v, or "#v" when v is out of range.
func (n *Network) CityName(v int) string {
	if v < 0 || v >= len(n.cities) {
		return fmt.Sprintf("#%d", v)
	}

	return n.cities[v].Name
}

// TotalLength sums the length of every line, in km.
func (n *Network) TotalLength() int {
	total := 0
	for _, l := range n.lines {
		total += l.Length
	}

	return total
}

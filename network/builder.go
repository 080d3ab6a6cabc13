package network

import "github.com/pkg/errors"

// Builder assembles a Network from city names. Cities are indexed in the
// order they are first mentioned. The first error is kept and returned by
// Build; later calls are ignored.
//
//	n, err := network.NewBuilder().
//		Line("Geneve", "Lausanne", 60, 33, 2).
//		Line("Lausanne", "Fribourg", 70, 45, 2).
//		Build()
type Builder struct {
	cities []City
	index  map[string]int
	lines  []Line
	err    error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]int)}
}

// City adds a city, possibly without lines. Adding an existing city is a no-op.
func (b *Builder) City(name string) *Builder {
	if b.err != nil {
		return b
	}
	b.city(name)

	return b
}

func (b *Builder) city(name string) int {
	if i, ok := b.index[name]; ok {
		return i
	}
	if name == "" {
		b.err = errors.Wrap(ErrInvalidLine, "empty city name")
		return -1
	}
	b.index[name] = len(b.cities)
	b.cities = append(b.cities, City{Name: name})

	return len(b.cities) - 1
}

// Line adds an undirected line between two cities, creating them as needed.
func (b *Builder) Line(from, to string, length, duration, tracks int) *Builder {
	if b.err != nil {
		return b
	}
	u, v := b.city(from), b.city(to)
	if b.err != nil {
		return b
	}
	l := Line{From: u, To: v, Length: length, Duration: duration, Tracks: tracks}
	if err := checkLine(l, len(b.cities)); err != nil {
		b.err = errors.Wrapf(err, "%s-%s", from, to)
		return b
	}
	b.lines = append(b.lines, l)

	return b
}

// Build validates the collected lines and returns the Network.
func (b *Builder) Build() (*Network, error) {
	if b.err != nil {
		return nil, b.err
	}

	return New(b.cities, b.lines)
}

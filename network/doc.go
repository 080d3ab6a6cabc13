// Package network models a railway network and projects it as core.View
// instances the algorithm packages can consume.
//
// A Network holds cities (indexed in insertion order) and undirected lines
// carrying a length in km, a duration in minutes and a number of tracks.
// It is built with a Builder or decoded by one of the loaders:
//
//	Parse(r)      text, one "from;to;length;duration;tracks" record per line
//	ParseYAML(r)  YAML document with "cities" and "lines" keys
//	ParseTOML(r)  TOML document with the same keys
//	LoadFile(p)   picks one of the above by file extension
//
// # Views
//
// NewView(n, weight, opts...) fixes a weighting policy (ByLength,
// ByDuration, RenovationCost) and a shape (Undirected, the default, or
// Directed). WithBlocked closes cities: every line touching a closed city
// weighs core.Infinity, which no engine ever relaxes, so the city becomes
// unreachable and never appears inside a path.
//
// Errors
//
//   - ErrUnknownCity:       name lookup failed.
//   - ErrInvalidLine:       loop, missing endpoint, negative length or duration, no track.
//   - ErrMalformed:         undecodable input; text errors carry the line number.
//   - ErrUnknownTrackCount: RenovationCost met a track count it has no price for.
package network

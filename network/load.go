package network

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// document is the structured (YAML / TOML) form of a network. Cities lists
// stations that may have no line; cities named only by lines are added in
// order of first mention.
type document struct {
	Cities []string       `yaml:"cities" toml:"cities"`
	Lines  []documentLine `yaml:"lines" toml:"lines"`
}

type documentLine struct {
	From     string `yaml:"from" toml:"from"`
	To       string `yaml:"to" toml:"to"`
	Length   int    `yaml:"length" toml:"length"`
	Duration int    `yaml:"duration" toml:"duration"`
	Tracks   int    `yaml:"tracks" toml:"tracks"`
}

func (d *document) build() (*Network, error) {
	b := NewBuilder()
	for _, c := range d.Cities {
		b.City(c)
	}
	for i, l := range d.Lines {
		if l.From == "" || l.To == "" {
			return nil, errors.Wrapf(ErrInvalidLine, "lines[%d]: missing endpoint", i)
		}
		b.Line(l.From, l.To, l.Length, l.Duration, l.Tracks)
	}

	return b.Build()
}

// Parse reads the text format, one line per record:
//
//	# comment
//	Geneve;Lausanne;60;33;2      from;to;length;duration;tracks
//	Zermatt                      a city with no line
//
// Blank lines and lines starting with '#' are ignored. Fields are trimmed.
// Errors carry the 1-based line number.
func Parse(r io.Reader) (*Network, error) {
	b := NewBuilder()
	sc := bufio.NewScanner(r)
	for no := 1; sc.Scan(); no++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Split(text, ";")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		switch len(fields) {
		case 1:
			b.City(fields[0])
		case 5:
			nums, err := atois(fields[2:])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", no)
			}
			if fields[0] == "" || fields[1] == "" {
				return nil, errors.Wrapf(ErrInvalidLine, "line %d: missing endpoint", no)
			}
			b.Line(fields[0], fields[1], nums[0], nums[1], nums[2])
		default:
			return nil, errors.Wrapf(ErrMalformed, "line %d: want 5 fields separated by ';', got %d", no, len(fields))
		}
		if b.err != nil {
			return nil, errors.Wrapf(b.err, "line %d", no)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "network: read")
	}

	return b.Build()
}

func atois(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "field %q is not an integer", f)
		}
		out[i] = n
	}

	return out, nil
}

// ParseYAML decodes a network from YAML:
//
//	cities: [Zermatt]
//	lines:
//	  - {from: Geneve, to: Lausanne, length: 60, duration: 33, tracks: 2}
func ParseYAML(r io.Reader) (*Network, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrapf(ErrMalformed, "yaml: %v", err)
	}

	return doc.build()
}

// ParseTOML decodes a network from TOML:
//
//	cities = ["Zermatt"]
//	[[lines]]
//	from = "Geneve"
//	to = "Lausanne"
//	length = 60
//	duration = 33
//	tracks = 2
//
// Unknown keys are rejected.
func ParseTOML(r io.Reader) (*Network, error) {
	var doc document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "toml: %v", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Wrapf(ErrMalformed, "toml: unknown key %q", undecoded[0].String())
	}

	return doc.build()
}

// LoadFile opens path and decodes it according to its extension:
// .yaml / .yml as YAML, .toml as TOML, anything else as the text format.
func LoadFile(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "network: open %s", path)
	}
	defer f.Close()

	var n *Network
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		n, err = ParseYAML(f)
	case ".toml":
		n, err = ParseTOML(f)
	default:
		n, err = Parse(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "network: load %s", path)
	}

	return n, nil
}

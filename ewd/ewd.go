// Package ewd reads edge-weighted digraphs in the plain text format used by
// the classic algorithm test sets (tinyEWD.txt, mediumEWD.txt, 1000EWD.txt):
//
//	8            vertex count V
//	15           edge count E
//	4 5 0.35     E lines "from to weight"
//
// Tokens are whitespace separated; the layout across lines is not enforced
// beyond that, but errors report the line of the offending token.
package ewd

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/railnet/core"
	"github.com/pkg/errors"
)

// ErrFormat indicates malformed input.
var ErrFormat = errors.New("ewd: malformed input")

// tokenizer yields whitespace-separated tokens with their line numbers.
type tokenizer struct {
	sc     *bufio.Scanner
	line   int
	fields []string
}

func (t *tokenizer) next() (string, int, error) {
	for len(t.fields) == 0 {
		if !t.sc.Scan() {
			if err := t.sc.Err(); err != nil {
				return "", t.line, errors.Wrap(err, "ewd: read")
			}
			return "", t.line, errors.Wrapf(ErrFormat, "line %d: unexpected end of input", t.line)
		}
		t.line++
		t.fields = strings.Fields(t.sc.Text())
	}
	tok := t.fields[0]
	t.fields = t.fields[1:]

	return tok, t.line, nil
}

func (t *tokenizer) readInt(what string) (int, error) {
	tok, line, err := t.next()
	if err != nil {
		return 0, errors.Wrap(err, what)
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errors.Wrapf(ErrFormat, "line %d: %s %q is not an integer", line, what, tok)
	}

	return n, nil
}

func (t *tokenizer) readFloat(what string) (float64, error) {
	tok, line, err := t.next()
	if err != nil {
		return 0, errors.Wrap(err, what)
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrFormat, "line %d: %s %q is not a number", line, what, tok)
	}

	return f, nil
}

// Parse reads a digraph from r. Negative weights are kept as-is.
func Parse(r io.Reader) (*core.Digraph, error) {
	t := &tokenizer{sc: bufio.NewScanner(r)}

	v, err := t.readInt("vertex count")
	if err != nil {
		return nil, err
	}
	g, err := core.NewDigraph(v)
	if err != nil {
		return nil, errors.Wrapf(ErrFormat, "line %d: %v", t.line, err)
	}
	e, err := t.readInt("edge count")
	if err != nil {
		return nil, err
	}
	if e < 0 {
		return nil, errors.Wrapf(ErrFormat, "line %d: negative edge count %d", t.line, e)
	}

	for i := 0; i < e; i++ {
		from, err := t.readInt("from")
		if err != nil {
			return nil, err
		}
		to, err := t.readInt("to")
		if err != nil {
			return nil, err
		}
		w, err := t.readFloat("weight")
		if err != nil {
			return nil, err
		}
		if err := g.AddEdge(from, to, w); err != nil {
			return nil, errors.Wrapf(ErrFormat, "line %d: %v", t.line, err)
		}
	}

	return g, nil
}

// LoadFile parses the file at path.
func LoadFile(path string) (*core.Digraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "ewd: open %s", path)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "ewd: load %s", path)
	}

	return g, nil
}

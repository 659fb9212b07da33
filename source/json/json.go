// Package json parses JSON text into the generic jsontree.Value, preserving
// object key order. It is a thin driver over the goccy/go-json token stream;
// the decoder combinators themselves never touch text.
package json

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	"github.com/solvang/jsontree"
)

// DefaultMaxDepth bounds container nesting so that pathological inputs
// cannot drive unbounded recursion further down the pipeline.
const DefaultMaxDepth = 4096

// Options configures parsing. The zero value applies DefaultMaxDepth.
type Options struct {
	// MaxDepth is the maximum container nesting depth. 0 means DefaultMaxDepth.
	MaxDepth int
}

// Parse reads a single JSON document from b with default options.
func Parse(b []byte) (jsontree.Value, error) {
	return ParseWith(b, Options{})
}

// ParseString is Parse over a string input.
func ParseString(s string) (jsontree.Value, error) {
	return Parse([]byte(s))
}

// ParseWith reads a single JSON document from b. Trailing non-whitespace
// content after the document is an error. Duplicate object keys keep the
// last value at the first key's position.
func ParseWith(b []byte, opt Options) (jsontree.Value, error) {
	maxDepth := opt.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}
	dec := j.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	p := parser{dec: dec, maxDepth: maxDepth}
	v, err := p.value(0)
	if err != nil {
		return jsontree.Value{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return jsontree.Value{}, errors.New("json: unexpected content after top-level value")
	}
	return v, nil
}

type parser struct {
	dec      *j.Decoder
	maxDepth int
}

func (p *parser) value(depth int) (jsontree.Value, error) {
	tok, err := p.dec.Token()
	if err != nil {
		if err == io.EOF {
			return jsontree.Value{}, errors.New("json: unexpected end of input")
		}
		return jsontree.Value{}, err
	}
	return p.fromToken(tok, depth)
}

func (p *parser) fromToken(tok j.Token, depth int) (jsontree.Value, error) {
	switch t := tok.(type) {
	case j.Delim:
		if depth >= p.maxDepth {
			return jsontree.Value{}, fmt.Errorf("json: exceeded max nesting depth of %d", p.maxDepth)
		}
		switch t {
		case '{':
			return p.object(depth + 1)
		case '[':
			return p.array(depth + 1)
		}
		return jsontree.Value{}, fmt.Errorf("json: unexpected delimiter %q", t.String())
	case string:
		return jsontree.String(t), nil
	case bool:
		return jsontree.Bool(t), nil
	case j.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return jsontree.Value{}, fmt.Errorf("json: invalid number %q: %w", t.String(), err)
		}
		return jsontree.Number(f), nil
	case float64:
		return jsontree.Number(t), nil
	case nil:
		return jsontree.Null(), nil
	}
	return jsontree.Value{}, fmt.Errorf("json: unexpected token %v", tok)
}

func (p *parser) object(depth int) (jsontree.Value, error) {
	o := jsontree.NewObject()
	for p.dec.More() {
		keyTok, err := p.dec.Token()
		if err != nil {
			return jsontree.Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return jsontree.Value{}, fmt.Errorf("json: object key is not a string: %v", keyTok)
		}
		v, err := p.value(depth)
		if err != nil {
			return jsontree.Value{}, err
		}
		o.Set(key, v)
	}
	if _, err := p.dec.Token(); err != nil { // consume '}'
		return jsontree.Value{}, err
	}
	return o.Value(), nil
}

func (p *parser) array(depth int) (jsontree.Value, error) {
	var elems []jsontree.Value
	for p.dec.More() {
		v, err := p.value(depth)
		if err != nil {
			return jsontree.Value{}, err
		}
		elems = append(elems, v)
	}
	if _, err := p.dec.Token(); err != nil { // consume ']'
		return jsontree.Value{}, err
	}
	return jsontree.Array(elems...), nil
}

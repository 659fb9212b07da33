// Package yaml parses YAML documents into the generic jsontree.Value so the
// same decoders run over YAML and JSON input. Mappings keep their document
// order; only string-keyed mappings are representable.
package yaml

import (
	"errors"
	"fmt"
	"strconv"

	y "gopkg.in/yaml.v3"

	"github.com/solvang/jsontree"
)

const maxAliasDepth = 1024

// Parse reads a single YAML document from b. An empty document yields null.
func Parse(b []byte) (jsontree.Value, error) {
	var root y.Node
	if err := y.Unmarshal(b, &root); err != nil {
		return jsontree.Value{}, err
	}
	if root.Kind == 0 {
		return jsontree.Null(), nil
	}
	return convert(&root, 0)
}

// ParseString is Parse over a string input.
func ParseString(s string) (jsontree.Value, error) {
	return Parse([]byte(s))
}

func convert(n *y.Node, depth int) (jsontree.Value, error) {
	if depth > maxAliasDepth {
		return jsontree.Value{}, errors.New("yaml: alias nesting too deep")
	}
	switch n.Kind {
	case y.DocumentNode:
		if len(n.Content) == 0 {
			return jsontree.Null(), nil
		}
		return convert(n.Content[0], depth+1)
	case y.AliasNode:
		return convert(n.Alias, depth+1)
	case y.MappingNode:
		o := jsontree.NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != y.ScalarNode {
				return jsontree.Value{}, fmt.Errorf("yaml: unsupported non-scalar mapping key at line %d", k.Line)
			}
			cv, err := convert(v, depth+1)
			if err != nil {
				return jsontree.Value{}, err
			}
			o.Set(k.Value, cv)
		}
		return o.Value(), nil
	case y.SequenceNode:
		elems := make([]jsontree.Value, 0, len(n.Content))
		for _, c := range n.Content {
			cv, err := convert(c, depth+1)
			if err != nil {
				return jsontree.Value{}, err
			}
			elems = append(elems, cv)
		}
		return jsontree.Array(elems...), nil
	case y.ScalarNode:
		return scalar(n)
	}
	return jsontree.Value{}, fmt.Errorf("yaml: unsupported node kind %d", n.Kind)
}

func scalar(n *y.Node) (jsontree.Value, error) {
	switch n.Tag {
	case "!!null":
		return jsontree.Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return jsontree.Value{}, fmt.Errorf("yaml: invalid bool %q at line %d", n.Value, n.Line)
		}
		return jsontree.Bool(b), nil
	case "!!int":
		// Base 0 also accepts YAML's hex and octal spellings.
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err == nil {
			return jsontree.Number(float64(i)), nil
		}
		f, ferr := strconv.ParseFloat(n.Value, 64)
		if ferr != nil {
			return jsontree.Value{}, fmt.Errorf("yaml: invalid integer %q at line %d", n.Value, n.Line)
		}
		return jsontree.Number(f), nil
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return jsontree.Value{}, fmt.Errorf("yaml: invalid number %q at line %d", n.Value, n.Line)
		}
		return jsontree.Number(f), nil
	default:
		// !!str, !!timestamp and custom tags stay textual.
		return jsontree.String(n.Value), nil
	}
}

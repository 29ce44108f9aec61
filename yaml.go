package inspect

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

func decodeYAML(r io.Reader) ([]Value, error) {
	dec := yaml.NewDecoder(r)
	var docs []Value
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: yaml: %w", ErrInvalidDocument, err)
		}
		b := yamlBuilder{built: map[*yaml.Node]Value{}}
		v, err := b.value(&node)
		if err != nil {
			return nil, fmt.Errorf("%w: yaml: %w", ErrInvalidDocument, err)
		}
		docs = append(docs, v)
	}
}

// yamlBuilder converts one document. Anchored collections are built once so
// every alias shares the identity of its anchor.
type yamlBuilder struct {
	built map[*yaml.Node]Value
}

func (b *yamlBuilder) value(n *yaml.Node) (Value, error) {
	if v, ok := b.built[n]; ok {
		return v, nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null{}, nil
		}
		return b.value(n.Content[0])
	case yaml.AliasNode:
		return b.value(n.Alias)
	case yaml.SequenceNode:
		arr := NewArray()
		b.built[n] = arr
		for _, c := range n.Content {
			v, err := b.value(c)
			if err != nil {
				return nil, err
			}
			arr.Append(v)
		}
		return arr, nil
	case yaml.MappingNode:
		obj := NewObject()
		b.built[n] = obj
		return obj, b.mapping(obj, n)
	case yaml.ScalarNode:
		return yamlScalar(n)
	}
	return nil, fmt.Errorf("line %d: unexpected node kind %v", n.Line, n.Kind)
}

func (b *yamlBuilder) mapping(obj *Object, n *yaml.Node) error {
	var merges []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, val := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
		}
		if k.ShortTag() == "!!merge" {
			merges = append(merges, val)
			continue
		}
		v, err := b.value(val)
		if err != nil {
			return err
		}
		obj.Set(k.Value, v)
	}
	// Merged keys never override keys written in the mapping itself.
	for _, m := range merges {
		src, err := b.value(m)
		if err != nil {
			return err
		}
		for _, part := range mergeSources(src) {
			for _, key := range part.Keys() {
				if _, ok := obj.Get(key); !ok {
					v, _ := part.Get(key)
					obj.Set(key, v)
				}
			}
		}
	}
	return nil
}

func mergeSources(v Value) []*Object {
	switch v := v.(type) {
	case *Object:
		return []*Object{v}
	case *Array:
		var out []*Object
		for i := range v.Len() {
			if o, ok := v.slots[i].(*Object); ok {
				out = append(out, o)
			}
		}
		return out
	}
	return nil
}

func yamlScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null{}, nil
	case "!!bool":
		var x bool
		if err := n.Decode(&x); err != nil {
			return nil, err
		}
		return Bool(x), nil
	case "!!int", "!!float":
		// Integers too wide for int64 resolve as floats; keep their digits.
		digits := strings.ReplaceAll(n.Value, "_", "")
		if i, ok := new(big.Int).SetString(digits, 0); ok {
			return integer(i), nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return Number(f), nil
	case "!!timestamp":
		var t time.Time
		if err := n.Decode(&t); err != nil {
			return nil, err
		}
		return Date{Time: t}, nil
	default:
		return String(n.Value), nil
	}
}

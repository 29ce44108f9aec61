package inspect

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"math/big"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

func decodeTOML(r io.Reader) ([]Value, error) {
	var doc map[string]any
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("%w: toml: %w", ErrInvalidDocument, err)
	}
	order := tomlKeyOrder(md.Keys())
	return []Value{order.value(doc, nil)}, nil
}

// tomlOrder maps a table path to the position at which each of its keys
// first appeared in the document. Maps lose that order on decode.
type tomlOrder map[string]map[string]int

func tomlKeyOrder(keys []toml.Key) tomlOrder {
	order := tomlOrder{}
	for _, k := range keys {
		if len(k) == 0 {
			continue
		}
		parent := tomlPath(k[:len(k)-1])
		m := order[parent]
		if m == nil {
			m = map[string]int{}
			order[parent] = m
		}
		if _, ok := m[k[len(k)-1]]; !ok {
			m[k[len(k)-1]] = len(m)
		}
	}
	return order
}

func tomlPath(path []string) string {
	return strings.Join(path, "\x00")
}

// keys orders m by document position. Keys the metadata does not list
// follow in lexical order.
func (o tomlOrder) keys(path []string, m map[string]any) []string {
	pos := o[tomlPath(path)]
	keys := slices.Collect(maps.Keys(m))
	slices.SortFunc(keys, func(a, b string) int {
		pa, okA := pos[a]
		pb, okB := pos[b]
		switch {
		case okA && okB:
			return cmp.Compare(pa, pb)
		case okA:
			return -1
		case okB:
			return 1
		}
		return strings.Compare(a, b)
	})
	return keys
}

func (o tomlOrder) value(v any, path []string) Value {
	switch v := v.(type) {
	case map[string]any:
		obj := NewObject()
		for _, k := range o.keys(path, v) {
			obj.Set(k, o.value(v[k], append(slices.Clip(path), k)))
		}
		return obj
	case []map[string]any:
		arr := NewArray()
		for _, el := range v {
			arr.Append(o.value(el, path))
		}
		return arr
	case []any:
		arr := NewArray()
		for _, el := range v {
			arr.Append(o.value(el, path))
		}
		return arr
	case string:
		return String(v)
	case int64:
		return integer(big.NewInt(v))
	case float64:
		return Number(v)
	case bool:
		return Bool(v)
	case time.Time:
		return Date{Time: v}
	case nil:
		return Null{}
	}
	return Host{Name: fmt.Sprintf("%T", v), Native: v}
}

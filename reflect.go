package inspect

import (
	"cmp"
	"fmt"
	"math/big"
	"reflect"
	"regexp"
	"runtime"
	"slices"
	"strings"
	"time"
)

// Of converts an arbitrary Go value into a Value. Pointers, maps and slices
// keep their identity, so a Go cycle renders as a circular reference instead
// of recursing forever. Struct fields appear in declaration order (exported
// fields only) and map keys in sorted order. Values of kinds with no
// counterpart, such as channels, become Host objects named after their type.
func Of(x any) Value {
	c := converter{seen: map[identity]Value{}}
	return c.value(reflect.ValueOf(x))
}

type identity struct {
	typ reflect.Type
	ptr uintptr
	len int
}

type converter struct {
	seen map[identity]Value
}

func (c *converter) value(rv reflect.Value) Value {
	if !rv.IsValid() {
		return Null{}
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return Null{}
		}
	}
	if rv.CanInterface() {
		switch x := rv.Interface().(type) {
		case Value:
			return x
		case time.Time:
			return Date{Time: x}
		case *big.Int:
			return BigInt{Int: new(big.Int).Set(x)}
		}
	}
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return integer(big.NewInt(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return integer(new(big.Int).SetUint64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	case reflect.String:
		return String(rv.String())
	case reflect.Func:
		return Func{Name: funcName(rv)}
	case reflect.Interface:
		return c.value(rv.Elem())
	case reflect.Pointer:
		id := identity{typ: rv.Type(), ptr: rv.Pointer()}
		if v, ok := c.seen[id]; ok {
			return v
		}
		return c.pointee(rv.Elem(), id)
	case reflect.Map:
		id := identity{typ: rv.Type(), ptr: rv.Pointer()}
		if v, ok := c.seen[id]; ok {
			return v
		}
		return c.mapObject(rv, &id)
	case reflect.Slice:
		id := identity{typ: rv.Type(), ptr: rv.Pointer(), len: rv.Len()}
		if v, ok := c.seen[id]; ok {
			return v
		}
		return c.array(rv, &id)
	case reflect.Array:
		return c.array(rv, nil)
	case reflect.Struct:
		return c.structObject(rv, nil)
	}
	h := Host{Name: rv.Type().String()}
	if rv.CanInterface() {
		h.Native = rv.Interface()
	}
	return h
}

func (c *converter) pointee(rv reflect.Value, id identity) Value {
	switch rv.Kind() {
	case reflect.Struct:
		return c.structObject(rv, &id)
	case reflect.Array:
		return c.array(rv, &id)
	}
	c.seen[id] = Undefined{}
	v := c.value(rv)
	c.seen[id] = v
	return v
}

func (c *converter) register(v Value, id *identity) {
	if id != nil {
		c.seen[*id] = v
	}
}

func (c *converter) array(rv reflect.Value, id *identity) Value {
	arr := NewArray()
	c.register(arr, id)
	for i := range rv.Len() {
		arr.Append(c.value(rv.Index(i)))
	}
	return arr
}

func (c *converter) mapObject(rv reflect.Value, id *identity) Value {
	obj := NewObject()
	c.register(obj, id)
	type entry struct {
		name string
		key  reflect.Value
	}
	entries := make([]entry, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		entries = append(entries, entry{name: fmt.Sprint(k.Interface()), key: k})
	}
	slices.SortFunc(entries, func(a, b entry) int { return cmp.Compare(a.name, b.name) })
	for _, e := range entries {
		obj.Set(e.name, c.value(rv.MapIndex(e.key)))
	}
	return obj
}

func (c *converter) structObject(rv reflect.Value, id *identity) Value {
	obj := NewObject()
	c.register(obj, id)
	t := rv.Type()
	for i := range t.NumField() {
		if f := t.Field(i); f.IsExported() {
			obj.Set(f.Name, c.value(rv.Field(i)))
		}
	}
	return obj
}

var closureName = regexp.MustCompile(`(^|\.)func\d+(\.\d+)*$`)

// funcName returns the short symbol name of a function, or "" for closures.
func funcName(rv reflect.Value) string {
	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return ""
	}
	name := fn.Name()
	name = name[strings.LastIndex(name, "/")+1:]
	if _, rest, ok := strings.Cut(name, "."); ok {
		name = rest
	}
	name = strings.TrimSuffix(name, "-fm")
	if closureName.MatchString(name) {
		return ""
	}
	return name
}

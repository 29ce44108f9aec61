package inspect

import (
	"math"
	"math/big"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the variant of a [Value].
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindBigInt
	KindSymbol
	KindNull
	KindUndefined
	KindFunc
	KindDate
	KindArray
	KindObject
	KindHost
)

var kindNames = [...]string{
	KindString:    "string",
	KindNumber:    "number",
	KindBool:      "boolean",
	KindBigInt:    "bigint",
	KindSymbol:    "symbol",
	KindNull:      "null",
	KindUndefined: "undefined",
	KindFunc:      "function",
	KindDate:      "date",
	KindArray:     "array",
	KindObject:    "object",
	KindHost:      "host",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Value is any value the inspector can render. The set of implementations is
// closed: String, Number, Bool, BigInt, Symbol, Null, Undefined, Func, Date,
// *Array, *Object and Host.
type Value interface {
	kind() Kind
}

// KindOf reports the kind of v. A nil Value is reported as KindUndefined.
func KindOf(v Value) Kind {
	if v == nil {
		return KindUndefined
	}
	return v.kind()
}

// String is a text value.
type String string

// Number is a double-precision number.
type Number float64

// Bool is a boolean value.
type Bool bool

// BigInt is an arbitrary-precision integer.
type BigInt struct {
	Int *big.Int
}

// Symbol is a unique symbolic identifier with an optional description.
type Symbol struct {
	Description string
}

// Null is the explicit null marker.
type Null struct{}

// Undefined is the absence-of-value marker. It is distinct from an absent
// array slot.
type Undefined struct{}

// Func is a callable. An empty Name renders as anonymous.
type Func struct {
	Name string
}

// Date is a point in time.
type Date struct {
	Time time.Time
}

// Host is an opaque host-environment object identified by its display name.
// Native optionally carries the underlying object for element detection.
type Host struct {
	Name   string
	Native any
}

func (String) kind() Kind    { return KindString }
func (Number) kind() Kind    { return KindNumber }
func (Bool) kind() Kind      { return KindBool }
func (BigInt) kind() Kind    { return KindBigInt }
func (Symbol) kind() Kind    { return KindSymbol }
func (Null) kind() Kind      { return KindNull }
func (Undefined) kind() Kind { return KindUndefined }
func (Func) kind() Kind      { return KindFunc }
func (Date) kind() Kind      { return KindDate }
func (*Array) kind() Kind    { return KindArray }
func (*Object) kind() Kind   { return KindObject }
func (Host) kind() Kind      { return KindHost }

// NewBigInt returns a BigInt holding x.
func NewBigInt(x int64) BigInt {
	return BigInt{Int: big.NewInt(x)}
}

func (s String) String() string { return string(s) }

// String formats n the way a script host prints numbers: NaN, Infinity,
// integers without a fraction, and exponent notation outside [1e-6, 1e21).
func (n Number) String() string {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		digits := strings.TrimLeft(exp[1:], "0")
		return mant + "e" + exp[:1] + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

func (b BigInt) String() string {
	if b.Int == nil {
		return "0"
	}
	return b.Int.String()
}

func (s Symbol) String() string { return "Symbol(" + s.Description + ")" }

func (Null) String() string { return "null" }

func (Undefined) String() string { return "undefined" }

// dateLayout matches the default date string of a script host.
const dateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

func (d Date) String() string { return d.Time.Format(dateLayout) }

// Array is an indexed aggregate whose slots may be absent. Arrays are
// compared by identity. A nil *Array reads as an empty array.
type Array struct {
	slots []Value
}

// NewArray returns an array holding vals. A nil entry is an absent slot.
func NewArray(vals ...Value) *Array {
	return &Array{slots: slices.Clone(vals)}
}

// Len returns the number of slots, absent ones included.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.slots)
}

// At returns the value in slot i and whether the slot is occupied.
func (a *Array) At(i int) (Value, bool) {
	if a == nil || i < 0 || i >= len(a.slots) || a.slots[i] == nil {
		return nil, false
	}
	return a.slots[i], true
}

// Set stores v in slot i, growing the array with absent slots as needed.
// Storing nil makes the slot absent.
func (a *Array) Set(i int, v Value) {
	if i < 0 {
		return
	}
	if i >= len(a.slots) {
		a.SetLen(i + 1)
	}
	a.slots[i] = v
}

// Delete makes slot i absent without changing the length.
func (a *Array) Delete(i int) {
	if a != nil && i >= 0 && i < len(a.slots) {
		a.slots[i] = nil
	}
}

// Append adds vals after the last slot.
func (a *Array) Append(vals ...Value) {
	a.slots = append(a.slots, vals...)
}

// SetLen truncates the array or extends it with absent slots.
func (a *Array) SetLen(n int) {
	if n < 0 {
		n = 0
	}
	if n <= len(a.slots) {
		clear(a.slots[n:])
		a.slots = a.slots[:n]
		return
	}
	a.slots = append(a.slots, make([]Value, n-len(a.slots))...)
}

// Object is a keyed aggregate that enumerates keys in insertion order.
// Objects are compared by identity. A nil *Object reads as an empty object.
type Object struct {
	keys []string
	vals map[string]Value
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{vals: map[string]Value{}}
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return slices.Clone(o.keys)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.vals[key]
	return v, ok
}

// Set stores v under key. A key that already exists keeps its position.
// A nil v is stored as Undefined.
func (o *Object) Set(key string, v Value) *Object {
	if o.vals == nil {
		o.vals = map[string]Value{}
	}
	if v == nil {
		v = Undefined{}
	}
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
	return o
}

// Delete removes key.
func (o *Object) Delete(key string) {
	if o == nil {
		return
	}
	if _, ok := o.vals[key]; !ok {
		return
	}
	delete(o.vals, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
}

// aggregate is implemented by *Array and *Object.
type aggregate interface {
	Value
	Len() int
}

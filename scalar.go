package inspect

import (
	"fmt"
	"regexp"
)

// anonymous names a callable without a bound name.
const anonymous = "(anonymous)"

// scalar renders a non-aggregate value as a single painted token.
func (e *engine) scalar(v Value) string {
	s := e.style
	switch v := v.(type) {
	case Func:
		name := v.Name
		if name == "" {
			name = anonymous
		}
		return s.Paint(ClassFunction, s.Glyph(GlyphFunction)+" "+s.Escape(name)+"()")
	case Date:
		return s.Paint(ClassDate, s.Escape(v.String()))
	case Null:
		return s.Paint(ClassNull, "null")
	case String:
		return s.Paint(ClassString, s.Quote(string(v)))
	case BigInt:
		return s.Paint(ClassNumber, s.Escape(v.String())+"n")
	case Bool:
		return s.Paint(ClassBoolean, v.String())
	case Number:
		return s.Paint(ClassNumber, v.String())
	case Undefined:
		return s.Paint(ClassUndefined, "undefined")
	case Symbol:
		return s.Paint(ClassSymbol, s.Escape(v.String()))
	case Host:
		if e.elements != nil {
			if markup, ok := e.elements(v); ok {
				return s.Escape(markup)
			}
		}
		return s.Paint(ClassObject, s.Escape(v.Name)+" {}")
	default:
		panic(fmt.Sprintf("inspect: %T is not a scalar value", v))
	}
}

var identifier = regexp.MustCompile(`(?i)^[a-z_$][a-z0-9_$]*$`)

// key renders a property key bare when it is a valid identifier and as a
// string token otherwise.
func (e *engine) key(k string) string {
	if identifier.MatchString(k) {
		return e.style.Escape(k)
	}
	return e.style.Paint(ClassString, e.style.Quote(k))
}

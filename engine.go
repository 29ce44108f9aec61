package inspect

import (
	"fmt"
	"strconv"
)

// indentStep is the indentation added for each level of nesting.
const indentStep = 2

// ref records the ordinal assigned to an aggregate and whether a later step
// of the same traversal reached it again.
type ref struct {
	ordinal  int
	circular bool
}

// tracker maps aggregate identity to its ref for one top-level render.
type tracker map[aggregate]*ref

func (t tracker) enter(a aggregate) *ref {
	r := &ref{ordinal: len(t) + 1}
	t[a] = r
	return r
}

// engine walks one value. It is created per top-level argument and never
// shared.
type engine struct {
	style    Style
	elements ElementFunc
	refs     tracker
}

func newEngine(s Style, elements ElementFunc) *engine {
	return &engine{style: s, elements: elements, refs: tracker{}}
}

// render returns the lines for v. prefix is the rendered property key
// ("key: ") when v is a property value.
func (e *engine) render(v Value, indent int, comma bool, prefix string) []Line {
	switch v := v.(type) {
	case *Array:
		return e.array(v, indent, comma, prefix)
	case *Object:
		return e.object(v, indent, comma, prefix)
	default:
		return []Line{{Fragment: prefix + e.scalar(v), Indent: indent, Comma: comma}}
	}
}

// child renders a slot or property value, replacing aggregates already
// entered in this traversal by a circular marker.
func (e *engine) child(v Value, indent int, comma bool, prefix string) []Line {
	if a, ok := v.(aggregate); ok {
		if r, seen := e.refs[a]; seen {
			r.circular = true
			marker := e.style.Paint(ClassReference, "[Circular *"+strconv.Itoa(r.ordinal)+"]")
			return []Line{{Fragment: prefix + marker, Indent: indent, Comma: comma}}
		}
	}
	return e.render(v, indent, comma, prefix)
}

func (e *engine) array(a *Array, indent int, comma bool, prefix string) []Line {
	n := a.Len()
	if n == 0 {
		return []Line{{Fragment: prefix + "[]", Indent: indent, Comma: comma}}
	}
	r := e.refs.enter(a)
	var body []Line
	for i := 0; i < n; i++ {
		if run := holeRun(a, i); run > 0 {
			i += run
			body = append(body, Line{Fragment: e.empty(run), Indent: indent + indentStep, Comma: i < n})
			if i == n {
				break
			}
		}
		v, _ := a.At(i)
		body = append(body, e.child(v, indent+indentStep, i < n-1, "")...)
	}
	return e.enclose(r, body, "[", "]", indent, comma, prefix)
}

func (e *engine) object(o *Object, indent int, comma bool, prefix string) []Line {
	keys := o.Keys()
	if len(keys) == 0 {
		return []Line{{Fragment: prefix + "{}", Indent: indent, Comma: comma}}
	}
	r := e.refs.enter(o)
	var body []Line
	for i, k := range keys {
		v, _ := o.Get(k)
		body = append(body, e.child(v, indent+indentStep, i < len(keys)-1, e.key(k)+": ")...)
	}
	return e.enclose(r, body, "{", "}", indent, comma, prefix)
}

// enclose finishes an aggregate once its body is known: the opening line
// carries the reference annotation only if the descent found a way back.
func (e *engine) enclose(r *ref, body []Line, open, closing string, indent int, comma bool, prefix string) []Line {
	head := prefix
	if r.circular {
		head += e.style.Paint(ClassReference, e.style.Escape("<ref *"+strconv.Itoa(r.ordinal)+">")) + " "
	}
	lines := make([]Line, 0, len(body)+2)
	lines = append(lines, Line{Fragment: head + open, Indent: indent})
	lines = append(lines, body...)
	return append(lines, Line{Fragment: closing, Indent: indent, Comma: comma})
}

// holeRun returns the number of consecutive absent slots starting at i.
func holeRun(a *Array, i int) int {
	run := 0
	for ; i+run < a.Len(); run++ {
		if _, ok := a.At(i + run); ok {
			break
		}
	}
	return run
}

func (e *engine) empty(run int) string {
	return e.style.Paint(ClassEmpty, fmt.Sprintf("empty %s %d", e.style.Glyph(GlyphTimes), run))
}

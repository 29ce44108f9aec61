package inspect

import (
	"errors"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidDocument   = errors.New("invalid document")
	ErrUnsupportedStyle  = errors.New("unsupported style")
)

// ElementFunc reports whether a host object is a renderable UI element and,
// if so, returns its native markup. A nil ElementFunc means the host has no
// such capability.
type ElementFunc func(Host) (markup string, ok bool)

// NativeElements recognises host objects whose Native value has an
// OuterHTML method.
func NativeElements(h Host) (string, bool) {
	el, ok := h.Native.(interface{ OuterHTML() string })
	if !ok {
		return "", false
	}
	return el.OuterHTML(), true
}

// Inspector renders values with a style. The zero value renders HTML and
// never treats host objects as elements.
type Inspector struct {
	Style    Style
	Elements ElementFunc
}

// Default is the inspector used by the package-level functions.
var Default = &Inspector{Style: HTML{}, Elements: NativeElements}

func (in *Inspector) style() Style {
	if in == nil || in.Style == nil {
		return HTML{}
	}
	return in.Style
}

func (in *Inspector) elements() ElementFunc {
	if in == nil {
		return nil
	}
	return in.Elements
}

// Render returns the lines of v. A scalar yields exactly one line. Every call
// starts with an empty reference tracker.
func (in *Inspector) Render(v Value) []Line {
	if v == nil {
		v = Undefined{}
	}
	return newEngine(in.style(), in.elements()).render(v, 0, false, "")
}

// Inspect renders values as one document. Scalars render inline as single
// tokens, aggregates as their full run of lines; the parts are joined by the
// style's document container.
func (in *Inspector) Inspect(values ...Value) string {
	s := in.style()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = in.part(s, v)
	}
	return s.Document(parts)
}

func (in *Inspector) part(s Style, v Value) string {
	switch v.(type) {
	case *Array, *Object:
		var b strings.Builder
		for _, l := range newEngine(s, in.elements()).render(v, 0, false, "") {
			b.WriteString(s.Line(l))
		}
		return b.String()
	case nil:
		v = Undefined{}
	}
	return newEngine(s, in.elements()).scalar(v)
}

// Write renders values as one document and writes it to w.
func (in *Inspector) Write(w io.Writer, values ...Value) error {
	_, err := io.WriteString(w, in.Inspect(values...))
	return err
}

// Marshal renders values as one document and returns the bytes.
func (in *Inspector) Marshal(values ...Value) []byte {
	return []byte(in.Inspect(values...))
}

// Inspect renders values with [Default].
func Inspect(values ...Value) string {
	return Default.Inspect(values...)
}

// Render returns the lines of v rendered with [Default].
func Render(v Value) []Line {
	return Default.Render(v)
}

// Write renders values with [Default] and writes the document to w.
func Write(w io.Writer, values ...Value) error {
	return Default.Write(w, values...)
}

// Marshal renders values with [Default] and returns the bytes.
func Marshal(values ...Value) []byte {
	return Default.Marshal(values...)
}

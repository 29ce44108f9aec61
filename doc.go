// Package inspect renders runtime values as nested markup for visual
// inspection, in the spirit of a debugger's inspect view.
//
// The central entry points are [Inspect], [Write] and [Render]. Scalars render
// as a single token; arrays and objects render as one line per element or
// property, indented by nesting depth, with a separator after every line but
// the last in each body:
//
//	obj := inspect.NewObject().
//		Set("foo", inspect.String("bar")).
//		Set("needs-quotes", inspect.Bool(true))
//	fmt.Println(inspect.Inspect(obj))
//
// # Values
//
// [Value] is a closed set: [String], [Number], [Bool], [BigInt], [Symbol],
// [Null], [Undefined], [Func], [Date], [Host], [*Array] and [*Object].
// Arrays may be sparse: a slot can be absent, which is not the same as holding
// [Undefined]. Runs of absent slots render as a single "empty × N" line.
// Objects enumerate keys in insertion order.
//
// Use [Of] to convert ordinary Go values and [Decode] to read JSON, YAML or
// TOML documents.
//
// # Circular References
//
// Arrays and objects are tracked by identity during one render. The first
// time an aggregate is entered it receives the next ordinal. Reaching it again
// renders "[Circular *n]" in place, and if that happened while the aggregate
// was still being rendered its opening line is prefixed with "<ref *n>".
// Empty aggregates never receive an ordinal. Every argument of a call starts
// with a fresh tracker.
//
// # Styles
//
// A [Style] owns presentation: escaping, quoting, painting tokens and
// assembling lines. [HTML] emits spans and divs with escaped text; [Terminal]
// emits plain lines, optionally coloured and framed.
//
//	in := &inspect.Inspector{Style: inspect.Terminal{Color: true, Border: inspect.BorderRounded}}
//	in.Write(os.Stdout, value)
//
// # Errors
//
// Rendering never fails. Decoding and flag parsing export sentinel errors:
//
//   - [ErrUnsupportedFormat] — unknown document format
//   - [ErrInvalidDocument] — the document could not be decoded
//   - [ErrUnsupportedStyle] — unknown quote, space or border name
package inspect

package inspect

import (
	"fmt"
	"strings"
)

// Class names the kind of token being painted.
type Class string

const (
	ClassString    Class = "string"
	ClassNumber    Class = "number"
	ClassBoolean   Class = "boolean"
	ClassNull      Class = "null"
	ClassUndefined Class = "undefined"
	ClassSymbol    Class = "symbol"
	ClassFunction  Class = "function"
	ClassDate      Class = "date"
	ClassObject    Class = "object"
	ClassEmpty     Class = "empty"
	ClassReference Class = "reference"
)

// Glyph is a non-ASCII symbol whose spelling depends on the style.
type Glyph int

const (
	GlyphFunction Glyph = iota // ƒ
	GlyphTimes                 // ×
)

// Line is one rendered row: a fragment of painted tokens, its indentation
// depth and whether it carries a trailing separator.
type Line struct {
	Fragment string
	Indent   int
	Comma    bool
}

// Style owns every presentation decision the traversal engine defers:
// escaping, quoting, painting tokens, assembling lines and wrapping the
// whole document.
type Style interface {
	// Escape makes raw text safe to embed in a token.
	Escape(s string) string
	// Quote renders s as a quoted string literal, escaped.
	Quote(s string) string
	// Glyph spells g.
	Glyph(g Glyph) string
	// Paint decorates an already escaped token.
	Paint(c Class, token string) string
	// Line assembles one line of an aggregate rendering.
	Line(l Line) string
	// Document joins the rendering of each top-level argument.
	Document(parts []string) string
}

// QuoteMode selects the delimiter wrapped around string tokens.
type QuoteMode int

const (
	QuoteSingle QuoteMode = iota
	QuoteDouble
)

// SpaceMode selects how indentation is spelled in markup.
type SpaceMode int

const (
	SpaceLiteral SpaceMode = iota
	SpaceEntity
)

// ParseQuote parses "single" or "double".
func ParseQuote(s string) (QuoteMode, error) {
	switch s {
	case "single":
		return QuoteSingle, nil
	case "double":
		return QuoteDouble, nil
	}
	return 0, fmt.Errorf("%w: quote %q", ErrUnsupportedStyle, s)
}

// ParseSpace parses "literal" or "entity".
func ParseSpace(s string) (SpaceMode, error) {
	switch s {
	case "literal":
		return SpaceLiteral, nil
	case "entity":
		return SpaceEntity, nil
	}
	return 0, fmt.Errorf("%w: space %q", ErrUnsupportedStyle, s)
}

var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeMarkup replaces the reserved markup characters & < > " ' with their
// named entities. Each character is replaced once, so already produced
// entities are never touched by a second pass over the raw text.
func EscapeMarkup(s string) string {
	return markupEscaper.Replace(s)
}

// HTML renders tokens as spans and lines as divs. The zero value uses single
// quotes and literal spaces.
type HTML struct {
	QuoteMode QuoteMode
	SpaceMode SpaceMode
}

var _ Style = HTML{}

// Escape replaces reserved markup characters with named entities.
func (HTML) Escape(s string) string { return EscapeMarkup(s) }

// Quote escapes s and wraps it in the entity for the configured quote.
func (h HTML) Quote(s string) string {
	q := "&apos;"
	if h.QuoteMode == QuoteDouble {
		q = "&quot;"
	}
	return q + EscapeMarkup(s) + q
}

// Glyph returns the character reference for g.
func (HTML) Glyph(g Glyph) string {
	switch g {
	case GlyphFunction:
		return "&#402;"
	case GlyphTimes:
		return "&times;"
	}
	return ""
}

// Paint wraps token in a span carrying the class c.
func (HTML) Paint(c Class, token string) string {
	return `<span class="` + string(c) + `">` + token + "</span>"
}

// Line renders l as a div, indented with spaces or &nbsp; entities.
func (h HTML) Line(l Line) string {
	unit := " "
	if h.SpaceMode == SpaceEntity {
		unit = "&nbsp;"
	}
	var b strings.Builder
	b.WriteString("<div>")
	b.WriteString(strings.Repeat(unit, l.Indent))
	b.WriteString(l.Fragment)
	if l.Comma {
		b.WriteByte(',')
	}
	b.WriteString("</div>")
	return b.String()
}

// Document joins parts with a space inside an outer div.
func (HTML) Document(parts []string) string {
	return "<div>" + strings.Join(parts, " ") + "</div>"
}

package inspect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// BorderStyle controls the frame drawn around terminal output.
type BorderStyle int

const (
	BorderNone    BorderStyle = iota // No frame
	BorderRounded                    // ╭─╮╰╯│
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃
	BorderDouble                     // ╔═╗╚╝║
)

var borderNames = map[string]BorderStyle{
	"none":    BorderNone,
	"rounded": BorderRounded,
	"ascii":   BorderASCII,
	"heavy":   BorderHeavy,
	"double":  BorderDouble,
}

// ParseBorder parses a border name: none, rounded, ascii, heavy or double.
func ParseBorder(s string) (BorderStyle, error) {
	if b, ok := borderNames[s]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("%w: border %q", ErrUnsupportedStyle, s)
}

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
	},
}

var termColors = map[Class]*color.Color{
	ClassString:    color.New(color.FgGreen),
	ClassNumber:    color.New(color.FgYellow),
	ClassBoolean:   color.New(color.FgYellow),
	ClassNull:      color.New(color.Bold),
	ClassUndefined: color.New(color.FgHiBlack),
	ClassSymbol:    color.New(color.FgGreen),
	ClassFunction:  color.New(color.FgCyan),
	ClassDate:      color.New(color.FgMagenta),
	ClassObject:    color.New(color.FgCyan),
	ClassEmpty:     color.New(color.FgHiBlack),
	ClassReference: color.New(color.FgCyan),
}

func init() {
	// Terminal.Color decides, not the process-wide NO_COLOR detection.
	for _, c := range termColors {
		c.EnableColor()
	}
}

var ansiSequence = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Terminal renders plain text for a terminal: no markup escaping, one line
// per row, optional ANSI colour and an optional frame.
type Terminal struct {
	QuoteMode QuoteMode
	Color     bool
	Border    BorderStyle
}

var _ Style = Terminal{}

// Escape returns s unchanged.
func (Terminal) Escape(s string) string { return s }

// Quote escapes only the delimiter in use, backslashes and newlines.
func (t Terminal) Quote(s string) string {
	q := "'"
	if t.QuoteMode == QuoteDouble {
		q = `"`
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, q, `\`+q)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return q + s + q
}

// Glyph returns the literal character for g.
func (Terminal) Glyph(g Glyph) string {
	switch g {
	case GlyphFunction:
		return "ƒ"
	case GlyphTimes:
		return "×"
	}
	return ""
}

// Paint colours token by class when Color is set.
func (t Terminal) Paint(c Class, token string) string {
	if !t.Color {
		return token
	}
	if col, ok := termColors[c]; ok {
		return col.Sprint(token)
	}
	return token
}

// Line renders l as an indented row ending in a newline.
func (Terminal) Line(l Line) string {
	s := strings.Repeat(" ", l.Indent) + l.Fragment
	if l.Comma {
		s += ","
	}
	return s + "\n"
}

// Document concatenates parts, ends the text with a newline and draws the
// border, if any.
func (t Terminal) Document(parts []string) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 && !strings.HasSuffix(parts[i-1], "\n") {
			b.WriteByte(' ')
		}
		b.WriteString(p)
	}
	out := b.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if t.Border == BorderNone {
		return out
	}
	return frame(out, borderSets[t.Border])
}

// frame draws bc around text. Widths are measured without colour codes.
func frame(text string, bc borderChars) string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	widths := make([]int, len(lines))
	maxWidth := 0
	for i, line := range lines {
		widths[i] = runewidth.StringWidth(ansiSequence.ReplaceAllString(line, ""))
		maxWidth = max(maxWidth, widths[i])
	}
	rule := strings.Repeat(bc.horizontal, maxWidth+2)
	var b strings.Builder
	b.WriteString(bc.topLeft + rule + bc.topRight + "\n")
	for i, line := range lines {
		b.WriteString(bc.vertical + " " + line + strings.Repeat(" ", maxWidth-widths[i]) + " " + bc.vertical + "\n")
	}
	b.WriteString(bc.bottomLeft + rule + bc.bottomRight + "\n")
	return b.String()
}

package annotator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
)

// Injected attribute names. AttrAt is the primary identifying attribute:
// its presence marks an element as already annotated.
const (
	AttrAt        = "data-at"
	AttrIs        = "data-is"
	AttrIn        = "data-in"
	AttrFilepath  = "data-filepath"
	AttrLine      = "data-line"
	AttrClickable = "data-clickable"
)

// Names lists every attribute the annotator may inject
var Names = []string{AttrClickable, AttrLine, AttrFilepath, AttrIn, AttrIs, AttrAt}

// Attribute represents a name/value pair placed on an opening tag
type Attribute struct {
	Name  string
	Value string
}

// JSX renders the attribute with a leading space, ready to follow a tag name
func (a Attribute) JSX() string {
	return " " + a.Name + "=" + quote(a.Value)
}

// quote renders value as a JSX attribute literal. JSX strings have no escapes
// and decode HTML entities, so values with both quote kinds, '&' or
// non-printable characters use an expression container.
func quote(value string) string {
	switch {
	case strings.Contains(value, "&") || strings.IndexFunc(value, nonPrintable) != -1:
		return "{" + jsString(value) + "}"
	case !strings.Contains(value, `"`):
		return `"` + value + `"`
	case !strings.Contains(value, "'"):
		return "'" + value + "'"
	}
	return "{" + jsString(value) + "}"
}

func nonPrintable(r rune) bool {
	return !unicode.IsPrint(r)
}

// jsString renders value as a double quoted JavaScript string literal.
// value must be valid UTF-8.
func jsString(value string) string {
	builder := &strings.Builder{}
	builder.WriteByte('"')
	for _, r := range value {
		switch r {
		case '"':
			builder.WriteString(`\"`)
		case '\\':
			builder.WriteString(`\\`)
		case '\n':
			builder.WriteString(`\n`)
		case '\r':
			builder.WriteString(`\r`)
		case '\t':
			builder.WriteString(`\t`)
		default:
			switch {
			case unicode.IsPrint(r):
				builder.WriteRune(r)
			case r > 0xFFFF:
				high, low := utf16.EncodeRune(r)
				fmt.Fprintf(builder, `\u%04X\u%04X`, high, low)
			default:
				fmt.Fprintf(builder, `\u%04X`, r)
			}
		}
	}
	builder.WriteByte('"')
	return builder.String()
}

func render(attributes []Attribute) string {
	builder := &strings.Builder{}
	for _, attribute := range attributes {
		builder.WriteString(attribute.JSX())
	}
	return builder.String()
}

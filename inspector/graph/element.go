package graph

import "strconv"

// Span represents the line range a node occupies in the original source
type Span struct {
	StartLine int `yaml:"startLine"` // 1-based
	EndLine   int `yaml:"endLine"`   // 1-based, inclusive
	Column    int `yaml:"column"`    // 0-based column of the first character
}

// LineToken returns "N" for a single line span, "N-M" otherwise
func (s Span) LineToken() string {
	if s.StartLine == s.EndLine {
		return strconv.Itoa(s.StartLine)
	}
	return strconv.Itoa(s.StartLine) + "-" + strconv.Itoa(s.EndLine)
}

// Element represents a markup element with the metadata needed to locate it
type Element struct {
	Tag         string   // Own tag or component name
	Enclosing   string   // Enclosing component name, empty when none
	Span        *Span    // nil for synthetic nodes
	Attributes  []string // Attribute names present on the opening tag
	InsertAt    int      // Byte offset where new attributes are prepended
	SelfClosing bool     // Whether the element has no closing tag
}

// HasAttribute reports whether the opening tag already carries name
func (e *Element) HasAttribute(name string) bool {
	for _, candidate := range e.Attributes {
		if candidate == name {
			return true
		}
	}
	return false
}

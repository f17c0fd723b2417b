package annotator

import (
	"strconv"
	"strings"

	"github.com/viant/locator/inspector/graph"
)

// Record holds the metadata computed for one element during one pass
type Record struct {
	TagName                string
	EnclosingComponentName string // empty when no enclosing named scope exists
	Span                   graph.Span
	SourceUnitPath         string
	ShortSourceUnitName    string
	ClickableRequested     bool
}

// NewRecord builds the record of element within the unit at location
func NewRecord(element *graph.Element, location string, extended bool) *Record {
	return &Record{
		TagName:                element.Tag,
		EnclosingComponentName: element.Enclosing,
		Span:                   *element.Span,
		SourceUnitPath:         location,
		ShortSourceUnitName:    shortName(location),
		ClickableRequested:     extended,
	}
}

// LineToken returns the formatted line range
func (r *Record) LineToken() string {
	return r.Span.LineToken()
}

// At returns the data-at value: "<short name>:<line token>"
func (r *Record) At() string {
	return r.ShortSourceUnitName + ":" + r.LineToken()
}

// Attributes returns the injected attributes in serialized order.
// Each attribute is prepended in turn, so the last one prepended comes first.
func (r *Record) Attributes() []Attribute {
	var attributes []Attribute
	prepend := func(name, value string) {
		attributes = append([]Attribute{{Name: name, Value: value}}, attributes...)
	}
	prepend(AttrAt, r.At())
	prepend(AttrIs, r.TagName)
	if r.EnclosingComponentName != "" {
		prepend(AttrIn, r.EnclosingComponentName)
	}
	prepend(AttrFilepath, r.SourceUnitPath)
	prepend(AttrLine, strconv.Itoa(r.Span.StartLine))
	if r.ClickableRequested {
		prepend(AttrClickable, "true")
	}
	return attributes
}

func shortName(location string) string {
	if idx := strings.LastIndexAny(location, `/\`); idx != -1 {
		return location[idx+1:]
	}
	return location
}

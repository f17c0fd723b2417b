package jsx

import (
	"fmt"
	"strings"

	"github.com/viant/locator/inspector/graph"
)

// Emitter renders the element inventory of a file as text, one element per line:
//
//	App.jsx:12-18 <Card> in HomePage
//	App.jsx:14 <Avatar /> in HomePage
type Emitter struct{}

// Emit converts a graph.File to its inventory listing
func (e *Emitter) Emit(file *graph.File) ([]byte, error) {
	if file == nil {
		return nil, fmt.Errorf("file was nil")
	}
	builder := &strings.Builder{}
	for _, element := range file.Elements {
		location := "?"
		if element.Span != nil {
			location = element.Span.LineToken()
		}
		tag := "<" + element.Tag + ">"
		if element.SelfClosing {
			tag = "<" + element.Tag + " />"
		}
		builder.WriteString(fmt.Sprintf("%s:%s %s", file.Name, location, tag))
		if element.Enclosing != "" {
			builder.WriteString(" in ")
			builder.WriteString(element.Enclosing)
		}
		builder.WriteString("\n")
	}
	return []byte(builder.String()), nil
}

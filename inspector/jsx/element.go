package jsx

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/locator/inspector/graph"
)

// Elements returns the markup elements under root in document order.
// Fragments have no name and are not elements, their children are.
func Elements(root *sitter.Node, src []byte) []*graph.Element {
	var elements []*graph.Element
	walk(root, func(node *sitter.Node) {
		if element := newElement(node, src); element != nil {
			elements = append(elements, element)
		}
	})
	return elements
}

func walk(node *sitter.Node, visit func(node *sitter.Node)) {
	if node == nil || node.IsNull() {
		return
	}
	visit(node)
	for i := 0; i < int(node.NamedChildCount()); i++ {
		walk(node.NamedChild(i), visit)
	}
}

func newElement(node *sitter.Node, src []byte) *graph.Element {
	switch node.Type() {
	case "jsx_element", "jsx_self_closing_element":
	default:
		return nil
	}
	opening := openingTag(node)
	if opening == nil {
		return nil
	}
	nameNode := opening.ChildByFieldName("name")
	if nameNode == nil || nameNode.IsMissing() {
		return nil
	}
	element := &graph.Element{
		Tag:         ElementName(node, src),
		Enclosing:   EnclosingComponent(node, src),
		Attributes:  attributeNames(opening, src),
		InsertAt:    int(nameNode.EndByte()),
		SelfClosing: node.Type() == "jsx_self_closing_element",
	}
	if typeArguments := opening.ChildByFieldName("type_arguments"); typeArguments != nil {
		element.InsertAt = int(typeArguments.EndByte())
	}
	if span, ok := SpanOf(node, src); ok {
		element.Span = span
	}
	return element
}

func attributeNames(opening *sitter.Node, src []byte) []string {
	var names []string
	for i := 0; i < int(opening.NamedChildCount()); i++ {
		attribute := opening.NamedChild(i)
		if attribute.Type() != "jsx_attribute" || attribute.NamedChildCount() == 0 {
			continue
		}
		names = append(names, attribute.NamedChild(0).Content(src))
	}
	return names
}

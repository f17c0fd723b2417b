package htmldoc

import (
	"strings"

	"github.com/viant/locator/picker"
	"golang.org/x/net/html"
)

// Element is a picker.Element over an html element node
type Element struct {
	node *html.Node
}

// ID returns the id attribute
func (e *Element) ID() string {
	value, _ := attribute(e.node, "id")
	return value
}

// Tag returns the lower case tag name
func (e *Element) Tag() string {
	return e.node.Data
}

// Attribute returns the named attribute value
func (e *Element) Attribute(name string) (string, bool) {
	return attribute(e.node, name)
}

// SetAttribute adds or replaces an attribute
func (e *Element) SetAttribute(name, value string) {
	for i := range e.node.Attr {
		if e.node.Attr[i].Namespace == "" && e.node.Attr[i].Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttribute deletes an attribute
func (e *Element) RemoveAttribute(name string) {
	kept := e.node.Attr[:0]
	for _, attr := range e.node.Attr {
		if attr.Namespace == "" && attr.Key == name {
			continue
		}
		kept = append(kept, attr)
	}
	e.node.Attr = kept
}

func (e *Element) classes() []string {
	value, _ := attribute(e.node, "class")
	return strings.Fields(value)
}

// HasClass reports whether the class list contains name
func (e *Element) HasClass(name string) bool {
	for _, class := range e.classes() {
		if class == name {
			return true
		}
	}
	return false
}

// AddClass appends name to the class list
func (e *Element) AddClass(name string) {
	if e.HasClass(name) {
		return
	}
	e.SetAttribute("class", strings.Join(append(e.classes(), name), " "))
}

// RemoveClass drops name from the class list
func (e *Element) RemoveClass(name string) {
	var kept []string
	for _, class := range e.classes() {
		if class != name {
			kept = append(kept, class)
		}
	}
	if len(kept) == 0 {
		e.RemoveAttribute("class")
		return
	}
	e.SetAttribute("class", strings.Join(kept, " "))
}

// SetText replaces the element children with a text node
func (e *Element) SetText(text string) {
	for child := e.node.FirstChild; child != nil; child = e.node.FirstChild {
		e.node.RemoveChild(child)
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// AppendChild appends a detached element created by the same document
func (e *Element) AppendChild(child picker.Element) {
	element, ok := child.(*Element)
	if !ok || element.node.Parent != nil {
		return
	}
	e.node.AppendChild(element.node)
}

// Parent returns the parent element, nil at the document root
func (e *Element) Parent() picker.Element {
	parent := e.node.Parent
	if parent == nil || parent.Type != html.ElementNode {
		return nil
	}
	return &Element{node: parent}
}

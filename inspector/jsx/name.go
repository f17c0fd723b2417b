package jsx

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// ScopeKind enumerates the node kinds that bound a component scope
type ScopeKind int

const (
	ScopeNone ScopeKind = iota
	ScopeFunctionDeclaration
	ScopeFunctionExpression
	ScopeArrowFunction
	ScopeClassDeclaration
)

var scopeKinds = map[string]ScopeKind{
	"function_declaration":           ScopeFunctionDeclaration,
	"generator_function_declaration": ScopeFunctionDeclaration,
	"function_expression":            ScopeFunctionExpression,
	"function":                       ScopeFunctionExpression,
	"generator_function":             ScopeFunctionExpression,
	"arrow_function":                 ScopeArrowFunction,
	"class_declaration":              ScopeClassDeclaration,
	"abstract_class_declaration":     ScopeClassDeclaration,
}

// String returns the scope kind name
func (k ScopeKind) String() string {
	switch k {
	case ScopeFunctionDeclaration:
		return "function_declaration"
	case ScopeFunctionExpression:
		return "function_expression"
	case ScopeArrowFunction:
		return "arrow_function"
	case ScopeClassDeclaration:
		return "class_declaration"
	}
	return "none"
}

// declaresName reports whether the kind carries its own name.
// Function expression names are local to the expression and do not count.
func (k ScopeKind) declaresName() bool {
	return k == ScopeFunctionDeclaration || k == ScopeClassDeclaration
}

// Scope represents the nearest component scope enclosing a node
type Scope struct {
	Kind ScopeKind
	Name string // empty when the scope has no resolvable name
	Node *sitter.Node
}

// EnclosingScope walks ancestors of node up to the first scope-bearing node.
// A named declaration yields its name; otherwise the nearest enclosing
// variable declarator bound to a plain identifier names the scope.
func EnclosingScope(node *sitter.Node, src []byte) (*Scope, bool) {
	for parent := node.Parent(); parent != nil; parent = parent.Parent() {
		kind, ok := scopeKinds[parent.Type()]
		if !ok {
			continue
		}
		scope := &Scope{Kind: kind, Node: parent}
		if kind.declaresName() {
			if nameNode := parent.ChildByFieldName("name"); nameNode != nil {
				scope.Name = nameNode.Content(src)
				return scope, true
			}
		}
		scope.Name = bindingName(parent, src)
		return scope, true
	}
	return nil, false
}

// EnclosingComponent returns the enclosing component name or empty string
func EnclosingComponent(node *sitter.Node, src []byte) string {
	scope, ok := EnclosingScope(node, src)
	if !ok {
		return ""
	}
	return scope.Name
}

func bindingName(node *sitter.Node, src []byte) string {
	for parent := node.Parent(); parent != nil; parent = parent.Parent() {
		if parent.Type() != "variable_declarator" {
			continue
		}
		nameNode := parent.ChildByFieldName("name")
		if nameNode == nil || nameNode.Type() != "identifier" {
			return ""
		}
		return nameNode.Content(src)
	}
	return ""
}

// ElementName returns the tag or component name of a markup element.
// Qualified references (Namespace.Member) yield the trailing member.
func ElementName(element *sitter.Node, src []byte) string {
	opening := openingTag(element)
	if opening == nil {
		return ""
	}
	return tagName(opening.ChildByFieldName("name"), src)
}

func tagName(nameNode *sitter.Node, src []byte) string {
	if nameNode == nil {
		return ""
	}
	switch nameNode.Type() {
	case "member_expression":
		if property := nameNode.ChildByFieldName("property"); property != nil {
			return property.Content(src)
		}
	case "nested_identifier":
		if count := int(nameNode.NamedChildCount()); count > 0 {
			return nameNode.NamedChild(count - 1).Content(src)
		}
	}
	return nameNode.Content(src)
}

// openingTag returns the node holding the element name and attributes
func openingTag(element *sitter.Node) *sitter.Node {
	switch element.Type() {
	case "jsx_self_closing_element":
		return element
	case "jsx_element":
		if open := element.ChildByFieldName("open_tag"); open != nil {
			return open
		}
		for i := 0; i < int(element.NamedChildCount()); i++ {
			if child := element.NamedChild(i); child.Type() == "jsx_opening_element" {
				return child
			}
		}
	}
	return nil
}

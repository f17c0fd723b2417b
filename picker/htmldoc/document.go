// Package htmldoc hosts the picker runtime on a parsed HTML document.
package htmldoc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/locator/picker"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a picker.Document over an html.Node tree
type Document struct {
	root *html.Node
	head *html.Node
	body *html.Node
}

// Parse parses an HTML page
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	doc := &Document{root: root}
	doc.head = findNode(root, func(n *html.Node) bool { return n.DataAtom == atom.Head })
	doc.body = findNode(root, func(n *html.Node) bool { return n.DataAtom == atom.Body })
	return doc, nil
}

// Load downloads and parses the page at URL
func Load(ctx context.Context, URL string) (*Document, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", URL, err)
	}
	return Parse(bytes.NewReader(data))
}

// ElementByID returns the element with id, nil when absent
func (d *Document) ElementByID(id string) picker.Element {
	node := findNode(d.root, func(n *html.Node) bool {
		value, ok := attribute(n, "id")
		return ok && value == id
	})
	return wrap(node)
}

// FindAll returns every element matching predicate in document order
func (d *Document) FindAll(predicate func(element *Element) bool) []*Element {
	var result []*Element
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if element := (&Element{node: n}); predicate(element) {
				result = append(result, element)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(d.root)
	return result
}

// CreateElement creates a detached element
func (d *Document) CreateElement(tag string) picker.Element {
	tag = strings.ToLower(tag)
	return &Element{node: &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}}
}

// Head returns the head element
func (d *Document) Head() picker.Element {
	return wrap(d.head)
}

// Body returns the body element
func (d *Document) Body() picker.Element {
	return wrap(d.body)
}

// Render writes the document as HTML
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func wrap(node *html.Node) picker.Element {
	if node == nil {
		return nil
	}
	return &Element{node: node}
}

func findNode(node *html.Node, predicate func(n *html.Node) bool) *html.Node {
	if node == nil {
		return nil
	}
	if node.Type == html.ElementNode && predicate(node) {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findNode(child, predicate); found != nil {
			return found
		}
	}
	return nil
}

func attribute(node *html.Node, name string) (string, bool) {
	for _, attr := range node.Attr {
		if attr.Namespace == "" && attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

package jsx

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/locator/inspector/graph"
)

// SpanOf returns the line range of node in the original source.
// Synthetic nodes inserted by error recovery have no span.
// The grammar folds whitespace preceding a nested element into its first
// token, so the start is taken at the first non-whitespace byte.
func SpanOf(node *sitter.Node, src []byte) (*graph.Span, bool) {
	if node == nil || node.IsNull() || node.IsMissing() {
		return nil, false
	}
	start, end := node.StartPoint(), node.EndPoint()
	row, column := int(start.Row), int(start.Column)
	offset, limit := int(node.StartByte()), int(node.EndByte())
	if limit > len(src) {
		limit = len(src)
	}
	for ; offset < limit && isSpace(src[offset]); offset++ {
		if src[offset] == '\n' {
			row++
			column = 0
			continue
		}
		column++
	}
	if offset >= limit {
		return nil, false
	}
	return &graph.Span{
		StartLine: row + 1,
		EndLine:   int(end.Row) + 1,
		Column:    column,
	}, true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

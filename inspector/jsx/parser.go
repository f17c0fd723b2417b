package jsx

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Language identifies the grammar used to parse a source unit
type Language string

const (
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
	TSX        Language = "tsx"
)

// Extensions lists file extensions of source units that may carry markup
var Extensions = []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".mts", ".cts", ".tsx"}

// LanguageFor returns the grammar matching the filename extension
func LanguageFor(filename string) Language {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tsx":
		return TSX
	case ".ts", ".mts", ".cts":
		return TypeScript
	default:
		return JavaScript
	}
}

// IsSource reports whether filename has a markup-capable extension
func IsSource(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, candidate := range Extensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

func (l Language) grammar() *sitter.Language {
	switch l {
	case TSX:
		return tsx.GetLanguage()
	case TypeScript:
		return typescript.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

// Parse parses src with the grammar matching filename.
// A parser is created per call so Parse may run concurrently.
func Parse(ctx context.Context, src []byte, filename string) (*sitter.Tree, Language, error) {
	language := LanguageFor(filename)
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(language.grammar())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, language, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return tree, language, nil
}

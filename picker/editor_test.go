package picker_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/locator/picker"
)

func TestEditor_URI(t *testing.T) {
	tests := []struct {
		editor picker.Editor
		expect string
	}{
		{editor: picker.VSCode, expect: "vscode://file/%2Fa%2Fb.ext:12"},
		{editor: picker.IntelliJ, expect: "idea://open?file=%2Fa%2Fb.ext&line=12"},
		{editor: picker.Atom, expect: "atom://open?file=%2Fa%2Fb.ext&line=12"},
		{editor: picker.Sublime, expect: "subl://open?url=file://%2Fa%2Fb.ext&line=12"},
		{editor: picker.Cursor, expect: "cursor://file/%2Fa%2Fb.ext:12"},
		{editor: picker.Editor("emacs"), expect: "vscode://file/%2Fa%2Fb.ext:12"},
	}
	for _, tt := range tests {
		t.Run(string(tt.editor), func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.editor.URI("/a/b.ext", "12"))
		})
	}
}

func TestEditor_URIStripsQuotes(t *testing.T) {
	assert.Equal(t, "vscode://file/%2Fit%22s%2Fa%60.jsx:3", picker.VSCode.URI("/it\"s/a`.jsx", "3"))
	assert.Equal(t, "vscode://file/%2Fits%2Fa.jsx:3", picker.VSCode.URI("/it's/a.jsx", "3"))
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "a%20b%2Bc%26d%3De", picker.EncodeURIComponent("a b+c&d=e"))
	assert.Equal(t, "-_.!~*'()", picker.EncodeURIComponent("-_.!~*'()"))
	assert.Equal(t, "%C3%A9", picker.EncodeURIComponent("é"))
}

func TestParseEditor(t *testing.T) {
	editor, err := picker.ParseEditor(" IntelliJ ")
	assert.NoError(t, err)
	assert.Equal(t, picker.IntelliJ, editor)
	assert.Equal(t, "IntelliJ", editor.Label())

	_, err = picker.ParseEditor("notepad")
	assert.True(t, errors.Is(err, picker.ErrUnknownEditor))
}

package picker

import (
	"errors"
	"fmt"
	"strings"
)

// Editor identifies an external editor reachable through a URI scheme
type Editor string

const (
	VSCode   Editor = "vscode"
	IntelliJ Editor = "intellij"
	Atom     Editor = "atom"
	Sublime  Editor = "sublime"
	Cursor   Editor = "cursor"

	// DefaultEditor is used when no preference was stored
	DefaultEditor = VSCode
)

// Editors lists the supported editors in settings order
var Editors = []Editor{VSCode, IntelliJ, Atom, Sublime, Cursor}

// ErrUnknownEditor is returned for an unsupported editor identifier
var ErrUnknownEditor = errors.New("unknown editor")

// ParseEditor returns the editor named by value
func ParseEditor(value string) (Editor, error) {
	candidate := Editor(strings.ToLower(strings.TrimSpace(value)))
	for _, editor := range Editors {
		if editor == candidate {
			return editor, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEditor, value)
}

// Label returns the human readable editor name
func (e Editor) Label() string {
	switch e {
	case VSCode:
		return "VS Code"
	case IntelliJ:
		return "IntelliJ"
	case Atom:
		return "Atom"
	case Sublime:
		return "Sublime"
	case Cursor:
		return "Cursor"
	}
	return string(e)
}

// URI builds the editor link opening location at line.
// Unknown editors fall back to the VS Code scheme.
func (e Editor) URI(location, line string) string {
	encoded := EncodeURIComponent(location)
	var uri string
	switch e {
	case IntelliJ:
		uri = "idea://open?file=" + encoded + "&line=" + line
	case Atom:
		uri = "atom://open?file=" + encoded + "&line=" + line
	case Sublime:
		uri = "subl://open?url=file://" + encoded + "&line=" + line
	case Cursor:
		uri = "cursor://file/" + encoded + ":" + line
	default:
		uri = "vscode://file/" + encoded + ":" + line
	}
	return stripQuotes(uri)
}

func stripQuotes(uri string) string {
	return strings.NewReplacer(`'`, "", `"`, "", "`", "").Replace(uri)
}

const upperHex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes s leaving A-Z a-z 0-9 - _ . ! ~ * ' ( ) intact
func EncodeURIComponent(s string) string {
	builder := &strings.Builder{}
	builder.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			builder.WriteByte(c)
			continue
		}
		builder.WriteByte('%')
		builder.WriteByte(upperHex[c>>4])
		builder.WriteByte(upperHex[c&15])
	}
	return builder.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) != -1
}

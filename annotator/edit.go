package annotator

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidEdit is returned when an attribute insertion cannot be applied
var ErrInvalidEdit = errors.New("invalid edit")

// edit inserts text at a byte offset of the original source
type edit struct {
	offset int
	text   string
}

// apply inserts all edits into src, at most one per offset
func apply(src []byte, edits []edit) ([]byte, error) {
	sorted := make([]edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].offset < sorted[j].offset
	})

	size := len(src)
	for _, e := range sorted {
		size += len(e.text)
	}
	buffer := bytes.NewBuffer(make([]byte, 0, size))
	last := 0
	for i, e := range sorted {
		if e.offset < 0 || e.offset > len(src) {
			return nil, fmt.Errorf("%w: offset %d outside source of %d bytes", ErrInvalidEdit, e.offset, len(src))
		}
		if i > 0 && sorted[i-1].offset == e.offset {
			return nil, fmt.Errorf("%w: duplicate insertion at offset %d", ErrInvalidEdit, e.offset)
		}
		buffer.Write(src[last:e.offset])
		buffer.WriteString(e.text)
		last = e.offset
	}
	buffer.Write(src[last:])
	return buffer.Bytes(), nil
}

package span

import (
	"bytes"
	"unsafe"

	"github.com/rawbytedev/azspan/internal/common"
)

// Equal reports whether s and o have the same size and the same bytes.
func (s Span) Equal(o Span) bool {
	return bytes.Equal(s.data, o.data)
}

// EqualIgnoringCase is Equal with ASCII letters compared case-insensitively.
// Bytes outside ASCII must match exactly.
func (s Span) EqualIgnoringCase(o Span) bool {
	return common.EqualFoldASCII(s.data, o.data)
}

// Overlaps reports whether s and o are both non-empty and view at least one
// common byte address. The relation is symmetric.
func (s Span) Overlaps(o Span) bool {
	if s.IsEmpty() || o.IsEmpty() {
		return false
	}
	a := uintptr(unsafe.Pointer(unsafe.SliceData(s.data)))
	b := uintptr(unsafe.Pointer(unsafe.SliceData(o.data)))
	switch {
	case a == b:
		return true
	case a < b:
		return a+uintptr(len(s.data))-1 >= b
	default:
		return b+uintptr(len(o.data))-1 >= a
	}
}

// Package span provides Span, an immutable non-owning view over bytes that
// live in a buffer owned elsewhere.
//
// A Span never copies, allocates or frees the bytes it views. Slicing is
// total: out-of-range counts and indices clamp to the nearest boundary
// instead of failing. The only fallible operation is ToUint64.
//
// The caller must keep the viewed buffer alive and unmodified for as long
// as any Span over it is in use. Spans carry no synchronization; concurrent
// readers are safe only while no one writes to the underlying buffer.
package span

import (
	"unsafe"

	"github.com/rawbytedev/azspan/internal/common"
)

// Span is a read-only window [Begin, Begin+Size) into a byte buffer.
// The zero value is the empty span.
type Span struct {
	data []byte
}

// Empty returns the canonical zero-size span.
func Empty() Span { return Span{} }

// FromBytes views b. Pass arr[:] to view a fixed-size array.
func FromBytes(b []byte) Span {
	return Span{data: b}
}

// FromPointer views n bytes starting at p. A nil p or a non-positive n
// yields the empty span. p must point at n readable bytes.
func FromPointer(p *byte, n int) Span {
	if p == nil || n <= 0 {
		return Empty()
	}
	return Span{data: unsafe.Slice(p, n)}
}

// FromByte views the single byte at p.
func FromByte(p *byte) Span {
	return FromPointer(p, 1)
}

// FromCString views b up to, not including, its first NUL byte. The scan
// never reads past len(b); without a terminator the whole of b is viewed.
func FromCString(b []byte) Span {
	return Span{data: b[:common.CStrLen(b)]}
}

// FromString views the bytes backing s without copying.
func FromString[S ~string](s S) Span {
	if len(s) == 0 {
		return Empty()
	}
	return Span{data: unsafe.Slice(unsafe.StringData(string(s)), len(s))}
}

// IsEmpty reports whether the span has no bytes.
func (s Span) IsEmpty() bool { return len(s.data) == 0 }

// Size returns the number of bytes in view.
func (s Span) Size() int { return len(s.data) }

// Begin returns the address of the first viewed byte. It is nil for Empty()
// and otherwise unspecified for spans of size zero.
func (s Span) Begin() *byte { return unsafe.SliceData(s.data) }

// Bytes returns the viewed bytes. The result aliases the underlying buffer
// and must not be written; its capacity is clipped so append copies.
func (s Span) Bytes() []byte {
	return s.data[:len(s.data):len(s.data)]
}

// String returns a copy of the viewed bytes.
func (s Span) String() string { return string(s.data) }

// Take returns the first min(n, Size) bytes. The result starts where s does.
func (s Span) Take(n int) Span {
	if n >= len(s.data) {
		return s
	}
	if n < 0 {
		n = 0
	}
	return Span{data: s.data[:n]}
}

// Drop skips the first min(n, Size) bytes. Dropping everything returns
// Empty().
func (s Span) Drop(n int) Span {
	if n >= len(s.data) {
		return Empty()
	}
	if n < 0 {
		n = 0
	}
	return Span{data: s.data[n:]}
}

// Sub returns the bytes in [begin, end). end is clamped against Size first,
// then begin is dropped from that prefix, so Sub(b, e) == Take(e).Drop(b).
func (s Span) Sub(begin, end int) Span {
	return s.Take(end).Drop(begin)
}

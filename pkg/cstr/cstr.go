// Package cstr holds constant strings: typed string constants whose byte
// length is fixed when the program is compiled.
//
// Declare values with const so the compiler rejects anything that is not a
// constant expression:
//
//	const Bearer cstr.Literal = "Bearer "
//
// len(Bearer) is then itself a constant and can size arrays or appear in
// other constant expressions. There is no constructor taking runtime data.
// A conversion such as Literal(s) from a runtime string compiles but does not
// produce a constant string and is unsupported.
package cstr

import "unsafe"

// Literal is a constant string used for fixed tokens such as protocol
// keywords and header names.
type Literal string

// Len returns the byte length of l.
func (l Literal) Len() int { return len(l) }

// IsEmpty reports whether l has no bytes.
func (l Literal) IsEmpty() bool { return len(l) == 0 }

func (l Literal) String() string { return string(l) }

// Bytes returns the bytes of l without copying. They live in read-only
// memory and must not be written.
func (l Literal) Bytes() []byte {
	if len(l) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(string(l)), len(l))
}

package common

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// ToLower folds an ASCII upper-case letter to lower case.
// Every other byte, including non-ASCII, is returned unchanged.
func ToLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// EqualFoldASCII compares a and b treating ASCII letters case-insensitively.
func EqualFoldASCII(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if ToLower(a[i]) != ToLower(b[i]) {
			return false
		}
	}
	return true
}

// CStrLen returns the offset of the first NUL byte in b, or len(b) when
// there is none.
func CStrLen(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return len(b)
}

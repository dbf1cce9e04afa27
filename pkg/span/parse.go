package span

import (
	"errors"
	"fmt"
	"math"

	"github.com/rawbytedev/azspan/internal/common"
)

var (
	// ErrInvalidInput is the single error kind of ToUint64. Every parse
	// failure matches it with errors.Is.
	ErrInvalidInput = errors.New("span: invalid input")

	// ErrSyntax reports an empty span or a byte that is not an ASCII digit.
	ErrSyntax = fmt.Errorf("%w: not a decimal number", ErrInvalidInput)

	// ErrOverflow reports a value above math.MaxUint64.
	ErrOverflow = fmt.Errorf("%w: value out of uint64 range", ErrInvalidInput)
)

// ToUint64 parses s as an unsigned decimal integer. Only ASCII digits are
// accepted: no sign, whitespace or separators. Bytes are read left to right
// and the first failure met is returned with a zero value.
func (s Span) ToUint64() (uint64, error) {
	if s.IsEmpty() {
		return 0, ErrSyntax
	}
	var v uint64
	for _, c := range s.data {
		if !common.IsDigit(c) {
			return 0, ErrSyntax
		}
		d := uint64(c - '0')
		if v > (math.MaxUint64-d)/10 {
			return 0, ErrOverflow
		}
		v = v*10 + d
	}
	return v, nil
}

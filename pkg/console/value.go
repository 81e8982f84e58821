// Package console exchanges single program values with the outside world:
// one value per output instruction to a writer, one value per input
// instruction from an interactive prompt.
package console

import (
	"errors"
	"strconv"
	"unicode"
)

// MaxValue is the largest program value; the language speaks 7-bit ASCII.
const MaxValue = 127

// Value parse errors.
var (
	// ErrValueOutOfRange reports a numeric code outside [0, 127].
	ErrValueOutOfRange = errors.New("numeric value out of the ascii range 0 to 127")

	// ErrNotASCII reports a character input that is not 7-bit ASCII.
	ErrNotASCII = errors.New("not a valid ascii character")
)

// Value is one program value: a single 7-bit character round-tripping with
// one tape cell.
type Value byte

// Rune returns the value as a character.
func (v Value) Rune() rune {
	return rune(v)
}

// Byte returns the value as a cell byte.
func (v Value) Byte() byte {
	return byte(v)
}

// String renders the value quoted, the way the CLI displays output ('A').
func (v Value) String() string {
	return strconv.QuoteRune(rune(v))
}

// ValueForByte converts a tape cell to a Value. The second return is false
// when the cell holds no valid 7-bit character.
func ValueForByte(b byte) (Value, bool) {
	if b > MaxValue {
		return 0, false
	}
	return Value(b), true
}

// ParseValue interprets prompt input. Two forms are accepted: a decimal
// character code in [0, 127], or a character. Digits always read as a code,
// so '65' is 'A', never '6'. A multi-character ASCII entry yields its first
// character.
func ParseValue(s string) (Value, error) {
	if s == "" {
		return 0, ErrNotASCII
	}

	n, err := strconv.ParseUint(s, 10, 64)
	switch {
	case err == nil && n > MaxValue:
		return 0, ErrValueOutOfRange
	case err == nil:
		return Value(n), nil
	case errors.Is(err, strconv.ErrRange):
		// All digits, just too many of them.
		return 0, ErrValueOutOfRange
	}

	for _, r := range s {
		if r > unicode.MaxASCII {
			return 0, ErrNotASCII
		}
	}
	return Value(s[0]), nil
}

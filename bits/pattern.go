package bits

import (
	"errors"
	"strings"

	"github.com/ezrec/translatron/translate"
)

var f = translate.From

var (
	ErrPatternEmpty = errors.New(f("bit pattern empty"))
	ErrPatternWide  = errors.New(f("bit pattern wider than a word"))
	ErrPatternRange = errors.New(f("bit pattern outside the word"))
)

// ErrPatternDigit is returned for a bit pattern containing something other
// than '0' or '1'.
type ErrPatternDigit string

func (err ErrPatternDigit) Error() string {
	return f("'%v' is not a bit pattern", string(err))
}

// ParsePattern converts a literal bit string, most significant bit first,
// into its value.
func ParsePattern(pattern string) (value uint32, err error) {
	if len(pattern) == 0 {
		err = ErrPatternEmpty
		return
	}
	if len(pattern) > WORD_BITS {
		err = ErrPatternWide
		return
	}

	for _, c := range pattern {
		value <<= 1
		switch c {
		case '0':
		case '1':
			value |= 1
		default:
			err = ErrPatternDigit(pattern)
			value = 0
			return
		}
	}

	return
}

// FormatPattern renders the low width bits of value as a literal bit string.
func FormatPattern(value uint32, width int) string {
	var sb strings.Builder
	for n := width - 1; n >= 0; n-- {
		if (value>>n)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// SetPattern writes a literal bit string with its first digit at start.
func (w Word) SetPattern(start int, pattern string) (Word, error) {
	value, err := ParsePattern(pattern)
	if err != nil {
		return w, err
	}

	if !inWord(start, len(pattern)) {
		return w, ErrPatternRange
	}

	return w.SetField(start, value, len(pattern)), nil
}

// CheckPattern returns true if the bits starting at start match the literal
// bit string. Malformed patterns, and patterns running outside the word,
// never match.
func (w Word) CheckPattern(start int, pattern string) bool {
	value, err := ParsePattern(pattern)
	if err != nil || !inWord(start, len(pattern)) {
		return false
	}

	return w.Field(start, len(pattern)) == value
}

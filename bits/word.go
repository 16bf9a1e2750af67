// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package bits provides access to contiguous bit ranges of a 32-bit
// instruction word.
//
// Bits are numbered MSB-first: bit 31 is the most significant bit of the
// word, and a field is named by its most significant bit and its width.
// A field starting at bit 25 with width 5 spans bits 25 down to 21.
package bits

import (
	"fmt"
)

const (
	WORD_BITS = 32 // Bits in an instruction word.
)

// Word is a 32-bit instruction word.
type Word uint32

// inWord returns true if the bits [start, start-width+1] lie within a word.
func inWord(start, width int) bool {
	return width > 0 && start < WORD_BITS && start-width+1 >= 0
}

// mask returns a right-justified mask of width bits.
func mask(width int) uint32 {
	if width >= WORD_BITS {
		return 0xffffffff
	}
	return (uint32(1) << width) - 1
}

// SetField writes value, masked to width bits, with its most significant bit
// at start. Bits outside the range are preserved. A width of zero, or a range
// not entirely within the word, is a no-op.
//
// The value is not range checked; callers validate that it fits.
func (w Word) SetField(start int, value uint32, width int) Word {
	if !inWord(start, width) {
		return w
	}

	shift := start - width + 1
	m := mask(width) << shift

	return Word((uint32(w) &^ m) | ((value << shift) & m))
}

// Field returns the unsigned value of the bits [start, start-width+1], or
// zero if the range is not entirely within the word.
func (w Word) Field(start int, width int) uint32 {
	if !inWord(start, width) {
		return 0
	}

	shift := start - width + 1

	return (uint32(w) >> shift) & mask(width)
}

// String returns the word as a 32 digit binary literal.
func (w Word) String() string {
	return fmt.Sprintf("0b%032b", uint32(w))
}

// Field is a named bit range of a Word.
type Field struct {
	Name  string // Name of the field, ie 'rs'.
	Start int    // Most significant bit of the field.
	Width int    // Width of the field in bits.
}

// Low returns the least significant bit of the field.
func (fd Field) Low() int {
	return fd.Start - fd.Width + 1
}

// Max returns the largest value the field can hold.
func (fd Field) Max() uint32 {
	return mask(fd.Width)
}

// Mask returns the in-place mask of the field within a word.
func (fd Field) Mask() uint32 {
	if fd.Width <= 0 || fd.Low() < 0 {
		return 0
	}
	return mask(fd.Width) << fd.Low()
}

// Valid returns true if the field lies entirely within a word.
func (fd Field) Valid() bool {
	return inWord(fd.Start, fd.Width)
}

// Overlaps returns true if the two fields share any bit.
func (fd Field) Overlaps(other Field) bool {
	return fd.Mask()&other.Mask() != 0
}

// Get reads the field from a word.
func (fd Field) Get(w Word) uint32 {
	return w.Field(fd.Start, fd.Width)
}

// Set writes value to the field of a word.
func (fd Field) Set(w Word, value uint32) Word {
	return w.SetField(fd.Start, value, fd.Width)
}

// String returns the field name and bit range, ie 'rs[25:21]'.
func (fd Field) String() string {
	return fmt.Sprintf("%v[%d:%d]", fd.Name, fd.Start, fd.Low())
}

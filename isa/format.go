package isa

import (
	"slices"

	"github.com/ezrec/translatron/bits"
)

// Format is an instruction format class.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_R = Format(0) // R
	FORMAT_I = Format(1) // I
)

// Instruction word fields.
var (
	FIELD_OPCODE = bits.Field{Name: "opcode", Start: 31, Width: 6}
	FIELD_RS     = bits.Field{Name: "rs", Start: 25, Width: 5}
	FIELD_RT     = bits.Field{Name: "rt", Start: 20, Width: 5}
	FIELD_RD     = bits.Field{Name: "rd", Start: 15, Width: 5}
	FIELD_SHAMT  = bits.Field{Name: "shamt", Start: 10, Width: 5}
	FIELD_FUNCT  = bits.Field{Name: "funct", Start: 5, Width: 6}
	FIELD_IMM    = bits.Field{Name: "imm", Start: 15, Width: 16}
)

// formatLayout is the field layout of each format, most significant first.
var formatLayout = map[Format][]bits.Field{
	FORMAT_R: {FIELD_OPCODE, FIELD_RS, FIELD_RT, FIELD_RD, FIELD_SHAMT, FIELD_FUNCT},
	FORMAT_I: {FIELD_OPCODE, FIELD_RS, FIELD_RT, FIELD_IMM},
}

// Valid returns true for a known format.
func (ft Format) Valid() bool {
	_, ok := formatLayout[ft]
	return ok
}

// Layout returns the fields of the format, most significant first.
func (ft Format) Layout() []bits.Field {
	return slices.Clone(formatLayout[ft])
}

// Has returns true if the field is part of the format's layout.
func (ft Format) Has(field bits.Field) bool {
	return slices.Contains(formatLayout[ft], field)
}

// Opcode is the 6-bit primary opcode field value.
type Opcode uint8

// Funct is the 6-bit R-type function code field value.
type Funct uint8

// Signature is the decode key of an instruction. Funct is always zero for
// formats without a funct field.
type Signature struct {
	Opcode Opcode
	Funct  Funct
}

// String returns the signature as bit patterns, ie '000000/100100'.
func (sig Signature) String() string {
	str := bits.FormatPattern(uint32(sig.Opcode), FIELD_OPCODE.Width)
	if sig.Opcode == OPCODE_SPECIAL {
		str += "/" + bits.FormatPattern(uint32(sig.Funct), FIELD_FUNCT.Width)
	}
	return str
}

// SignatureOf returns the decode signature of a word.
func SignatureOf(word bits.Word) (sig Signature) {
	sig.Opcode = Opcode(FIELD_OPCODE.Get(word))
	if sig.Opcode == OPCODE_SPECIAL {
		sig.Funct = Funct(FIELD_FUNCT.Get(word))
	}
	return
}

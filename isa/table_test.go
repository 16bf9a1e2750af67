package isa

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/translatron/bits"
)

func TestMIPS(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(15, MIPS.Len())

	var mnemonics []string
	for desc := range MIPS.All() {
		mnemonics = append(mnemonics, desc.Mnemonic)
	}

	// R-type by funct, then I-type by opcode.
	assert.Equal([]string{
		"MFHI", "MFLO", "MULT", "DIV", "SUB", "AND", "OR", "SLT",
		"BEQ", "SLTI", "ANDI", "ORI", "LUI", "LW", "SW",
	}, mnemonics)
}

func TestMIPS_SignatureUnique(t *testing.T) {
	assert := assert.New(t)

	seen := map[Signature]string{}
	for desc := range MIPS.All() {
		sig := desc.Signature()
		other, dup := seen[sig]
		assert.False(dup, "%v and %v share %v", desc.Mnemonic, other, sig)
		seen[sig] = desc.Mnemonic
	}
	assert.Equal(MIPS.Len(), len(seen))
}

func TestFormat_Layout(t *testing.T) {
	assert := assert.New(t)

	for _, ft := range []Format{FORMAT_R, FORMAT_I} {
		assert.True(ft.Valid())

		// Fields tile the word exactly, most significant first.
		next := bits.WORD_BITS - 1
		var mask uint32
		for _, field := range ft.Layout() {
			assert.Equal(next, field.Start, "%v %v", ft, field)
			assert.Zero(mask&field.Mask(), "%v %v", ft, field)
			mask |= field.Mask()
			next = field.Low() - 1
		}
		assert.Equal(-1, next, ft.String())
		assert.Equal(uint32(0xffffffff), mask, ft.String())
	}

	assert.False(Format(2).Valid())
	assert.True(FORMAT_R.Has(FIELD_SHAMT))
	assert.False(FORMAT_I.Has(FIELD_RD))
}

func TestTable_Lookup(t *testing.T) {
	assert := assert.New(t)

	desc, ok := MIPS.Lookup("SLTI")
	assert.True(ok)
	assert.Equal(OPCODE_SLTI, desc.Opcode)
	assert.Equal(FORMAT_I, desc.Format)

	_, ok = MIPS.Lookup("slti")
	assert.False(ok)

	_, ok = MIPS.Lookup("ADD")
	assert.False(ok)
}

func TestTable_Match(t *testing.T) {
	assert := assert.New(t)

	for desc := range MIPS.All() {
		word := FIELD_OPCODE.Set(0, uint32(desc.Opcode))
		word = FIELD_FUNCT.Set(word, uint32(desc.Funct))
		match, ok := MIPS.Match(word)
		assert.True(ok, desc.Mnemonic)
		assert.Equal(desc.Mnemonic, match.Mnemonic)
	}

	// Unknown R-type funct.
	_, ok := MIPS.Match(FIELD_FUNCT.Set(0, 0b100000))
	assert.False(ok)

	// Unknown opcode.
	_, ok = MIPS.Match(FIELD_OPCODE.Set(0, 0b011111))
	assert.False(ok)

	// I-type rows ignore the low bits of the immediate.
	desc, ok := MIPS.Match(FIELD_OPCODE.Set(0xffff, uint32(OPCODE_ORI)))
	assert.True(ok)
	assert.Equal("ORI", desc.Mnemonic)
}

func TestTable_Format(t *testing.T) {
	assert := assert.New(t)

	rtype := slices.Collect(MIPS.Format(FORMAT_R))
	itype := slices.Collect(MIPS.Format(FORMAT_I))

	assert.Equal(8, len(rtype))
	assert.Equal(7, len(itype))
	for _, desc := range rtype {
		assert.Equal(OPCODE_SPECIAL, desc.Opcode, desc.Mnemonic)
	}
	for _, desc := range itype {
		assert.NotEqual(OPCODE_SPECIAL, desc.Opcode, desc.Mnemonic)
	}
}

func TestNewTable_Errors(t *testing.T) {
	assert := assert.New(t)

	gap := R("GAP", 0b000001, FIELD_RD)
	gap.Slots[2] = Slot{Type: OPERAND_REGISTER, Field: FIELD_RT}

	wide := I("WIDE", 0b000001, FIELD_IMM)
	wide.Slots[1] = Slot{Type: OPERAND_REGISTER, Field: FIELD_IMM}

	checks := []struct {
		rows []Descriptor
		err  error
	}{
		{[]Descriptor{R("", 0b000001)}, ErrMnemonicEmpty},
		{[]Descriptor{{Mnemonic: "BAD", Format: Format(7), Opcode: 1}}, ErrFormatInvalid},
		{[]Descriptor{I("BIG", 0b1000000, FIELD_RT)}, ErrOpcodeInvalid},
		{[]Descriptor{I("ZERO", OPCODE_SPECIAL, FIELD_RT)}, ErrOpcodeInvalid},
		{[]Descriptor{{Mnemonic: "ROP", Format: FORMAT_R, Opcode: 1}}, ErrOpcodeInvalid},
		{[]Descriptor{R("BIG", 0b1000000, FIELD_RD)}, ErrFunctInvalid},
		{[]Descriptor{{Mnemonic: "IFN", Format: FORMAT_I, Opcode: 1, Funct: 1}}, ErrFunctInvalid},
		{[]Descriptor{R("IMM", 0b000001, FIELD_IMM)}, ErrSlotType},
		{[]Descriptor{{Mnemonic: "TYP", Format: FORMAT_I, Opcode: 1, Slots: [MAX_OPERANDS]Slot{{Type: OperandType(5)}}}}, ErrSlotType},
		{[]Descriptor{wide}, ErrSlotType},
		{[]Descriptor{R("FN", 0b000001, FIELD_FUNCT)}, ErrSlotType},
		{[]Descriptor{I("RD", 0b000001, FIELD_RD)}, ErrSlotField},
		{[]Descriptor{R("SH", 0b000001, FIELD_SHAMT)}, ErrSlotField},
		{[]Descriptor{R("TWO", 0b000001, FIELD_RD, FIELD_RD)}, ErrSlotOverlap},
		{[]Descriptor{gap}, ErrSlotGap},
		{[]Descriptor{R("A", 0b000001), R("A", 0b000010)}, ErrMnemonicDuplicate},
		{[]Descriptor{R("A", 0b000001), R("B", 0b000001)}, ErrSignature{}},
		{[]Descriptor{I("A", 0b000001), I("B", 0b000001)}, ErrSignature{}},
	}

	for n, check := range checks {
		table, err := NewTable(check.rows...)
		assert.Nil(table, "check %d", n)
		assert.ErrorIs(err, check.err, "check %d", n)

		var desc ErrDescriptor
		assert.True(errors.As(err, &desc), "check %d", n)
	}
}

func TestNewTable_Duplicate(t *testing.T) {
	assert := assert.New(t)

	rows := slices.Clone(mipsRows)
	rows = append(rows, R("XOR", FUNCT_OR, FIELD_RD, FIELD_RS, FIELD_RT))

	_, err := NewTable(rows...)
	assert.Equal(ErrSignature(Signature{Opcode: OPCODE_SPECIAL, Funct: FUNCT_OR}), errors.Unwrap(err))
	assert.Panics(func() { MustNewTable(rows...) })

	// Rows are copied; the table is unaffected by later changes.
	rows = slices.Clone(mipsRows)
	table, err := NewTable(rows...)
	assert.NoError(err)
	rows[0].Mnemonic = "NAND"
	_, ok := table.Lookup("AND")
	assert.True(ok)
	_, ok = table.Lookup("NAND")
	assert.False(ok)
}

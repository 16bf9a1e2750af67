// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"fmt"
	"strings"

	"github.com/ezrec/translatron/bits"
)

// Descriptor is a single row of an instruction table.
type Descriptor struct {
	Mnemonic string             // Assembly mnemonic, ie 'AND'.
	Format   Format             // Format class.
	Opcode   Opcode             // Primary opcode.
	Funct    Funct              // Function code, R-type only.
	Slots    [MAX_OPERANDS]Slot // Operand slots, in assembly order.
}

// R returns an R-type row. Register slots are given as word fields, in
// assembly order.
func R(mnemonic string, funct Funct, fields ...bits.Field) Descriptor {
	desc := Descriptor{
		Mnemonic: mnemonic,
		Format:   FORMAT_R,
		Opcode:   OPCODE_SPECIAL,
		Funct:    funct,
	}
	for n, field := range fields {
		desc.Slots[n] = Slot{Type: OPERAND_REGISTER, Field: field}
	}
	return desc
}

// I returns an I-type row. Fields are given in assembly order; FIELD_IMM
// takes an immediate, all other fields take a register.
func I(mnemonic string, opcode Opcode, fields ...bits.Field) Descriptor {
	desc := Descriptor{
		Mnemonic: mnemonic,
		Format:   FORMAT_I,
		Opcode:   opcode,
	}
	for n, field := range fields {
		kind := OPERAND_REGISTER
		if field == FIELD_IMM {
			kind = OPERAND_IMMEDIATE
		}
		desc.Slots[n] = Slot{Type: kind, Field: field}
	}
	return desc
}

// Signature returns the decode signature of the row.
func (desc *Descriptor) Signature() (sig Signature) {
	sig.Opcode = desc.Opcode
	if desc.Format == FORMAT_R {
		sig.Funct = desc.Funct
	}
	return
}

// Arity returns the number of used operand slots.
func (desc *Descriptor) Arity() (n int) {
	for _, slot := range desc.Slots {
		if !slot.Unused() {
			n++
		}
	}
	return
}

// Encode packs an instruction into a word. Nothing is packed unless every
// operand passes validation; on failure the word is zero.
func (desc *Descriptor) Encode(inst Instruction) (word bits.Word, status Status) {
	if inst.Mnemonic != desc.Mnemonic {
		status = WRONG_COMMAND
		return
	}

	// All types first, then all ranges.
	var ok bool
	for n, slot := range desc.Slots {
		if status, ok = slot.checkType(inst.Operands[n]); !ok {
			return
		}
	}
	for n, slot := range desc.Slots {
		if status, ok = slot.checkRange(inst.Operands[n]); !ok {
			return
		}
	}

	word = FIELD_OPCODE.Set(word, uint32(desc.Opcode))
	if desc.Format == FORMAT_R {
		word = FIELD_SHAMT.Set(word, 0)
		word = FIELD_FUNCT.Set(word, uint32(desc.Funct))
	}

	for n, slot := range desc.Slots {
		if slot.Unused() {
			continue
		}
		word = slot.Field.Set(word, inst.Operands[n].Value)
	}

	status = COMPLETE_ENCODE

	return
}

// Match returns true if the word carries the row's signature.
func (desc *Descriptor) Match(word bits.Word) bool {
	if FIELD_OPCODE.Get(word) != uint32(desc.Opcode) {
		return false
	}
	if desc.Format == FORMAT_R && FIELD_FUNCT.Get(word) != uint32(desc.Funct) {
		return false
	}
	return true
}

// Decode unpacks a word into an instruction. On failure the instruction is
// the zero value.
func (desc *Descriptor) Decode(word bits.Word) (inst Instruction, status Status) {
	if !desc.Match(word) {
		status = WRONG_COMMAND
		return
	}

	inst.Mnemonic = desc.Mnemonic
	for n, slot := range desc.Slots {
		if slot.Unused() {
			continue
		}
		inst.Operands[n] = Operand{Type: slot.Type, Value: slot.Field.Get(word)}
	}

	status = COMPLETE_DECODE

	return
}

// String returns the row, ie 'AND R 000000/100100 rd,rs,rt'.
func (desc *Descriptor) String() string {
	var names []string
	for _, slot := range desc.Slots {
		if slot.Unused() {
			continue
		}
		names = append(names, slot.Field.Name)
	}

	return fmt.Sprintf("%v %v %v %v", desc.Mnemonic, desc.Format, desc.Signature(), strings.Join(names, ","))
}

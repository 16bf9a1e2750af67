package isa

import (
	"github.com/ezrec/translatron/bits"
)

const (
	REGISTER_BITS = 5  // Width of a register field.
	REGISTER_MAX  = 31 // Highest register index.
)

// Slot declares the expected operand type of an instruction parameter, and
// the word field it is packed into.
type Slot struct {
	Type  OperandType
	Field bits.Field
}

// Unused returns true if the slot takes no operand.
func (slot Slot) Unused() bool {
	return slot.Type == OPERAND_NONE
}

// Limit returns the largest value an operand in this slot may hold.
func (slot Slot) Limit() uint32 {
	if slot.Type == OPERAND_REGISTER {
		return REGISTER_MAX
	}
	return slot.Field.Max()
}

// checkType verifies the operand type. Unused slots accept any operand.
func (slot Slot) checkType(op Operand) (status Status, ok bool) {
	switch {
	case slot.Type == OPERAND_NONE:
		ok = true
	case op.Type == slot.Type:
		ok = true
	case slot.Type == OPERAND_REGISTER:
		status = MISSING_REG
	default:
		status = INVALID_PARAM
	}
	return
}

// checkRange verifies the operand value fits the slot. The operand type
// must already have been checked.
func (slot Slot) checkRange(op Operand) (status Status, ok bool) {
	switch {
	case slot.Type == OPERAND_NONE:
		ok = true
	case op.Value <= slot.Limit():
		ok = true
	case slot.Type == OPERAND_REGISTER:
		status = INVALID_REG
	default:
		status = INVALID_IMMED
	}
	return
}

// Validate checks a single operand against the slot. A mistyped operand is
// always reported as a type failure, whatever its value.
func (slot Slot) Validate(op Operand) (status Status, ok bool) {
	status, ok = slot.checkType(op)
	if !ok {
		return
	}

	return slot.checkRange(op)
}

package isa

import (
	"fmt"
	"strings"
)

const (
	MAX_OPERANDS = 3 // Operand slots of an instruction.
)

// OperandType is the type of an operand slot.
type OperandType int

//go:generate go tool stringer -linecomment -type=OperandType
const (
	OPERAND_NONE      = OperandType(0) // none
	OPERAND_REGISTER  = OperandType(1) // register
	OPERAND_IMMEDIATE = OperandType(2) // immediate
)

// Operand is a typed instruction parameter.
type Operand struct {
	Type  OperandType
	Value uint32
}

// Register returns a register operand.
func Register(index uint32) Operand {
	return Operand{Type: OPERAND_REGISTER, Value: index}
}

// Immediate returns an immediate operand.
func Immediate(value uint32) Operand {
	return Operand{Type: OPERAND_IMMEDIATE, Value: value}
}

// String returns the operand as '$n' for registers and '0x...' for immediates.
func (op Operand) String() string {
	switch op.Type {
	case OPERAND_REGISTER:
		return fmt.Sprintf("$%d", op.Value)
	case OPERAND_IMMEDIATE:
		return fmt.Sprintf("%#x", op.Value)
	default:
		return op.Type.String()
	}
}

// Instruction is a mnemonic and its operands, in assembly order.
// Unused slots are OPERAND_NONE.
type Instruction struct {
	Mnemonic string
	Operands [MAX_OPERANDS]Operand
}

// NewInstruction returns an instruction record. ok is false if there are
// more operands than slots.
func NewInstruction(mnemonic string, operands ...Operand) (inst Instruction, ok bool) {
	if len(operands) > MAX_OPERANDS {
		return
	}

	inst.Mnemonic = mnemonic
	copy(inst.Operands[:], operands)
	ok = true

	return
}

// Used returns the operands up to and including the last non-empty slot.
func (inst Instruction) Used() []Operand {
	n := MAX_OPERANDS
	for n > 0 && inst.Operands[n-1].Type == OPERAND_NONE {
		n--
	}
	return inst.Operands[:n]
}

// String is a debugging representation, ie 'AND $3, $1, $2'.
func (inst Instruction) String() string {
	var args []string
	for _, op := range inst.Used() {
		args = append(args, op.String())
	}

	if len(args) == 0 {
		return inst.Mnemonic
	}

	return inst.Mnemonic + " " + strings.Join(args, ", ")
}

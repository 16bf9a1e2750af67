// Package isa implements the instruction word codec for a MIPS style
// instruction set.
//
// An Instruction is a mnemonic plus up to three typed operands in assembly
// order. A Table of Descriptor rows maps each mnemonic to its format class,
// opcode, function code and operand slots; each slot names the word field
// its operand is packed into. The Codec dispatches encodes by mnemonic and
// decodes by opcode/funct signature, and reports every outcome as a Status.
//
// Tables are validated when built, so that two rows can never share a
// signature. Besides the built-in MIPS table, tables may be described in
// Starlark and loaded with LoadTable.
package isa

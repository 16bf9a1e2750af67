package isa

// Primary opcodes.
const (
	OPCODE_SPECIAL = Opcode(0b000000) // R-type, selected by funct.
	OPCODE_BEQ     = Opcode(0b000100)
	OPCODE_SLTI    = Opcode(0b001010)
	OPCODE_ANDI    = Opcode(0b001100)
	OPCODE_ORI     = Opcode(0b001101)
	OPCODE_LUI     = Opcode(0b001111)
	OPCODE_LW      = Opcode(0b100011)
	OPCODE_SW      = Opcode(0b101011)
)

// R-type function codes.
const (
	FUNCT_MFHI = Funct(0b010000)
	FUNCT_MFLO = Funct(0b010010)
	FUNCT_MULT = Funct(0b011000)
	FUNCT_DIV  = Funct(0b011010)
	FUNCT_SUB  = Funct(0b100010)
	FUNCT_AND  = Funct(0b100100)
	FUNCT_OR   = Funct(0b100101)
	FUNCT_SLT  = Funct(0b101010)
)

// mipsRows lists the supported instructions with their operands in
// assembly order.
var mipsRows = []Descriptor{
	R("AND", FUNCT_AND, FIELD_RD, FIELD_RS, FIELD_RT),
	R("OR", FUNCT_OR, FIELD_RD, FIELD_RS, FIELD_RT),
	R("SUB", FUNCT_SUB, FIELD_RD, FIELD_RS, FIELD_RT),
	R("SLT", FUNCT_SLT, FIELD_RD, FIELD_RS, FIELD_RT),
	R("MULT", FUNCT_MULT, FIELD_RS, FIELD_RT),
	R("DIV", FUNCT_DIV, FIELD_RS, FIELD_RT),
	R("MFHI", FUNCT_MFHI, FIELD_RD),
	R("MFLO", FUNCT_MFLO, FIELD_RD),

	I("ANDI", OPCODE_ANDI, FIELD_RT, FIELD_RS, FIELD_IMM),
	I("ORI", OPCODE_ORI, FIELD_RT, FIELD_RS, FIELD_IMM),
	I("SLTI", OPCODE_SLTI, FIELD_RT, FIELD_RS, FIELD_IMM),
	I("LUI", OPCODE_LUI, FIELD_RT, FIELD_IMM),
	I("LW", OPCODE_LW, FIELD_RT, FIELD_RS, FIELD_IMM),   // lw rt, imm(rs)
	I("SW", OPCODE_SW, FIELD_RT, FIELD_RS, FIELD_IMM),   // sw rt, imm(rs)
	I("BEQ", OPCODE_BEQ, FIELD_RS, FIELD_RT, FIELD_IMM), // beq rs, rt, imm
}

// MIPS is the built-in instruction table.
var MIPS = MustNewTable(mipsRows...)

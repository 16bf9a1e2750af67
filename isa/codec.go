// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"github.com/sirupsen/logrus"

	"github.com/ezrec/translatron/bits"
)

// Codec translates between instructions and words using a table.
//
// A Codec holds no per-call state, and may be shared between goroutines.
type Codec struct {
	Verbose bool               // If set, logs every encode and decode.
	Table   *Table             // Instruction table; MIPS if nil.
	Logger  logrus.FieldLogger // Verbose log destination; logrus standard logger if nil.
}

// NewCodec returns a codec for the built-in MIPS table.
func NewCodec() *Codec {
	return &Codec{Table: MIPS}
}

var defaultCodec = NewCodec()

// Encode encodes an instruction with the built-in MIPS table.
func Encode(mnemonic string, operands ...Operand) (bits.Word, Status) {
	return defaultCodec.Encode(mnemonic, operands...)
}

// Decode decodes a word with the built-in MIPS table.
func Decode(word bits.Word) (Instruction, Status) {
	return defaultCodec.Decode(word)
}

func (codec *Codec) table() *Table {
	if codec.Table == nil {
		return MIPS
	}
	return codec.Table
}

func (codec *Codec) trace(fields logrus.Fields, msg string) {
	if !codec.Verbose {
		return
	}

	logger := codec.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	logger.WithFields(fields).Debug(msg)
}

// Encode encodes a mnemonic and its operands, in assembly order.
func (codec *Codec) Encode(mnemonic string, operands ...Operand) (word bits.Word, status Status) {
	inst, ok := NewInstruction(mnemonic, operands...)

	switch _, known := codec.table().Lookup(mnemonic); {
	case !known:
		status = WRONG_COMMAND
	case !ok:
		status = INVALID_PARAM
	default:
		return codec.EncodeInstruction(inst)
	}

	codec.trace(logrus.Fields{
		"mnemonic": mnemonic,
		"operands": len(operands),
		"status":   status,
	}, "encode")

	return
}

// EncodeInstruction encodes an instruction record.
func (codec *Codec) EncodeInstruction(inst Instruction) (word bits.Word, status Status) {
	defer func() {
		codec.trace(logrus.Fields{
			"instruction": inst.String(),
			"word":        word.String(),
			"status":      status,
		}, "encode")
	}()

	desc, ok := codec.table().Lookup(inst.Mnemonic)
	if !ok {
		status = WRONG_COMMAND
		return
	}

	return desc.Encode(inst)
}

// Decode decodes a word into an instruction record.
func (codec *Codec) Decode(word bits.Word) (inst Instruction, status Status) {
	defer func() {
		codec.trace(logrus.Fields{
			"word":        word.String(),
			"signature":   SignatureOf(word).String(),
			"instruction": inst.String(),
			"status":      status,
		}, "decode")
	}()

	desc, ok := codec.table().Match(word)
	if !ok {
		status = WRONG_COMMAND
		return
	}

	return desc.Decode(word)
}

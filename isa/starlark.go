package isa

import (
	_ "embed"

	"github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/translatron/bits"
)

// MIPSSource is the Starlark description of the built-in MIPS table.
//
//go:embed mips.star
var MIPSSource string

// operandField maps Starlark operand names to word fields.
var operandField = map[string]bits.Field{
	FIELD_RS.Name:  FIELD_RS,
	FIELD_RT.Name:  FIELD_RT,
	FIELD_RD.Name:  FIELD_RD,
	FIELD_IMM.Name: FIELD_IMM,
}

// formatName maps Starlark format names to formats.
var formatName = map[string]Format{
	FORMAT_R.String(): FORMAT_R,
	FORMAT_I.String(): FORMAT_I,
}

// Loader builds instruction tables from Starlark descriptions.
//
// A description calls the builtin
//
//	instruction(mnemonic, format, opcode, funct=None, operands=[])
//
// once per row. format is "R" or "I"; opcode and funct are bit pattern
// strings ("100100") or integers; operands are the field names "rs", "rt",
// "rd" and "imm" in assembly order.
type Loader struct {
	Verbose bool               // If set, logs every loaded row.
	Logger  logrus.FieldLogger // Log destination; logrus standard logger if nil.
}

// LoadTable loads a table from a Starlark description. src may be a string,
// []byte or io.Reader; if nil, filename is read.
func LoadTable(filename string, src any) (*Table, error) {
	return (&Loader{}).Load(filename, src)
}

func (ld *Loader) logger() logrus.FieldLogger {
	if ld.Logger == nil {
		return logrus.StandardLogger()
	}
	return ld.Logger
}

// starlarkBits converts a bit pattern string, integer or None to a value.
func starlarkBits(value starlark.Value) (out uint32, err error) {
	switch value := value.(type) {
	case starlark.NoneType:
		return
	case starlark.String:
		return bits.ParsePattern(string(value))
	case starlark.Int:
		u64, ok := value.Uint64()
		if !ok || u64 > 0xffffffff {
			err = ErrStarlarkValue(value.String())
			return
		}
		out = uint32(u64)
		return
	default:
		err = ErrStarlarkValue(value.String())
		return
	}
}

// row converts the arguments of one instruction() call.
func (ld *Loader) row(mnemonic, format string, opcode, funct starlark.Value, operands starlark.Iterable) (desc Descriptor, err error) {
	desc.Mnemonic = mnemonic

	ft, ok := formatName[format]
	if !ok {
		err = ErrFormatName(format)
		return
	}
	desc.Format = ft

	op, err := starlarkBits(opcode)
	if err != nil {
		return
	}
	if op > FIELD_OPCODE.Max() {
		err = ErrOpcodeInvalid
		return
	}
	desc.Opcode = Opcode(op)

	fn, err := starlarkBits(funct)
	if err != nil {
		return
	}
	if fn > FIELD_FUNCT.Max() {
		err = ErrFunctInvalid
		return
	}
	desc.Funct = Funct(fn)

	if operands == nil {
		return
	}

	iter := operands.Iterate()
	defer iter.Done()

	var value starlark.Value
	for n := 0; iter.Next(&value); n++ {
		name, ok := starlark.AsString(value)
		if !ok {
			err = ErrStarlarkValue(value.String())
			return
		}
		field, ok := operandField[name]
		if !ok {
			err = ErrOperandName(name)
			return
		}
		if n >= MAX_OPERANDS {
			err = ErrOperandCount
			return
		}
		kind := OPERAND_REGISTER
		if field == FIELD_IMM {
			kind = OPERAND_IMMEDIATE
		}
		desc.Slots[n] = Slot{Type: kind, Field: field}
	}

	return
}

// Load executes a Starlark description, and builds a table from the rows it
// declares.
func (ld *Loader) Load(filename string, src any) (table *Table, err error) {
	var rows []Descriptor

	instruction := func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var mnemonic, format string
		var opcode starlark.Value
		var funct starlark.Value = starlark.None
		var operands starlark.Iterable

		err := starlark.UnpackArgs(b.Name(), args, kwargs,
			"mnemonic", &mnemonic,
			"format", &format,
			"opcode", &opcode,
			"funct?", &funct,
			"operands?", &operands,
		)
		if err != nil {
			return nil, err
		}

		desc, err := ld.row(mnemonic, format, opcode, funct, operands)
		if err != nil {
			return nil, ErrDescriptor{Mnemonic: mnemonic, Err: err}
		}

		if ld.Verbose {
			ld.logger().WithFields(logrus.Fields{
				"file": filename,
				"row":  desc.String(),
			}).Debug("instruction")
		}

		rows = append(rows, desc)

		return starlark.None, nil
	}

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			ld.logger().WithField("file", filename).Info(msg)
		},
	}

	predeclared := starlark.StringDict{
		"instruction": starlark.NewBuiltin("instruction", instruction),
	}

	opts := syntax.FileOptions{}
	_, err = starlark.ExecFileOptions(&opts, thread, filename, src, predeclared)
	if err != nil {
		return
	}

	return NewTable(rows...)
}

package isa

import (
	"errors"

	"github.com/ezrec/translatron/translate"
)

var f = translate.From

var (
	// Encode/decode errors
	ErrWrongCommand     = errors.New(f("wrong command"))
	ErrMissingRegister  = errors.New(f("register missing"))
	ErrInvalidRegister  = errors.New(f("register invalid"))
	ErrInvalidParam     = errors.New(f("parameter invalid"))
	ErrInvalidImmediate = errors.New(f("immediate out of range"))

	// Table errors
	ErrMnemonicEmpty     = errors.New(f("mnemonic empty"))
	ErrMnemonicDuplicate = errors.New(f("mnemonic duplicated"))
	ErrFormatInvalid     = errors.New(f("format invalid"))
	ErrOpcodeInvalid     = errors.New(f("opcode invalid"))
	ErrFunctInvalid      = errors.New(f("funct invalid"))
	ErrSlotType          = errors.New(f("slot type invalid"))
	ErrSlotField         = errors.New(f("slot field not in format"))
	ErrSlotOverlap       = errors.New(f("slot field reused"))
	ErrSlotGap           = errors.New(f("slot follows an unused slot"))

	// Starlark table errors
	ErrOperandCount = errors.New(f("too many operands"))
)

// ErrStatus is returned by Status.Err() for an unknown status value.
type ErrStatus Status

func (es ErrStatus) Error() string {
	return f("unknown status %v", Status(es).String())
}

// ErrSignature is a duplicated opcode/funct signature.
type ErrSignature Signature

func (es ErrSignature) Error() string {
	return f("signature %v duplicated", Signature(es).String())
}

func (es ErrSignature) Is(err error) (ok bool) {
	_, ok = err.(ErrSignature)
	return
}

// ErrDescriptor locates a table construction error.
type ErrDescriptor struct {
	Mnemonic string
	Err      error
}

func (err ErrDescriptor) Error() string {
	return f("instruction %v %v", err.Mnemonic, err.Err)
}

func (err ErrDescriptor) Unwrap() error {
	return err.Err
}

// ErrStarlarkValue is a Starlark value that is not a bit pattern or integer.
type ErrStarlarkValue string

func (err ErrStarlarkValue) Error() string {
	return f("%v is not a bit pattern or integer", string(err))
}

// ErrFormatName is an unknown format name.
type ErrFormatName string

func (err ErrFormatName) Error() string {
	return f("'%v' is not a format", string(err))
}

// ErrOperandName is an unknown operand field name.
type ErrOperandName string

func (err ErrOperandName) Error() string {
	return f("'%v' is not an operand field", string(err))
}

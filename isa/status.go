package isa

// Status is the outcome of a single encode or decode attempt.
type Status int

//go:generate go tool stringer -type=Status
const (
	COMPLETE_ENCODE = Status(iota + 1) // Word encoded.
	COMPLETE_DECODE                    // Instruction decoded.
	WRONG_COMMAND                      // Mnemonic or opcode/funct signature mismatch.
	MISSING_REG                        // Register operand absent or mistyped.
	INVALID_REG                        // Register index above 31.
	INVALID_PARAM                      // Non-register operand mistyped.
	INVALID_IMMED                      // Immediate wider than its field.
)

// statusErr maps the failure statuses to their errors.
var statusErr = map[Status]error{
	WRONG_COMMAND: ErrWrongCommand,
	MISSING_REG:   ErrMissingRegister,
	INVALID_REG:   ErrInvalidRegister,
	INVALID_PARAM: ErrInvalidParam,
	INVALID_IMMED: ErrInvalidImmediate,
}

// Ok returns true for the two completion statuses.
func (s Status) Ok() bool {
	return s == COMPLETE_ENCODE || s == COMPLETE_DECODE
}

// Err returns nil for a completion status, and the matching error otherwise.
func (s Status) Err() error {
	if s.Ok() {
		return nil
	}

	err, ok := statusErr[s]
	if !ok {
		return ErrStatus(s)
	}

	return err
}

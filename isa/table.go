package isa

import (
	"cmp"
	"iter"
	"slices"

	"github.com/ezrec/translatron/bits"
	"github.com/ezrec/translatron/internal"
)

// Table is an immutable set of instruction rows, keyed by mnemonic for
// encoding and by signature for decoding.
type Table struct {
	rows        []Descriptor
	byMnemonic  map[string]int
	bySignature map[Signature]int
}

// fixedFields can never hold an operand.
var fixedFields = []bits.Field{FIELD_OPCODE, FIELD_FUNCT, FIELD_SHAMT}

// check verifies a single row.
func (desc *Descriptor) check() (err error) {
	if len(desc.Mnemonic) == 0 {
		return ErrMnemonicEmpty
	}

	if !desc.Format.Valid() {
		return ErrFormatInvalid
	}

	if uint32(desc.Opcode) > FIELD_OPCODE.Max() {
		return ErrOpcodeInvalid
	}

	switch desc.Format {
	case FORMAT_R:
		if desc.Opcode != OPCODE_SPECIAL {
			return ErrOpcodeInvalid
		}
		if uint32(desc.Funct) > FIELD_FUNCT.Max() {
			return ErrFunctInvalid
		}
	default:
		if desc.Opcode == OPCODE_SPECIAL {
			return ErrOpcodeInvalid
		}
		if desc.Funct != 0 {
			return ErrFunctInvalid
		}
	}

	unused := false
	for n, slot := range desc.Slots {
		switch slot.Type {
		case OPERAND_NONE:
			unused = true
			continue
		case OPERAND_REGISTER:
			if slot.Field.Width != REGISTER_BITS {
				return ErrSlotType
			}
		case OPERAND_IMMEDIATE:
		default:
			return ErrSlotType
		}

		if unused {
			return ErrSlotGap
		}

		if !desc.Format.Has(slot.Field) || slices.Contains(fixedFields, slot.Field) {
			return ErrSlotField
		}

		for _, prior := range desc.Slots[:n] {
			if prior.Field.Overlaps(slot.Field) {
				return ErrSlotOverlap
			}
		}
	}

	return
}

// NewTable builds a table, rejecting malformed rows, duplicated mnemonics
// and duplicated signatures.
func NewTable(rows ...Descriptor) (table *Table, err error) {
	table = &Table{
		rows:        slices.Clone(rows),
		byMnemonic:  make(map[string]int, len(rows)),
		bySignature: make(map[Signature]int, len(rows)),
	}

	slices.SortStableFunc(table.rows, func(a, b Descriptor) int {
		return cmp.Or(
			cmp.Compare(a.Format, b.Format),
			cmp.Compare(a.Opcode, b.Opcode),
			cmp.Compare(a.Funct, b.Funct),
		)
	})

	for n := range table.rows {
		desc := &table.rows[n]

		err = desc.check()
		if err != nil {
			return nil, ErrDescriptor{Mnemonic: desc.Mnemonic, Err: err}
		}

		if _, dup := table.byMnemonic[desc.Mnemonic]; dup {
			return nil, ErrDescriptor{Mnemonic: desc.Mnemonic, Err: ErrMnemonicDuplicate}
		}

		sig := desc.Signature()
		if _, dup := table.bySignature[sig]; dup {
			return nil, ErrDescriptor{Mnemonic: desc.Mnemonic, Err: ErrSignature(sig)}
		}

		table.byMnemonic[desc.Mnemonic] = n
		table.bySignature[sig] = n
	}

	return
}

// MustNewTable is NewTable, panicking on a malformed table.
func MustNewTable(rows ...Descriptor) *Table {
	table, err := NewTable(rows...)
	if err != nil {
		panic(err)
	}
	return table
}

// Len returns the number of rows.
func (table *Table) Len() int {
	return len(table.rows)
}

// Lookup finds the row for a mnemonic. The match is case sensitive.
func (table *Table) Lookup(mnemonic string) (desc Descriptor, ok bool) {
	n, ok := table.byMnemonic[mnemonic]
	if ok {
		desc = table.rows[n]
	}
	return
}

// Match finds the row whose signature the word carries. A zero opcode
// selects among R-type rows by funct; any other opcode selects directly.
func (table *Table) Match(word bits.Word) (desc Descriptor, ok bool) {
	n, ok := table.bySignature[SignatureOf(word)]
	if ok {
		desc = table.rows[n]
	}
	return
}

// Format iterates over the rows of a single format, in signature order.
func (table *Table) Format(ft Format) iter.Seq[Descriptor] {
	return internal.SeqFilter(slices.Values(table.rows), func(desc Descriptor) bool {
		return desc.Format == ft
	})
}

// All iterates over every row: R-type first, then I-type.
func (table *Table) All() iter.Seq[Descriptor] {
	return internal.SeqConcat(table.Format(FORMAT_R), table.Format(FORMAT_I))
}

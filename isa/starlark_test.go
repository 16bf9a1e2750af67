package isa

import (
	"slices"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestLoadTable_MIPS(t *testing.T) {
	assert := assert.New(t)

	table, err := LoadTable("mips.star", MIPSSource)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal(slices.Collect(MIPS.All()), slices.Collect(table.All()))
}

func TestLoadTable_Extend(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		MIPSSource,
		`instruction("NOR", "R", 0, funct = 0x27, operands = ["rd", "rs", "rt"])`,
		`instruction("ADDI", format = "I", opcode = 0b001000, operands = ("rt", "rs", "imm"))`,
		`instruction("SYSCALL", "R", "000000", funct = "001100")`,
	}

	table, err := LoadTable("ext.star", strings.Join(program, "\n"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal(MIPS.Len()+3, table.Len())

	codec := &Codec{Table: table}

	word, status := codec.Encode("NOR", Register(1), Register(2), Register(3))
	assert.Equal(COMPLETE_ENCODE, status)
	assert.Equal(uint32(0x0043_0827), uint32(word))

	word, status = codec.Encode("SYSCALL")
	assert.Equal(COMPLETE_ENCODE, status)
	assert.Equal(uint32(0x0000_000c), uint32(word))

	inst, status := codec.Decode(0x2001_0005)
	assert.Equal(COMPLETE_DECODE, status)
	assert.Equal("ADDI $1, $0, 0x5", inst.String())
}

func TestLoadTable_Errors(t *testing.T) {
	assert := assert.New(t)

	checks := []struct {
		src string
		err error
	}{
		{`instruction("X", "R", "000000", funct = "100100", operands = ["rd"])` + "\n" +
			`instruction("Y", "R", "000000", funct = "100100", operands = ["rd"])`, ErrSignature{}},
		{`instruction("X", "I", "000000", operands = ["rt"])`, ErrOpcodeInvalid},
		{`instruction("X", "I", "0010", operands = ["rd"])`, ErrSlotField},
	}

	for n, check := range checks {
		table, err := LoadTable("bad.star", check.src)
		assert.Nil(table, "check %d", n)
		assert.ErrorIs(err, check.err, "check %d", n)
	}

	// Errors raised while executing the description.
	failures := []struct {
		src      string
		contains string
	}{
		{`instruction("X", "J", "000010")`, "'J' is not a format"},
		{`instruction("X", "I", "00201")`, "is not a bit pattern"},
		{`instruction("X", "I", "1000000")`, "opcode invalid"},
		{`instruction("X", "R", 0, funct = 64)`, "funct invalid"},
		{`instruction("X", "I", -1)`, "-1 is not a bit pattern or integer"},
		{`instruction("X", "I", 1.5)`, "1.5 is not a bit pattern or integer"},
		{`instruction("X", "I", "000100", operands = ["rs", "sp"])`, "'sp' is not an operand field"},
		{`instruction("X", "I", "000100", operands = ["rs", 3])`, "3 is not a bit pattern or integer"},
		{`instruction("X", "I", "000100", operands = ["rs", "rt", "imm", "rs"])`, "too many operands"},
		{`instruction("X")`, "missing argument"},
		{`instruction(`, "bad.star"},
	}

	for _, failure := range failures {
		table, err := LoadTable("bad.star", failure.src)
		assert.Nil(table, failure.src)
		assert.ErrorContains(err, failure.contains, failure.src)
	}
}

func TestLoader_Verbose(t *testing.T) {
	assert := assert.New(t)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	loader := &Loader{Logger: logger}

	src := `print("loading")` + "\n" + `instruction("LUI", "I", "001111", operands = ["rt", "imm"])`

	_, err := loader.Load("lui.star", src)
	assert.NoError(err)
	assert.Equal(1, len(hook.AllEntries()))
	assert.Equal("loading", hook.LastEntry().Message)
	assert.Equal(logrus.InfoLevel, hook.LastEntry().Level)

	hook.Reset()
	loader.Verbose = true

	_, err = loader.Load("lui.star", src)
	assert.NoError(err)
	assert.Equal(2, len(hook.AllEntries()))
	entry := hook.LastEntry()
	assert.Equal("instruction", entry.Message)
	assert.Equal("LUI I 001111 rt,imm", entry.Data["row"])
	assert.Equal("lui.star", entry.Data["file"])
}

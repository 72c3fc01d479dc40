package cpu

import (
	"strings"
)

// Opcode is a decoded instruction mnemonic.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_UNKNOWN = Opcode(0) // ?
	OP_CACHE   = Opcode(1) // CACHE
	OP_ADDI    = Opcode(2) // ADDI
	OP_ADD     = Opcode(3) // ADD
	OP_J       = Opcode(4) // J
	OP_HALT    = Opcode(5) // HALT
)

// opcodeMap maps upper-case mnemonics to opcodes.
var opcodeMap = map[string]Opcode{
	"CACHE": OP_CACHE,
	"ADDI":  OP_ADDI,
	"ADD":   OP_ADD,
	"J":     OP_J,
	"HALT":  OP_HALT,
}

// DecodeOpcode decodes a mnemonic, ignoring case. Unrecognized mnemonics
// decode to OP_UNKNOWN.
func DecodeOpcode(mnemonic string) Opcode {
	op, ok := opcodeMap[strings.ToUpper(strings.TrimSpace(mnemonic))]
	if !ok {
		return OP_UNKNOWN
	}

	return op
}

// Flow is the program counter action that follows an executed instruction.
type Flow int

const (
	FLOW_ADVANCE = Flow(0) // Continue with the next instruction.
	FLOW_JUMP    = Flow(1) // Continue at an absolute target.
	FLOW_HALT    = Flow(2) // Stop; the PC stays on the halting instruction.
)

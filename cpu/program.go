package cpu

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// Instruction is one line of program text. The opcode is decoded when
// the program is parsed; operands are kept as text until executed.
type Instruction struct {
	LineNo int      // Source line number.
	Words  []string // Trimmed comma separated tokens, mnemonic first.
	Opcode Opcode   // Decoded mnemonic.
}

// NewInstruction splits and decodes a single line of program text.
func NewInstruction(line string) (inst Instruction) {
	words := strings.Split(strings.TrimSpace(line), ",")
	for n, word := range words {
		words[n] = strings.TrimSpace(word)
	}

	inst = Instruction{
		Words:  words,
		Opcode: DecodeOpcode(words[0]),
	}

	return
}

// Operand returns the n'th operand (zero based) after the mnemonic.
func (inst *Instruction) Operand(n int) (word string, err error) {
	if n+1 >= len(inst.Words) {
		err = ErrOperandMissing
		return
	}

	word = inst.Words[n+1]
	return
}

// String returns the instruction as it would appear in program text.
func (inst Instruction) String() string {
	return strings.Join(inst.Words, ",")
}

// Program is an ordered list of instructions, indexed by PC.
type Program struct {
	Instructions []Instruction
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.Instructions)
}

// Fetch returns the instruction at pc, if pc is in range.
func (prog *Program) Fetch(pc int) (inst *Instruction, ok bool) {
	if pc < 0 || pc >= prog.Len() {
		return
	}

	return &prog.Instructions[pc], true
}

// All iterates the instructions with their PC.
func (prog *Program) All() iter.Seq2[int, Instruction] {
	return func(yield func(pc int, inst Instruction) bool) {
		for pc := range prog.Len() {
			if !yield(pc, prog.Instructions[pc]) {
				return
			}
		}
	}
}

// Parse reads program text, one instruction per line. Blank lines are
// skipped and do not occupy a PC slot.
func Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int

	prog = &Program{}
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if len(strings.TrimSpace(text)) == 0 {
			continue
		}

		inst := NewInstruction(text)
		inst.LineNo = lineno
		prog.Instructions = append(prog.Instructions, inst)
	}

	err = scanner.Err()
	if err != nil {
		err = ErrSyntax{LineNo: lineno + 1, Err: err}
		prog = nil
		return
	}

	return
}

// ParseLines builds a program from already split lines.
func ParseLines(lines ...string) (prog *Program) {
	prog, _ = Parse(strings.NewReader(strings.Join(lines, "\n")))
	return
}

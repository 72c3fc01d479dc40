// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"strconv"

	"github.com/ezrec/bussim/cache"
	"github.com/ezrec/bussim/memory"
)

const (
	REGISTER_COUNT = 32 // Number of general purpose registers.
)

// regMap maps register names to register file indexes.
var regMap = func() map[string]int {
	regs := make(map[string]int, REGISTER_COUNT)
	for n := range REGISTER_COUNT {
		regs[RegisterName(n)] = n
	}
	return regs
}()

// RegisterName returns the name of the n'th register.
func RegisterName(n int) string {
	return "R" + strconv.Itoa(n)
}

// Cpu is the simulation context for the processing unit.
type Cpu struct {
	Verbose bool // Set to enable the execution trace.

	Memory  *memory.Bus    // Reference to the memory store.
	Cache   *cache.Control // Reference to the cache configuration.
	Program *Program       // Currently loaded program.

	Register [REGISTER_COUNT]int64 // Register bank.
	Pc       int                   // Index of the next instruction.
	Running  bool                  // Cleared by HALT.

	Ticks   int // Executed instruction counter.
	Unknown int // Unknown opcodes skipped.
}

// NewCpu creates a running CPU attached to a memory bus and cache control.
func NewCpu(bus *memory.Bus, cc *cache.Control) (cpu *Cpu) {
	cpu = &Cpu{
		Memory:  bus,
		Cache:   cc,
		Program: &Program{},
		Running: true,
	}

	return
}

// Load replaces the program. Registers and the PC are untouched.
func (cpu *Cpu) Load(prog *Program) {
	cpu.Program = prog
}

// Reset the CPU state.
// - Clears the registers.
// - Rewinds the PC to the first instruction.
// - Zeros statistics counters.
// - Sets the CPU running.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Pc = 0
	cpu.Running = true
	cpu.Ticks = 0
	cpu.Unknown = 0
}

// Halted returns true if no further instruction will execute.
func (cpu *Cpu) Halted() bool {
	_, ok := cpu.Program.Fetch(cpu.Pc)
	return !cpu.Running || !ok
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for n, val := range cpu.Register {
			if !yield(RegisterName(n), strconv.FormatInt(val, 10)) {
				return
			}
		}
		defines := [](struct{ key, value string }){
			{"PC", strconv.Itoa(cpu.Pc)},
			{"RUNNING", strconv.FormatBool(cpu.Running)},
			{"TICKS", strconv.Itoa(cpu.Ticks)},
			{"REGISTER_COUNT", strconv.Itoa(REGISTER_COUNT)},
		}
		for _, def := range defines {
			if !yield(def.key, def.value) {
				return
			}
		}
	}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 7s: %v\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 7s: %v\n", "running", cpu.Running)
	for n, val := range cpu.Register {
		if val == 0 {
			continue
		}
		text += fmt.Sprintf("% 7s: %v\n", RegisterName(n), val)
	}

	return
}

// Tick executes a single fetch-decode-execute cycle. Returns done, and
// executes nothing, when the CPU has halted or the PC is out of range.
func (cpu *Cpu) Tick() (done bool, err error) {
	if !cpu.Running {
		done = true
		return
	}

	inst, ok := cpu.Program.Fetch(cpu.Pc)
	if !ok {
		done = true
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: pc=%d | executing: %v", cpu.Pc, inst)
	}

	flow, target, err := cpu.Execute(inst)
	if err != nil {
		return
	}

	switch flow {
	case FLOW_ADVANCE:
		cpu.Pc += 1
	case FLOW_JUMP:
		cpu.Pc = target
	case FLOW_HALT:
		cpu.Running = false
	}

	cpu.Ticks += 1

	return
}

// Run ticks until the CPU halts, runs off the program, or faults.
func (cpu *Cpu) Run() (err error) {
	if cpu.Verbose {
		log.Printf("cpu: starting execution")
	}

	for done := false; !done; {
		done, err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Execute executes a single decoded instruction, returning what the PC
// should do next. Execute never moves the PC itself.
func (cpu *Cpu) Execute(inst *Instruction) (flow Flow, target int, err error) {
	flow = FLOW_ADVANCE

	switch inst.Opcode {
	case OP_CACHE:
		var raw string
		raw, err = inst.Operand(0)
		if err == nil {
			err = cpu.Cache.Configure(raw)
		}
		if err != nil {
			err = errors.Join(ErrOpcodeCache, ErrOpcodeArg1, err)
			return
		}
	case OP_ADDI:
		var regs []int
		var imm int64
		regs, err = cpu.registerList(inst, 2)
		if err == nil {
			imm, err = cpu.integer(inst, 2)
		}
		if err != nil {
			err = errors.Join(ErrOpcodeAddi, err)
			return
		}
		input := cpu.Register[regs[1]]
		cpu.Register[regs[0]] = input + imm
		if cpu.Verbose {
			log.Printf("  -> %v = %d + %d = %d", RegisterName(regs[0]), input, imm, cpu.Register[regs[0]])
		}
	case OP_ADD:
		var regs []int
		regs, err = cpu.registerList(inst, 3)
		if err != nil {
			err = errors.Join(ErrOpcodeAdd, err)
			return
		}
		a, b := cpu.Register[regs[1]], cpu.Register[regs[2]]
		cpu.Register[regs[0]] = a + b
		if cpu.Verbose {
			log.Printf("  -> %v = %d + %d = %d", RegisterName(regs[0]), a, b, cpu.Register[regs[0]])
		}
	case OP_J:
		var value int64
		value, err = cpu.integer(inst, 0)
		if err != nil {
			err = errors.Join(ErrOpcodeJump, err)
			return
		}
		flow = FLOW_JUMP
		target = int(value)
		if cpu.Verbose {
			log.Printf("  -> jumping to instruction %d", target)
		}
	case OP_HALT:
		flow = FLOW_HALT
		if cpu.Verbose {
			log.Printf("  -> HALT received, stopping")
		}
	default:
		cpu.Unknown += 1
		log.Printf("cpu: pc=%d unknown instruction %q", cpu.Pc, inst.Words[0])
	}

	return
}

// register resolves the n'th operand as a register index.
func (cpu *Cpu) register(inst *Instruction, n int) (reg int, err error) {
	name, err := inst.Operand(n)
	if err != nil {
		err = errors.Join(errOpcodeArg[n], err)
		return
	}

	reg, ok := regMap[name]
	if !ok {
		err = errors.Join(errOpcodeArg[n], ErrRegister(name))
		return
	}

	return
}

// registerList resolves the first count operands as register indexes,
// in operand order.
func (cpu *Cpu) registerList(inst *Instruction, count int) (regs []int, err error) {
	regs = make([]int, count)
	for n := range count {
		regs[n], err = cpu.register(inst, n)
		if err != nil {
			regs = nil
			return
		}
	}

	return
}

// integer parses the n'th operand as a signed decimal integer.
func (cpu *Cpu) integer(inst *Instruction, n int) (value int64, err error) {
	word, err := inst.Operand(n)
	if err != nil {
		err = errors.Join(errOpcodeArg[n], err)
		return
	}

	value, err = strconv.ParseInt(word, 10, 64)
	if err != nil {
		err = errors.Join(errOpcodeArg[n], ErrParseNumber(word))
		return
	}

	return
}

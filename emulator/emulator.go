// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io"
	"iter"
	"log"
	"strconv"

	"github.com/ezrec/bussim/cache"
	"github.com/ezrec/bussim/cpu"
	"github.com/ezrec/bussim/internal"
	"github.com/ezrec/bussim/memory"
)

// Emulator state. CPU + memory bus + cache control.
type Emulator struct {
	Verbose  bool // If set, enables the execution trace.
	MaxTicks int  // If positive, the most instructions Run will execute.
	*cpu.Cpu      // Reference to the CPU simulation.

	Bus     memory.Bus    // Memory store.
	Control cache.Control // Cache configuration.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{}
	emu.Bus.Reset()
	emu.Cpu = cpu.NewCpu(&emu.Bus, &emu.Control)

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.Concat2(
		emu.Cpu.Defines(),
		emu.Control.Defines(),
		func(yield func(string, string) bool) {
			yield("MEMORY_CELLS", strconv.Itoa(emu.Bus.Len()))
		},
	)
}

// Load initializes memory from data, when present, then parses and
// loads the instruction text.
func (emu *Emulator) Load(instructions io.Reader, data io.Reader) (err error) {
	emu.Bus.Verbose = emu.Verbose

	if data != nil {
		err = emu.Bus.Initialize(data)
		if err != nil {
			return
		}
	}

	prog, err := cpu.Parse(instructions)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d instructions, %d memory cells", prog.Len(), emu.Bus.Len())
	}

	emu.Cpu.Load(prog)

	return
}

// Reset the CPU and cache state. Memory is kept.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Control.Reset()
}

// LineNo returns the source line number of the instruction at the PC.
func (emu *Emulator) LineNo() int {
	inst, ok := emu.Cpu.Program.Fetch(emu.Cpu.Pc)
	if !ok {
		return 0
	}

	return inst.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Control.Verbose = emu.Verbose

	lineno := emu.LineNo()
	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Pc: pc, Err: err}
		}
	}()

	if emu.MaxTicks > 0 && emu.Cpu.Ticks >= emu.MaxTicks && !emu.Cpu.Halted() {
		err = ErrTickLimit
		return
	}

	return emu.Cpu.Tick()
}

// Run ticks the emulator until done.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	if emu.Verbose {
		log.Printf("emulator: stopped after %d ticks", emu.Cpu.Ticks)
	}

	return
}

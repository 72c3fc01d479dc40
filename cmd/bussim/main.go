// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/bussim/emulator"
)

func main() {
	var instructions string
	var data string
	var quiet bool
	var ticks int
	var check string
	var dump bool

	flag.StringVar(&instructions, "i", "instruction_input.txt", "Instruction file")
	flag.StringVar(&data, "m", "", "Memory initialization file")
	flag.BoolVar(&quiet, "q", false, "Quiet mode, no execution trace")
	flag.IntVar(&ticks, "n", 0, "Maximum instructions to execute (0 is unlimited)")
	flag.StringVar(&check, "x", "", "Starlark check script to run after execution")
	flag.BoolVar(&dump, "dump", false, "Dump registers and memory after execution")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = !quiet
	emu.MaxTicks = ticks

	inf, err := os.Open(instructions)
	if err != nil {
		log.Fatalf("%v: %v", instructions, err)
	}
	defer inf.Close()

	var mem io.Reader
	if len(data) != 0 {
		memf, err := os.Open(data)
		if err != nil {
			log.Fatalf("%v: %v", data, err)
		}
		defer memf.Close()
		mem = memf
	}

	err = emu.Load(inf, mem)
	if err != nil {
		log.Fatalf("%v: %v", instructions, err)
	}

	emu.Reset()
	err = emu.Run()
	if err != nil {
		log.Fatalf("%v: %v", instructions, err)
	}

	if dump {
		fmt.Print(emu.Cpu.String())
		fmt.Print(emu.Bus.String())
	}

	if len(check) != 0 {
		script, err := os.Open(check)
		if err != nil {
			log.Fatalf("%v: %v", check, err)
		}
		defer script.Close()

		err = emu.Check(check, script)
		if err != nil {
			log.Fatalf("%v: %v", check, err)
		}
	}
}

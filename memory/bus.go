// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory implements the sparse word store behind the simulator's bus.
package memory

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log"
	"strconv"
	"strings"

	"github.com/ezrec/bussim/internal"
)

// Bus is a sparse, unbounded memory store. Addresses never written read
// as zero.
type Bus struct {
	Verbose bool // If set, logs each initialized cell.

	cells map[uint64]int64
}

// NewBus creates an empty memory bus.
func NewBus() (bus *Bus) {
	bus = &Bus{}
	bus.Reset()
	return
}

// Reset discards every cell.
func (bus *Bus) Reset() {
	if bus.cells == nil {
		bus.cells = make(map[uint64]int64)
	}
	clear(bus.cells)
}

// Read returns the value at address, or zero.
func (bus *Bus) Read(address uint64) int64 {
	return bus.cells[address]
}

// Write stores value at address.
func (bus *Bus) Write(address uint64, value int64) {
	if bus.cells == nil {
		bus.cells = make(map[uint64]int64)
	}
	bus.cells[address] = value
}

// Len returns the number of cells that have been written.
func (bus *Bus) Len() int {
	return len(bus.cells)
}

// Cells iterates the written cells in ascending address order.
func (bus *Bus) Cells() iter.Seq2[uint64, int64] {
	return internal.Sorted2(bus.cells)
}

// Assign parses a binary address and decimal value, and writes the cell.
func (bus *Bus) Assign(address string, value string) (err error) {
	address = strings.TrimSpace(address)
	value = strings.TrimSpace(value)

	addr, err := strconv.ParseUint(address, 2, 64)
	if err != nil {
		err = ErrAddressInvalid(address)
		return
	}

	val, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		err = ErrValueInvalid(value)
		return
	}

	bus.Write(addr, val)

	if bus.Verbose {
		log.Printf("memory: address %d (bin %v) set to %d", addr, address, val)
	}

	return
}

// Initialize loads ADDRESS,VALUE lines into the bus. Blank lines and
// lines without a comma are skipped. Later lines win over earlier ones
// for the same address.
func (bus *Bus) Initialize(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	if bus.Verbose {
		log.Printf("memory: initializing")
	}

	for scanner.Scan() {
		lineno += 1
		line = strings.TrimSpace(scanner.Text())

		if !strings.Contains(line, ",") {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			err = ErrAssignmentSyntax
			return
		}

		err = bus.Assign(fields[0], fields[1])
		if err != nil {
			return
		}
	}

	line = ""
	err = scanner.Err()

	return
}

// String dumps the written cells, one per line.
func (bus *Bus) String() (text string) {
	for addr, val := range bus.Cells() {
		text += fmt.Sprintf("%b: %d\n", addr, val)
	}

	return
}

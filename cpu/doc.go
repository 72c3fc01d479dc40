// Package cpu implements the execution engine for the bus simulator.
//
// The CPU consists of a program counter (PC), thirty-two signed
// general-purpose registers (R0-R31), and a running flag. Programs are
// lists of comma separated instructions; the mnemonic is decoded when the
// program is parsed, operands when the instruction executes.
//
// The instruction set is CACHE, ADDI, ADD, J and HALT. Any other mnemonic
// is logged and skipped.
package cpu

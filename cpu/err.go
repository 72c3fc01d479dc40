package cpu

import (
	"errors"

	"github.com/ezrec/bussim/translate"
)

var f = translate.From

var (
	// Instruction class errors
	ErrOpcodeCache = errors.New(f("cache"))
	ErrOpcodeAddi  = errors.New(f("addi"))
	ErrOpcodeAdd   = errors.New(f("add"))
	ErrOpcodeJump  = errors.New(f("j"))

	// Operand position errors
	ErrOpcodeArg1 = errors.New(f("arg1"))
	ErrOpcodeArg2 = errors.New(f("arg2"))
	ErrOpcodeArg3 = errors.New(f("arg3"))

	// Operand errors
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
)

var errOpcodeArg = [...]error{ErrOpcodeArg1, ErrOpcodeArg2, ErrOpcodeArg3}

type ErrRegister string

func (err ErrRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrRegister) Is(target error) bool {
	return target == ErrRegisterInvalid
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrSyntax locates an unreadable line of program text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

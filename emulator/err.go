package emulator

import (
	"errors"

	"github.com/ezrec/bussim/translate"
)

var f = translate.From

var (
	ErrTickLimit = errors.New(f("tick limit reached"))
	ErrCheck     = errors.New(f("check failed"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Pc     int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d pc %d %v", err.LineNo, err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

type ErrCheckAddress string

func (err ErrCheckAddress) Error() string {
	return f("mem(%v) is not a valid address", string(err))
}

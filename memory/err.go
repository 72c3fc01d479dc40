package memory

import (
	"errors"

	"github.com/ezrec/bussim/translate"
)

var f = translate.From

var (
	ErrAssignmentSyntax = errors.New(f("expected ADDRESS,VALUE"))
)

type ErrAddressInvalid string

func (err ErrAddressInvalid) Error() string {
	return f("'%v' is not a binary address", string(err))
}

type ErrValueInvalid string

func (err ErrValueInvalid) Error() string {
	return f("'%v' is not a decimal value", string(err))
}

// ErrSyntax locates a bad memory initialization line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("memory line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

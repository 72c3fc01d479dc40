package emulator

import (
	"errors"
	"io"
	"log"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// predeclared converts the emulator defines into Starlark values, and
// adds the mem(address) builtin.
func (emu *Emulator) predeclared() (pred starlark.StringDict) {
	pred = starlark.StringDict{}
	for key, str := range emu.Defines() {
		if value, err := strconv.ParseInt(str, 10, 64); err == nil {
			pred[key] = starlark.MakeInt64(value)
		} else if value, err := strconv.ParseBool(str); err == nil {
			pred[key] = starlark.Bool(value)
		} else {
			pred[key] = starlark.String(str)
		}
	}

	pred["mem"] = starlark.NewBuiltin("mem", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var address starlark.Int
		err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &address)
		if err != nil {
			return nil, err
		}
		addr, ok := address.Uint64()
		if !ok {
			return nil, ErrCheckAddress(address.String())
		}
		return starlark.MakeInt64(emu.Bus.Read(addr)), nil
	})

	return
}

// Check runs a Starlark script against the current machine state. The
// registers, PC, RUNNING, TICKS, CACHE and MEMORY_CELLS are predeclared,
// as is mem(address). The check fails if the script calls fail() or
// otherwise errors.
func (emu *Emulator) Check(name string, script io.Reader) (err error) {
	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", name, msg)
		},
	}
	opts := syntax.FileOptions{
		TopLevelControl: true,
		GlobalReassign:  true,
	}

	_, err = starlark.ExecFileOptions(&opts, thread, name, script, emu.predeclared())
	if err != nil {
		err = errors.Join(ErrCheck, err)
		return
	}

	return
}

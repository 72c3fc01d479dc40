package memory

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_ReadUnset(t *testing.T) {
	assert := assert.New(t)

	bus := NewBus()
	for _, addr := range []uint64{0, 1, 5, 0xffff_ffff, ^uint64(0)} {
		assert.Equal(int64(0), bus.Read(addr), "addr %d", addr)
	}
	assert.Equal(0, bus.Len())

	// Zero value bus is also usable.
	var zero Bus
	assert.Equal(int64(0), zero.Read(7))
	zero.Write(7, 70)
	assert.Equal(int64(70), zero.Read(7))
}

func TestBus_Write(t *testing.T) {
	assert := assert.New(t)

	bus := NewBus()
	bus.Write(3, -12)
	bus.Write(1<<40, 99)
	bus.Write(3, 4)

	assert.Equal(int64(4), bus.Read(3))
	assert.Equal(int64(99), bus.Read(1<<40))
	assert.Equal(2, bus.Len())

	bus.Reset()
	assert.Equal(0, bus.Len())
	assert.Equal(int64(0), bus.Read(3))
}

func TestBus_Initialize(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		input  string
		expect map[uint64]int64
	}){
		{"empty", "", map[uint64]int64{}},
		{"single", "101,42", map[uint64]int64{5: 42}},
		{"spaces", "  101 , -7  \n", map[uint64]int64{5: -7}},
		{"blank", "\n\n1,1\n\n", map[uint64]int64{1: 1}},
		{"no_comma", "101 42\n10,2\nnonsense", map[uint64]int64{2: 2}},
		{"last_wins", "11,1\n0,9\n11,2\n11,3", map[uint64]int64{3: 3, 0: 9}},
	}

	for _, entry := range table {
		bus := NewBus()
		err := bus.Initialize(strings.NewReader(entry.input))
		assert.NoError(err, entry.name)

		got := map[uint64]int64{}
		for addr, val := range bus.Cells() {
			got[addr] = val
		}
		assert.Equal(entry.expect, got, entry.name)
	}
}

func TestBus_Initialize_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		input  string
		lineno int
		err    error
	}){
		{"address", "1,1\n12,1", 2, ErrAddressInvalid("12")},
		{"negative", "-1,1", 1, ErrAddressInvalid("-1")},
		{"value", "1,x", 1, ErrValueInvalid("x")},
		{"empty_value", "1,", 1, ErrValueInvalid("")},
		{"extra", "1,2,3", 1, ErrAssignmentSyntax},
	}

	for _, entry := range table {
		bus := NewBus()
		err := bus.Initialize(strings.NewReader(entry.input))

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.name) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.name)
		}
		assert.ErrorIs(err, entry.err, entry.name)
	}
}

func TestBus_String(t *testing.T) {
	assert := assert.New(t)

	bus := NewBus()
	bus.Write(5, 50)
	bus.Write(1, 10)

	assert.Equal("1: 10\n101: 50\n", bus.String())
}

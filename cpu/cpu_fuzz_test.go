package cpu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/bussim/cache"
	"github.com/ezrec/bussim/memory"
)

func FuzzExecute(f *testing.F) {
	for op := range 6 {
		f.Add(uint8(op), uint8(1), uint8(2), uint8(3), int64(-7))
		f.Add(uint8(op), uint8(31), uint8(31), uint8(0), int64(1)<<40)
	}

	f.Fuzz(func(t *testing.T, op uint8, dst uint8, src1 uint8, src2 uint8, imm int64) {
		assert := assert.New(t)

		a := int(dst) % REGISTER_COUNT
		b := int(src1) % REGISTER_COUNT
		c := int(src2) % REGISTER_COUNT

		var line string
		switch op % 6 {
		case 0:
			line = fmt.Sprintf("ADDI,R%d,R%d,%d", a, b, imm)
		case 1:
			line = fmt.Sprintf("ADD,R%d,R%d,R%d", a, b, c)
		case 2:
			line = fmt.Sprintf("J,%d", imm)
		case 3:
			line = fmt.Sprintf("CACHE,%d", imm)
		case 4:
			line = "HALT"
		case 5:
			line = fmt.Sprintf("NOP,R%d", a)
		}

		cpu := NewCpu(memory.NewBus(), &cache.Control{})
		cpu.Load(ParseLines(line, "HALT"))
		for n := range cpu.Register {
			cpu.Register[n] = int64(n*0x1001 - 0x8000)
		}
		expect := cpu.Register

		done, err := cpu.Tick()
		assert.NoError(err, line)
		assert.False(done, line)
		assert.Equal(1, cpu.Ticks, line)

		switch op % 6 {
		case 0:
			expect[a] = expect[b] + imm
			assert.Equal(1, cpu.Pc, line)
		case 1:
			expect[a] = expect[b] + expect[c]
			assert.Equal(1, cpu.Pc, line)
		case 2:
			assert.Equal(int(imm), cpu.Pc, line)
		case 3:
			assert.Equal(imm != 0, cpu.Cache.IsEnabled(), line)
			assert.Equal(1, cpu.Pc, line)
		case 4:
			assert.False(cpu.Running, line)
			assert.Equal(0, cpu.Pc, line)
		case 5:
			assert.Equal(1, cpu.Unknown, line)
			assert.Equal(1, cpu.Pc, line)
		}

		assert.Equal(expect, cpu.Register, line)
	})
}

func FuzzTick(f *testing.F) {
	f.Add("ADDI,R1,R0,10")
	f.Add("ADD,R1,R2")
	f.Add("J,x")
	f.Add("CACHE,")
	f.Add(",,,")
	f.Add("halt,R1")

	f.Fuzz(func(t *testing.T, line string) {
		assert := assert.New(t)

		cpu := NewCpu(memory.NewBus(), &cache.Control{})
		cpu.Load(ParseLines(line))

		// Fatal faults are always one of the known operand classes.
		_, err := cpu.Tick()
		if err != nil {
			known := errors.Is(err, ErrOperandMissing) ||
				errors.Is(err, ErrRegisterInvalid) ||
				errors.As(err, new(ErrParseNumber)) ||
				errors.Is(err, cache.ErrCacheFlag)
			assert.True(known, "%q: %v", line, err)
			assert.Equal(0, cpu.Ticks, line)
		}
	})
}

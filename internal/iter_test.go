package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSorted2(t *testing.T) {
	assert := assert.New(t)

	m := map[uint64]int64{9: 90, 1: 10, 5: 50}

	var keys []uint64
	var values []int64
	for k, v := range Sorted2(m) {
		keys = append(keys, k)
		values = append(values, v)
	}

	assert.Equal([]uint64{1, 5, 9}, keys)
	assert.Equal([]int64{10, 50, 90}, values)
}

func TestConcat2(t *testing.T) {
	assert := assert.New(t)

	a := map[string]string{"A": "1"}
	b := map[string]string{"B": "2", "C": "3"}

	got := maps.Collect(Concat2(maps.All(a), maps.All(b)))
	assert.Equal(map[string]string{"A": "1", "B": "2", "C": "3"}, got)

	// Early stop.
	count := 0
	for range Concat2(Sorted2(a), Sorted2(b)) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(2, count)
}

// Package cache records the simulator's cache configuration.
//
// The flag has no effect on memory access or timing.
package cache

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"strconv"
	"strings"

	"github.com/ezrec/bussim/translate"
)

var f = translate.From

type ErrFlagInvalid string

func (err ErrFlagInvalid) Error() string {
	return f("cache flag '%v' is not an integer", string(err))
}

var ErrCacheFlag = errors.New(f("cache flag"))

// Control holds the cache enable flag.
type Control struct {
	Verbose bool // If set, logs every configuration change.

	enabled bool
}

// Configure sets the flag from integer text; any nonzero value enables
// the cache.
func (cc *Control) Configure(raw string) (err error) {
	raw = strings.TrimSpace(raw)

	value, err := strconv.Atoi(raw)
	if err != nil {
		err = errors.Join(ErrCacheFlag, ErrFlagInvalid(raw))
		return
	}

	cc.enabled = value != 0

	if cc.Verbose {
		if cc.enabled {
			log.Printf("cache: enabled")
		} else {
			log.Printf("cache: disabled")
		}
	}

	return
}

// IsEnabled reports the current flag.
func (cc *Control) IsEnabled() bool {
	return cc.enabled
}

// Reset disables the cache.
func (cc *Control) Reset() {
	cc.enabled = false
}

// Defines for the cache
func (cc *Control) Defines() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		value := 0
		if cc.enabled {
			value = 1
		}
		yield("CACHE", fmt.Sprintf("%d", value))
	}
}

package shuffle

import (
	"os"
	"time"
)

// zeroSeedReplacement stands in for a zero seed: a zero xorshift state is a
// fixed point and would never change.
const zeroSeedReplacement uint64 = 0xA5A5A5A55A5A5A5A

// RNG is a seeded xorshift64* generator. It holds a single word of state
// and is deterministic for a given seed and draw count.
type RNG struct {
	state uint64
}

// New returns a generator seeded with seed. A zero seed is remapped to a
// fixed non-zero constant.
func New(seed uint64) *RNG {
	if seed == 0 {
		seed = zeroSeedReplacement
	}
	return &RNG{state: seed}
}

// Next advances the state and returns the new value.
func (r *RNG) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// AutoSeed derives a seed for runs that did not ask for a specific one:
// wall-clock nanoseconds mixed with the process ID so that back-to-back
// runs from a script still diverge.
func AutoSeed() uint64 {
	nanos := uint64(time.Now().UnixNano())
	return nanos ^ uint64(os.Getpid())*0x9E3779B97F4A7C15
}

package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// TimeSeed returns a seed derived from the current wall clock, for callers
// that want independent randomness rather than reproducibility.
func TimeSeed() int64 {
	return time.Now().UnixNano()
}

// Derive returns a *rand.Rand for the given stream number, decorrelated from
// other streams built on the same seed. Parallel workers each take their own
// stream so that rounds stay independent without sharing a generator.
func Derive(seed int64, stream uint64) *rand.Rand {
	u := uint64(seed) + (stream+1)*goldenRatio64
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

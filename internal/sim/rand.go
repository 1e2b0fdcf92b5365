package sim

// Rand is the source of randomness consumed by the simulation. All random
// branching (segment-count draws, spawn positions, spin axes, glitch peaks)
// goes through this interface so tests can supply deterministic sequences.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
	// Intn returns a pseudo-random number in [0, n).
	Intn(n int) int
}

// indexHash maps a platform creation index to a uniform value in [0, 1).
// SplitMix64 finalizer; used for movement-enable decisions so the pattern
// stays stable no matter how many platforms a single tick generates.
func indexHash(i uint64) float64 {
	x := i + 0x9e3779b97f4a7c15
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return float64(x>>11) / float64(uint64(1)<<53)
}

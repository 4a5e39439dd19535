package vmath

// splitmix64 scrambles a user seed so that nearby seeds diverge quickly.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Rand is a tiny deterministic RNG (xorshift64*).
// Every procedural decision in the game draws from one of these so a seed
// reproduces a run exactly.
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	s := splitmix64(seed)
	if s == 0 {
		s = 1
	}
	return &Rand{s: s}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

// Intn returns a value in [0,n). n <= 0 yields 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

// Range returns an int in [min,max] inclusive.
func (r *Rand) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// Float64 returns a value in [0,1).
func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

// RangeF returns a value in [min,max).
func (r *Rand) RangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}

// BiRand returns a value in [-bound,bound).
func (r *Rand) BiRand(bound float64) float64 {
	return r.Float64()*2*bound - bound
}

// BiRandInt returns an int in [-bound,bound).
func (r *Rand) BiRandInt(bound int) int {
	return int(r.Float64()*float64(2*bound)) - bound
}

// BiRandVec draws each component independently from [-b,b).
func (r *Rand) BiRandVec(b Vec3) Vec3 {
	return Vec3{X: r.BiRand(b.X), Y: r.BiRand(b.Y), Z: r.BiRand(b.Z)}
}

func (r *Rand) Chance(p float64) bool {
	return r.Float64() < p
}

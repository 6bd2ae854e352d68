package ports

// RandomSource provides uniform random draws.
// Implementations decide on seeding; the domain never seeds.
type RandomSource interface {
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) int

	// Float64 returns a uniform float in [0.0, 1.0).
	Float64() float64
}

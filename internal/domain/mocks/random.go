package mocks

// RandomSource is a mock implementation of ports.RandomSource.
// It replays Ints and Floats in order, then falls back to Fallback and FallbackFloat.
type RandomSource struct {
	Ints          []int
	Floats        []float64
	Fallback      int
	FallbackFloat float64

	IntCalls   int
	FloatCalls int
}

// NewRandomSource creates a mock that replays the given integers.
func NewRandomSource(ints ...int) *RandomSource {
	return &RandomSource{Ints: ints}
}

// IntN returns the next scripted integer, reduced into [0, n).
func (m *RandomSource) IntN(n int) int {
	v := m.Fallback
	if m.IntCalls < len(m.Ints) {
		v = m.Ints[m.IntCalls]
	}
	m.IntCalls++
	if n <= 0 {
		return 0
	}
	if v < 0 {
		v = -v
	}
	return v % n
}

// Float64 returns the next scripted float.
func (m *RandomSource) Float64() float64 {
	v := m.FallbackFloat
	if m.FloatCalls < len(m.Floats) {
		v = m.Floats[m.FloatCalls]
	}
	m.FloatCalls++
	return v
}

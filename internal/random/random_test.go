package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestRandDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Uniform(-1, 1), b.Uniform(-1, 1), "draw %d", i)
	}
}

func TestRandSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)

	same := 0
	for i := 0; i < 100; i++ {
		if a.Uniform(-1, 1) == b.Uniform(-1, 1) {
			same++
		}
	}
	assert.Less(t, same, 100)
}

func TestRandUniformRange(t *testing.T) {
	tests := []struct {
		name      string
		low, high float32
	}{
		{"symmetric", -1, 1},
		{"positive", 2, 3},
		{"negative", -10, -5},
		{"narrow", 0, 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(7)
			for i := 0; i < 10000; i++ {
				v := r.Uniform(tt.low, tt.high)
				require.GreaterOrEqual(t, v, tt.low)
				require.Less(t, v, tt.high)
			}
		})
	}
}

// maxSource always returns the largest possible value, which makes the
// underlying float64 draw land as close to 1 as the generator allows.
type maxSource struct{}

func (maxSource) Uint64() uint64  { return ^uint64(0) }
func (maxSource) Seed(seed uint64) {}

func TestRandUniformExcludesHigh(t *testing.T) {
	r := FromSource(maxSource{})
	v := r.Uniform(-1, 1)
	assert.Less(t, v, float32(1))
	assert.Greater(t, v, float32(0.99))
}

func TestRandUniformEmptyRangePanics(t *testing.T) {
	r := New(0)
	assert.Panics(t, func() { r.Uniform(1, 1) })
	assert.Panics(t, func() { r.Uniform(1, -1) })
}

func TestFromSourceNilPanics(t *testing.T) {
	assert.Panics(t, func() { FromSource(nil) })
}

func TestFromSourceMatchesNew(t *testing.T) {
	a := New(99)
	b := FromSource(rand.NewSource(99))

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uniform(-1, 1), b.Uniform(-1, 1))
	}
}

func TestRandImplementsSource(t *testing.T) {
	var _ Source = New(0)
}

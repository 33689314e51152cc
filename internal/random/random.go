// Package random provides the randomness source consumed by randomized
// network construction.
package random

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source produces uniformly distributed values.
//
// Uniform returns a value in the half-open interval [low, high). Draws are
// sequential: a Source must not be shared by concurrent constructions.
type Source interface {
	Uniform(low, high float32) float32
}

// Rand is a seedable Source backed by a PCG generator.
type Rand struct {
	src rand.Source
}

// New returns a Rand seeded with seed. Two Rands created with the same seed
// produce the same sequence of draws.
func New(seed uint64) *Rand {
	return &Rand{src: rand.NewSource(seed)}
}

// FromSource wraps an existing generator.
func FromSource(src rand.Source) *Rand {
	if src == nil {
		panic("random.FromSource: nil source")
	}
	return &Rand{src: src}
}

// Uniform draws a value from [low, high).
func (r *Rand) Uniform(low, high float32) float32 {
	if !(low < high) {
		panic(fmt.Sprintf("Rand.Uniform: empty range [%v, %v)", low, high))
	}

	dist := distuv.Uniform{
		Min: float64(low),
		Max: float64(high),
		Src: r.src,
	}

	v := float32(dist.Rand())
	// Narrowing to float32 can round a draw just below high up to high.
	if v >= high {
		v = math.Nextafter32(high, low)
	}
	if v < low {
		v = low
	}
	return v
}

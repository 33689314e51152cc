package layer

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas32"

	"github.com/FlavioCFOliveira/feedforward/internal/activations"
	"github.com/FlavioCFOliveira/feedforward/internal/random"
)

// Neuron holds one weight per input and a bias.
// The weight count is fixed at construction and is the input size the
// neuron accepts.
type Neuron struct {
	weights []float32
	bias    float32
	act     activations.ReLU
}

// NewNeuron creates a neuron from explicit parameters.
// The weights slice is copied.
func NewNeuron(bias float32, weights []float32) Neuron {
	w := make([]float32, len(weights))
	copy(w, weights)
	return Neuron{weights: w, bias: bias}
}

// RandomNeuron draws inSize weights and then the bias from [-1, 1).
// The draw order (weights in index order, bias last) is fixed so that a
// seeded source always yields the same neuron.
func RandomNeuron(src random.Source, inSize int) Neuron {
	if inSize < 0 {
		panic(fmt.Sprintf("RandomNeuron: negative input size %d", inSize))
	}

	weights := make([]float32, inSize)
	for i := range weights {
		weights[i] = src.Uniform(-1, 1)
	}
	bias := src.Uniform(-1, 1)

	return Neuron{weights: weights, bias: bias}
}

// Propagate computes max(0, w·x + b).
// It panics if len(x) differs from the number of weights.
func (n Neuron) Propagate(x []float32) float32 {
	if len(x) != len(n.weights) {
		panic(fmt.Sprintf("Neuron.Propagate: got %d inputs, want %d", len(x), len(n.weights)))
	}

	dot := blas32.Dot(
		blas32.Vector{N: len(x), Data: x, Inc: 1},
		blas32.Vector{N: len(n.weights), Data: n.weights, Inc: 1},
	)
	return n.act.Activate(dot + n.bias)
}

// Weights returns a copy of the weights.
func (n Neuron) Weights() []float32 {
	w := make([]float32, len(n.weights))
	copy(w, n.weights)
	return w
}

// Bias returns the bias.
func (n Neuron) Bias() float32 {
	return n.bias
}

// InSize returns the number of inputs the neuron accepts.
func (n Neuron) InSize() int {
	return len(n.weights)
}

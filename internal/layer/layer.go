// Package layer provides the fully connected layer and its neurons.
package layer

import (
	"errors"
	"fmt"

	"github.com/FlavioCFOliveira/feedforward/internal/random"
)

// ErrParamCount is returned when a flattened parameter slice does not match
// the requested layer shape.
var ErrParamCount = errors.New("layer: parameter count does not match shape")

// Layer is a fully connected layer: every neuron sees the same input.
// All neurons share one input size; the neuron count is the output size.
type Layer struct {
	neurons []Neuron
}

// NewLayer creates a layer from pre-built neurons.
// The caller guarantees that all neurons have the same input size.
func NewLayer(neurons []Neuron) Layer {
	ns := make([]Neuron, len(neurons))
	copy(ns, neurons)
	return Layer{neurons: ns}
}

// RandomLayer creates a layer of out neurons with in inputs each.
// Neurons are drawn in index order, each one consuming all of its draws
// before the next begins.
func RandomLayer(src random.Source, in, out int) Layer {
	if in < 0 || out < 0 {
		panic(fmt.Sprintf("RandomLayer: negative shape %dx%d", out, in))
	}

	neurons := make([]Neuron, out)
	for i := range neurons {
		neurons[i] = RandomNeuron(src, in)
	}
	return Layer{neurons: neurons}
}

// Propagate applies every neuron to x and returns one output per neuron.
// A new slice is returned on every call.
func (l Layer) Propagate(x []float32) []float32 {
	out := make([]float32, len(l.neurons))
	for i := range l.neurons {
		out[i] = l.neurons[i].Propagate(x)
	}
	return out
}

// Neurons returns a copy of the neuron list.
func (l Layer) Neurons() []Neuron {
	ns := make([]Neuron, len(l.neurons))
	copy(ns, l.neurons)
	return ns
}

// InSize returns the input size of the layer, or 0 if it has no neurons.
func (l Layer) InSize() int {
	if len(l.neurons) == 0 {
		return 0
	}
	return l.neurons[0].InSize()
}

// OutSize returns the output size of the layer.
func (l Layer) OutSize() int {
	return len(l.neurons)
}

// NumParams returns the number of weights and biases in the layer.
func (l Layer) NumParams() int {
	total := 0
	for i := range l.neurons {
		total += len(l.neurons[i].weights) + 1
	}
	return total
}

// Params returns all layer parameters flattened: for each neuron, its
// weights followed by its bias.
func (l Layer) Params() []float32 {
	params := make([]float32, 0, l.NumParams())
	for i := range l.neurons {
		params = append(params, l.neurons[i].weights...)
		params = append(params, l.neurons[i].bias)
	}
	return params
}

// FromParams rebuilds a layer of out neurons with in inputs each from the
// flattened layout produced by Params.
func FromParams(in, out int, params []float32) (Layer, error) {
	if in < 0 || out < 0 {
		return Layer{}, fmt.Errorf("%w: negative shape %dx%d", ErrParamCount, out, in)
	}
	if want := out * (in + 1); len(params) != want {
		return Layer{}, fmt.Errorf("%w: got %d, want %d for %dx%d", ErrParamCount, len(params), want, out, in)
	}

	neurons := make([]Neuron, out)
	stride := in + 1
	for o := range neurons {
		base := o * stride
		neurons[o] = NewNeuron(params[base+in], params[base:base+in])
	}
	return Layer{neurons: neurons}, nil
}

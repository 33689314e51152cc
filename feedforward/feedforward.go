// Package feedforward is the public entry point: a fully connected
// network of ReLU neurons built from explicit parameters or from a seeded
// randomness source.
package feedforward

import (
	"github.com/FlavioCFOliveira/feedforward/internal/layer"
	"github.com/FlavioCFOliveira/feedforward/internal/net"
	"github.com/FlavioCFOliveira/feedforward/internal/random"
)

// Re-export common types for easier access
type (
	Network       = net.Network
	Layer         = layer.Layer
	Neuron        = layer.Neuron
	LayerTopology = net.LayerTopology
	RandomSource  = random.Source
	Rand          = random.Rand
)

// Validation errors
var (
	ErrInvalidNeuronCount = net.ErrInvalidNeuronCount
	ErrTopologyMismatch   = net.ErrTopologyMismatch
	ErrLayerMismatch      = net.ErrLayerMismatch
	ErrRaggedLayer        = net.ErrRaggedLayer
	ErrParamCount         = layer.ErrParamCount
)

// Network creation
func New(layers ...Layer) *Network {
	return net.New(layers)
}

func Random(src RandomSource, topology ...LayerTopology) *Network {
	return net.Random(src, topology)
}

func ValidateTopology(topology ...LayerTopology) error {
	return net.ValidateTopology(topology)
}

// Layers
func NewLayer(neurons ...Neuron) Layer {
	return layer.NewLayer(neurons)
}

func RandomLayer(src RandomSource, in, out int) Layer {
	return layer.RandomLayer(src, in, out)
}

func LayerFromParams(in, out int, params []float32) (Layer, error) {
	return layer.FromParams(in, out, params)
}

// Neurons
func NewNeuron(bias float32, weights ...float32) Neuron {
	return layer.NewNeuron(bias, weights)
}

func RandomNeuron(src RandomSource, in int) Neuron {
	return layer.RandomNeuron(src, in)
}

// Randomness
func NewRand(seed uint64) *Rand {
	return random.New(seed)
}

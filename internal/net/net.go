// Package net provides the feedforward network.
package net

import (
	"github.com/FlavioCFOliveira/feedforward/internal/layer"
	"github.com/FlavioCFOliveira/feedforward/internal/random"
)

// Network is an ordered chain of layers: the output of layer i is the
// input of layer i+1.
type Network struct {
	layers []layer.Layer
}

// New creates a network from pre-built layers.
// No dimension checks are made; see Validate.
func New(layers []layer.Layer) *Network {
	ls := make([]layer.Layer, len(layers))
	copy(ls, layers)
	return &Network{layers: ls}
}

// Random builds one randomly initialized layer per adjacent pair of
// topology entries. Layer i takes topology[i].OutputNeurons inputs and has
// topology[i+1].InputNeurons neurons. Layers are drawn in order from src.
//
// A topology with fewer than two entries yields a network with no layers.
func Random(src random.Source, topology []LayerTopology) *Network {
	if len(topology) < 2 {
		return &Network{}
	}

	layers := make([]layer.Layer, 0, len(topology)-1)
	for i := 0; i+1 < len(topology); i++ {
		layers = append(layers, layer.RandomLayer(src, topology[i].OutputNeurons, topology[i+1].InputNeurons))
	}
	return &Network{layers: layers}
}

// Propagate performs a forward pass through all layers.
// A network without layers returns a copy of x.
func (n *Network) Propagate(x []float32) []float32 {
	if len(n.layers) == 0 {
		out := make([]float32, len(x))
		copy(out, x)
		return out
	}

	curr := x
	for i := range n.layers {
		curr = n.layers[i].Propagate(curr)
	}
	return curr
}

// Layers returns a copy of the layer list.
func (n *Network) Layers() []layer.Layer {
	ls := make([]layer.Layer, len(n.layers))
	copy(ls, n.layers)
	return ls
}

// InSize returns the input size of the first layer, or 0 with no layers.
func (n *Network) InSize() int {
	if len(n.layers) == 0 {
		return 0
	}
	return n.layers[0].InSize()
}

// OutSize returns the output size of the last layer, or 0 with no layers.
func (n *Network) OutSize() int {
	if len(n.layers) == 0 {
		return 0
	}
	return n.layers[len(n.layers)-1].OutSize()
}

// Params returns all network parameters flattened (copy).
func (n *Network) Params() []float32 {
	var params []float32
	for _, l := range n.layers {
		params = append(params, l.Params()...)
	}
	return params
}

// NumParams returns the total number of weights and biases.
func (n *Network) NumParams() int {
	total := 0
	for _, l := range n.layers {
		total += l.NumParams()
	}
	return total
}

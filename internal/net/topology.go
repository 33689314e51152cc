package net

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNeuronCount is returned for a topology entry with a
	// non-positive neuron count.
	ErrInvalidNeuronCount = errors.New("net: neuron count must be positive")

	// ErrTopologyMismatch is returned when adjacent topology entries
	// disagree on the size of the boundary between them.
	ErrTopologyMismatch = errors.New("net: adjacent topology entries disagree")

	// ErrLayerMismatch is returned when a layer's input size differs from
	// the previous layer's output size.
	ErrLayerMismatch = errors.New("net: layer input size does not match previous output size")

	// ErrRaggedLayer is returned when the neurons of one layer have
	// different input sizes.
	ErrRaggedLayer = errors.New("net: neurons in a layer have different input sizes")
)

// LayerTopology describes one boundary of a network.
//
// Random reads OutputNeurons of the left entry as a layer's input size and
// InputNeurons of the right entry as its output size. The other field of
// each entry is not read when building.
type LayerTopology struct {
	InputNeurons  int
	OutputNeurons int
}

// ValidateTopology checks every boundary of topology: the counts Random
// reads on both sides of it must be positive and equal, i.e.
// topology[i].OutputNeurons == topology[i+1].InputNeurons > 0.
// Fields Random never reads (InputNeurons of the first entry, OutputNeurons
// of the last) are not checked. Random does not call it.
func ValidateTopology(topology []LayerTopology) error {
	for i := 0; i+1 < len(topology); i++ {
		out, in := topology[i].OutputNeurons, topology[i+1].InputNeurons
		if out <= 0 {
			return fmt.Errorf("%w: entry %d outputs %d", ErrInvalidNeuronCount, i, out)
		}
		if in <= 0 {
			return fmt.Errorf("%w: entry %d takes %d", ErrInvalidNeuronCount, i+1, in)
		}
		if out != in {
			return fmt.Errorf("%w: entry %d outputs %d, entry %d takes %d",
				ErrTopologyMismatch, i, out, i+1, in)
		}
	}
	return nil
}

// Validate checks the dimension chain of a built network: every layer is
// rectangular and each layer takes as many inputs as the previous one
// produces. Layers without neurons are skipped for the input-size check.
func (n *Network) Validate() error {
	for i, l := range n.layers {
		neurons := l.Neurons()
		for j := 1; j < len(neurons); j++ {
			if neurons[j].InSize() != neurons[0].InSize() {
				return fmt.Errorf("%w: layer %d neuron %d takes %d, neuron 0 takes %d",
					ErrRaggedLayer, i, j, neurons[j].InSize(), neurons[0].InSize())
			}
		}

		if i == 0 || l.OutSize() == 0 {
			continue
		}
		if prev := n.layers[i-1].OutSize(); l.InSize() != prev {
			return fmt.Errorf("%w: layer %d takes %d, layer %d produces %d",
				ErrLayerMismatch, i, l.InSize(), i-1, prev)
		}
	}
	return nil
}

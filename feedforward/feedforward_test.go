package feedforward_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FlavioCFOliveira/feedforward/feedforward"
)

func TestNeuronScenarios(t *testing.T) {
	n := feedforward.NewNeuron(0.5, -0.3, 0.8)

	assert.Equal(t, float32(0), n.Propagate([]float32{-10, -10}))
	assert.InDelta(t, (-0.3*0.5)+(0.8*1.0)+0.5, n.Propagate([]float32{0.5, 1.0}), 1e-6)
}

func TestRandomReproducible(t *testing.T) {
	topology := []feedforward.LayerTopology{
		{OutputNeurons: 3},
		{InputNeurons: 4, OutputNeurons: 4},
		{InputNeurons: 2},
	}

	a := feedforward.Random(feedforward.NewRand(7), topology...)
	b := feedforward.Random(feedforward.NewRand(7), topology...)

	assert.Equal(t, a.Params(), b.Params())
}

func TestRebuildFromParams(t *testing.T) {
	src := feedforward.NewRand(3)
	original := feedforward.New(
		feedforward.RandomLayer(src, 2, 3),
		feedforward.RandomLayer(src, 3, 1),
	)

	var rebuilt []feedforward.Layer
	for _, l := range original.Layers() {
		r, err := feedforward.LayerFromParams(l.InSize(), l.OutSize(), l.Params())
		require.NoError(t, err)
		rebuilt = append(rebuilt, r)
	}
	copyNet := feedforward.New(rebuilt...)

	require.NoError(t, copyNet.Validate())
	input := []float32{0.7, -0.2}
	assert.Equal(t, original.Propagate(input), copyNet.Propagate(input))
}

func TestCustomRandomSource(t *testing.T) {
	var src constSource = 0.25
	n := feedforward.RandomNeuron(src, 2)

	assert.Equal(t, []float32{0.25, 0.25}, n.Weights())
	assert.Equal(t, float32(0.25), n.Bias())
}

type constSource float32

func (c constSource) Uniform(low, high float32) float32 { return float32(c) }

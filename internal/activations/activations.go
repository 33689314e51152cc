// Package activations provides the activation applied by every neuron.
package activations

// ReLU is the rectified-linear activation.
type ReLU struct{}

// Activate computes max(0, x)
func (r ReLU) Activate(x float32) float32 {
	if x > 0 {
		return x
	}
	return 0
}

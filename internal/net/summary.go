package net

import (
	"fmt"
	"io"
)

// Summary writes a table of the network's layers, their shapes and
// parameter counts to w.
func (n *Network) Summary(w io.Writer) error {
	lines := []string{
		"Model: Network",
		"_________________________________________________________________",
		fmt.Sprintf("%-25s %-20s %-10s", "Layer", "Shape (in -> out)", "Param #"),
		"=================================================================",
	}

	total := 0
	for i, l := range n.layers {
		params := l.NumParams()
		total += params

		shape := fmt.Sprintf("(%d -> %d)", l.InSize(), l.OutSize())
		lines = append(lines, fmt.Sprintf("%-25s %-20s %-10d", fmt.Sprintf("Layer_%d", i), shape, params))
	}

	lines = append(lines,
		"=================================================================",
		fmt.Sprintf("Total params: %d", total),
		"_________________________________________________________________",
	)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

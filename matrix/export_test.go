// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes a read-only snapshot of the resolved Options to
// matrix_test without widening the production API.

// OptionsSnapshot mirrors the unexported Options fields.
type OptionsSnapshot struct {
	Shape          Shape
	ValidateNaNInf bool
	Eps            float64
	HasSource      bool
}

// GatherOptionsSnapshot resolves opts over the defaults.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Shape:          o.shape,
		ValidateNaNInf: o.validateNaNInf,
		Eps:            o.eps,
		HasSource:      o.src != nil,
	}
}

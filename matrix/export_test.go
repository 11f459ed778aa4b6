// SPDX-License-Identifier: MIT

package matrix

import "github.com/sirupsen/logrus"

// OptionsSnapshot exposes the resolved Options to external tests.
type OptionsSnapshot struct {
	Seeded      bool
	StrictPivot bool
	PivotTol    float64
	Logger      logrus.FieldLogger
}

// SnapshotOptions resolves opts exactly as the public entry points do.
func SnapshotOptions(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Seeded:      o.rng != nil,
		StrictPivot: o.strictPivot,
		PivotTol:    o.pivotTol,
		Logger:      o.logger,
	}
}

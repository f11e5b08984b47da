// SPDX-License-Identifier: MIT

package triangular

// Test-Bridge (White-Box) for validators and the options snapshot.
// The file ends in _test.go, so it never compiles into production builds.

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	Lenient   bool
	HasLogger bool
}

// GatherOptionsSnapshot_TestOnly resolves opts and returns a snapshot.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Lenient: o.lenient, HasLogger: o.logger != nil}
}

// ExportedValidateDim exposes validateDim so the overflow guard can be
// checked at the boundary without allocating a huge matrix.
var ExportedValidateDim = validateDim

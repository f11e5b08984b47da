// SPDX-License-Identifier: MIT

package vector

// Test-Bridge (White-Box) for the options snapshot.
//
// Purpose:
//   - Expose the resolved Options to vector_test without widening the prod API.
//   - The file ends in _test.go, so it never compiles into production builds.

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	Init      InitPolicy
	HasLogger bool
}

// GatherOptionsSnapshot_TestOnly resolves opts and returns a snapshot.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Init: o.init, HasLogger: o.logger != nil}
}

// ExportedValidateShape exposes validateShape for table tests.
var ExportedValidateShape = validateShape

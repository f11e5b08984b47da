// Package utmatrix is a small numeric-container library: a bounded vector
// with a start offset, and an upper-triangular matrix built from such vectors.
//
// What is inside?
//
//	vector/     — Vector[T]: logical size + start index, jagged storage,
//	              bounds-checked access, scalar & vector arithmetic, dot product
//	triangular/ — Matrix[T]: n rows, row i a Vector[T] starting at i;
//	              element access, in-place Add/Sub, text IO, gonum bridge
//
// Quick ASCII picture (n = 4, only x cells are stored):
//
//	x x x x
//	. x x x
//	. . x x
//	. . . x
//
// Conventions shared by both packages:
//
//   - Errors are sentinels (vector.ErrOutOfIndex, vector.ErrOverLimit, ...)
//     matched with errors.Is; public methods never panic on user input.
//   - Configuration uses functional options (WithInit, WithLogger, ...).
//   - Logging goes through go.uber.org/zap; the default logger is a no-op.
//   - Fresh cells hold 1 unless WithInit(vector.InitZero) is passed.
//
//	go get github.com/katalvlaran/utmatrix
package utmatrix

// Package vector provides Vector[T], a bounded one-dimensional container with
// a logical size and a start offset.
//
// The vector package provides:
//
//   - Vector[T] with logical indices 0..Size()-1, of which only
//     StartIndex()..Size()-1 are physically stored. Slots below the start
//     index read as zero and are never allocated.
//   - Element access (At/Set) that returns errors instead of panicking.
//     Writing below the start index grows the stored range leftward.
//   - In-place scalar arithmetic (AddScalar, SubScalar, MulScalar) and pure
//     vector arithmetic (Add, Sub, Dot) that honour differing start indices.
//   - Text serialization (WriteTo/ReadFrom/String) and gonum interop
//     (ToVecDense/FromVecDense).
//
// Element types are constrained by Number (signed integers and floats).
// Freshly constructed vectors are filled with 1 unless WithInit(InitZero)
// is passed; see DefaultInit.
//
// Vectors are not safe for concurrent mutation; each instance owns its
// buffer exclusively and Clone/Assign always deep-copy.
package vector

// SPDX-License-Identifier: MIT

// Package vector: functional configuration for vector construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Options only affect construction. Once built, a vector keeps its logger
//     for its whole lifetime, including across Assign.
//   - The init policy is orthogonal to growth: slots materialized by Set
//     below the start index, or by AddScalar, are always zero.
package vector

import "go.uber.org/zap"

// InitPolicy selects the value every stored slot holds after construction.
type InitPolicy uint8

const (
	// InitOne fills stored slots with the multiplicative identity (1).
	InitOne InitPolicy = iota
	// InitZero fills stored slots with the zero value.
	InitZero
)

// String implements fmt.Stringer.
func (p InitPolicy) String() string {
	switch p {
	case InitOne:
		return "one"
	case InitZero:
		return "zero"
	default:
		return "unknown"
	}
}

// ---------- Defaults (single source of truth) ----------

// DefaultInit keeps the historical behaviour of the container: fresh slots
// hold 1, not 0. Callers that want zero-filled storage pass WithInit(InitZero).
const DefaultInit = InitOne

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicInitInvalid = "vector: WithInit: unknown init policy"
	panicLoggerNil   = "vector: WithLogger: logger must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly; last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public constructors accept ...Option.
type Options struct {
	init   InitPolicy  // DefaultInit
	logger *zap.Logger // nil ⇒ package Logger()
}

// WithInit sets the fill policy for freshly allocated slots.
// Panics on an unknown policy value (programmer error).
func WithInit(p InitPolicy) Option {
	if p != InitOne && p != InitZero {
		panic(panicInitInvalid)
	}

	return func(o *Options) { o.init = p }
}

// WithLogger attaches a per-vector logger that overrides the package logger.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions resolves opts over the documented defaults.
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{init: DefaultInit}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// initValue returns the fill value selected by p.
func initValue[T Number](p InitPolicy) T {
	if p == InitZero {
		return 0
	}

	return 1
}

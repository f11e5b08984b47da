// SPDX-License-Identifier: MIT

// Package triangular: functional configuration for matrix construction.
//
// Notes:
//   - Init policy and logger are forwarded to every row as vector options.
//   - The triangle policy only governs Matrix.Set and Matrix.ReadFrom. Rows
//     obtained through Row(i) are plain vectors and follow vector semantics.
package triangular

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/utmatrix/vector"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultInit mirrors vector.DefaultInit (fresh cells hold 1).
	DefaultInit = vector.DefaultInit

	// DefaultLenientTriangle false ⇒ sub-diagonal writes fail with ErrBelowDiagonal.
	DefaultLenientTriangle = false
)

const panicLoggerNil = "triangular: WithLogger: logger must be non-nil"

// Option mutates internal options. Last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	init    vector.InitPolicy // DefaultInit
	lenient bool              // DefaultLenientTriangle
	logger  *zap.Logger       // nil ⇒ vector.Logger()
}

// WithInit sets the fill policy for freshly allocated cells.
// Panics on an unknown policy (delegated to vector.WithInit).
func WithInit(p vector.InitPolicy) Option {
	_ = vector.WithInit(p) // validate eagerly

	return func(o *Options) { o.init = p }
}

// WithLenientTriangle lets Set(i, j) with j < i grow row i leftward instead
// of failing. The matrix is then no longer strictly upper-triangular.
func WithLenientTriangle() Option {
	return func(o *Options) { o.lenient = true }
}

// WithStrictTriangle restores the default: sub-diagonal writes fail.
func WithStrictTriangle() Option {
	return func(o *Options) { o.lenient = false }
}

// WithLogger attaches a logger to the matrix and to each of its rows.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions resolves opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{init: DefaultInit, lenient: DefaultLenientTriangle}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// rowOptions translates the matrix options into vector options for rows.
func (o Options) rowOptions() []vector.Option {
	opts := []vector.Option{vector.WithInit(o.init)}
	if o.logger != nil {
		opts = append(opts, vector.WithLogger(o.logger))
	}

	return opts
}

// log resolves the effective logger.
func (o Options) log() *zap.Logger {
	if o.logger != nil {
		return o.logger
	}

	return vector.Logger()
}

// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for sparse construction, addition
// and comparison. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The bucket count of a Sparse is a positional constructor argument, not an
//     option: it is part of the matrix identity and never changes afterwards.
//   - resultBuckets only affects the table size of a freshly allocated sum.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by AllClose.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles finite-value validation in Sparse.Set.
	// Off by default: a default-configured Sparse fails only on shape and index errors.
	DefaultValidateNaNInf = false

	// DefaultResultBuckets selects the bucket count of an addition result.
	// Zero means "reuse the left operand's bucket count".
	DefaultResultBuckets = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid       = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicResultBucketsInvalid = "matrix: WithResultBuckets: buckets must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	resultBuckets  int     // 0 or >= 1; DefaultResultBuckets
}

// WithEpsilon sets the absolute tolerance used by AllClose.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf makes Set reject NaN and ±Inf with ErrNaNInf.
// Affects newly created matrices only; existing matrices keep their policy.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithResultBuckets overrides the bucket count of the matrix returned by
// Sum, (*Sparse).Add and AddDense. Without it the result reuses the left
// operand's bucket count.
// Panics when n < 1.
func WithResultBuckets(n int) Option {
	if n < 1 {
		panic(panicResultBucketsInvalid)
	}

	return func(o *Options) { o.resultBuckets = n }
}

// NewMatrixOptions resolves opts over the documented defaults.
// Exposed so callers can inspect the effective configuration.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the effective comparison tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether Set rejects non-finite values.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// ResultBuckets returns the requested result bucket count (0 = inherit).
func (o Options) ResultBuckets() int { return o.resultBuckets }

// gatherOptions applies user setters over defaults, in order (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		resultBuckets:  DefaultResultBuckets,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

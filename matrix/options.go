// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance multiplies the scaled singularity bound
	//
	//	tol_k = factor · MachineEpsilon · n · max(colMax_k, |pivot|)
	//
	// where colMax_k is the largest |A[i][k]| of the caller's matrix.
	DefaultPivotTolerance = 1.0

	// DefaultValidateNaNInf rejects NaN/±Inf in Dense.Set and solver inputs.
	DefaultValidateNaNInf = true
)

// MachineEpsilon is the float64 unit roundoff gap 2^-52.
var MachineEpsilon = math.Nextafter(1, 2) - 1

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: factor must be finite and > 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	pivotTolerance float64 // > 0; DefaultPivotTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithPivotTolerance sets the multiplier of the scaled singularity bound.
// Larger factors reject more near-singular systems; smaller ones accept
// more ill-conditioned systems at the price of larger residuals.
//
// Panics if factor is NaN, ±Inf or ≤ 0.
func WithPivotTolerance(factor float64) Option {
	if isNonFinite(factor) || factor <= 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTolerance = factor }
}

// WithValidateNaNInf enables strict finite-value validation of solver inputs (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf skips the finite-value scan. Non-finite inputs then
// surface as ErrSingular (failed pivot test or non-finite solution).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// PivotTolerance reports the configured tolerance multiplier.
func (o Options) PivotTolerance() float64 { return o.pivotTolerance }

// ValidateNaNInf reports whether finite-value validation is on.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// NewOptions resolves opts over the defaults (exported for callers that
// want to inspect the effective policy, e.g. configuration dumps).
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// gatherOptions applies user options over defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		pivotTolerance: DefaultPivotTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

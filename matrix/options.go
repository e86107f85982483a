// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Notes:
//   - validateNaNInf controls whether Set()/ingestion rejects NaN/Inf at all.
//   - allowInf is a narrow exception for +Inf (e.g. "unreachable" distances).
//     Under validation, NaN and -Inf remain rejected even when allowInf=true.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultAllowInf permits +Inf values when validation is enabled.
	DefaultAllowInf = false

	// DefaultNormEpsilon is the lower clamp for row norms in NormalizeRowsL2,
	// so all-zero rows stay zero instead of producing NaN.
	DefaultNormEpsilon = 1e-12
)

const panicNormEpsilonInvalid = "matrix: WithNormEpsilon: eps must be finite and > 0"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool    // DefaultValidateNaNInf
	allowInf       bool    // DefaultAllowInf
	normEps        float64 // DefaultNormEpsilon
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// The flag propagates only on creation; existing matrices keep their policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithAllowInf admits +Inf while keeping NaN and -Inf rejected.
func WithAllowInf() Option {
	return func(o *Options) { o.allowInf = true }
}

// WithNormEpsilon sets the lower clamp for row norms used by NormalizeRowsL2.
// Panics when eps is not finite or not strictly positive (programmer error).
func WithNormEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicNormEpsilonInvalid)
	}

	return func(o *Options) { o.normEps = eps }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		allowInf:       DefaultAllowInf,
		normEps:        DefaultNormEpsilon,
	}
}

// gatherOptions resolves opts left-to-right on top of the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// admits reports whether v passes the numeric policy described by
// (validate, allowInf).
func admits(v float64, validate, allowInf bool) bool {
	if !validate {
		return true
	}
	if math.IsNaN(v) || math.IsInf(v, -1) {
		return false
	}
	if math.IsInf(v, 1) {
		return allowInf
	}

	return true
}

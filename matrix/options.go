// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for SquareMat construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// DefaultFill is the value every element receives when New is called
// without WithFill.
const DefaultFill = 0.0

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	fill float64 // DefaultFill
}

// WithFill sets the initial value of every element.
// Any float64 is accepted, NaN and ±Inf included; use SquareMat.IsFinite to
// detect non-finite contents afterwards.
// Complexity: O(1).
func WithFill(v float64) Option {
	return func(o *Options) { o.fill = v }
}

// gatherOptions resolves user options on top of the documented defaults.
// Options are applied in order; the last writer wins.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		fill: DefaultFill,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

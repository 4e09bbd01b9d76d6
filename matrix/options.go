// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
// This file defines:
//   - documented defaults (constants),
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Options apply to owners only. Views inherit executor and numeric
//     policy from the matrix they were built from.
//   - Like and Copy carry the receiver's options to the new owner.
package matrix

import "github.com/katalvlaran/lvmat/parallel"

// DefaultValidateNaNInf toggles finite-value validation in Set. It is off by
// default: NaN is a legitimate value here (Aggregate on an empty matrix
// returns it, and callers may store it).
const DefaultValidateNaNInf = false

const panicExecutorNil = "matrix: WithExecutor: executor must not be nil"

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	exec           *parallel.Executor // nil resolves to parallel.Default()
	validateNaNInf bool
}

// WithExecutor binds the matrix (and every view/copy derived from it) to e.
// Panics when e is nil.
func WithExecutor(e *parallel.Executor) Option {
	if e == nil {
		panic(panicExecutorNil)
	}

	return func(o *Options) { o.exec = e }
}

// WithValidateNaNInf makes Set reject NaN and ±Inf with ErrNaNInf.
// Bulk operations (Apply, Fill, ...) are not checked.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation in Set.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, set := range user {
		set(&o)
	}
	if o.exec == nil {
		o.exec = parallel.Default()
	}

	return o
}

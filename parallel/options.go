// SPDX-License-Identifier: MIT

// Package parallel: functional configuration for Executor.
// This file defines:
//   - documented defaults (constants),
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
package parallel

import (
	"runtime"

	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultThreshold is the minimum amount of work (cells, or flops for
	// products) an operation must have before it is split across workers.
	DefaultThreshold = 256 * 256

	// autoDegree asks New to resolve the degree from runtime.GOMAXPROCS.
	autoDegree = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDegreeInvalid    = "parallel: WithDegree: degree must be >= 1"
	panicThresholdInvalid = "parallel: WithThreshold: threshold must be >= 0"
	panicLoggerNil        = "parallel: WithLogger: logger must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	degree    int            // >= 1 after resolution
	threshold int            // >= 0
	logger    *logrus.Logger // never nil after resolution
}

// WithDegree sets the degree of parallelism P (maximum concurrent chunks).
// Panics when p < 1 (programmer error).
func WithDegree(p int) Option {
	if p < 1 {
		panic(panicDegreeInvalid)
	}

	return func(o *Options) { o.degree = p }
}

// WithThreshold sets the minimum work size that triggers splitting.
// A threshold of 0 forces every operation with P>1 onto the parallel path,
// which tests use to exercise chunking on tiny matrices.
// Panics when n < 0.
func WithThreshold(n int) Option {
	if n < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = n }
}

// WithLogger routes executor diagnostics to l.
// Panics when l is nil.
func WithLogger(l *logrus.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions applies user setters on top of defaults and resolves the
// automatic degree.
func gatherOptions(user ...Option) Options {
	o := Options{
		degree:    autoDegree,
		threshold: DefaultThreshold,
		logger:    logrus.StandardLogger(),
	}
	for _, set := range user {
		set(&o) // last-writer-wins
	}
	if o.degree == autoDegree {
		o.degree = runtime.GOMAXPROCS(0)
	}

	return o
}

// SPDX-License-Identifier: MIT

package parallel

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Settings is an immutable snapshot of an Executor's configuration, taken
// once at the start of an operation and never re-read mid-operation.
type Settings struct {
	Degree    int // P, >= 1
	Threshold int // minimum work that triggers splitting, >= 0
}

// ShouldSplit reports whether an operation with the given amount of work
// runs on the parallel path: P > 1 and work ≥ threshold.
func (s Settings) ShouldSplit(work int) bool {
	return s.Degree > 1 && work >= s.Threshold
}

// Chunks returns the ranges an operation over n indices runs on: one range
// covering [0,n) on the sequential path, Split(n, P) otherwise.
func (s Settings) Chunks(n, work int) []Range {
	if n <= 0 {
		return nil
	}
	if !s.ShouldSplit(work) {
		return []Range{{Lo: 0, Hi: n}}
	}

	return Split(n, s.Degree)
}

// Task is the body of one chunk. ctx is cancelled once another chunk of the
// same operation has failed; long tasks may poll it, short ones may ignore it.
type Task func(ctx context.Context, chunk int, r Range) error

// Executor runs chunked operations with a bounded number of concurrent
// workers. The zero value is not usable; construct with New.
// An Executor is safe for concurrent use by multiple operations.
type Executor struct {
	degree    atomic.Int64
	threshold atomic.Int64
	log       *logrus.Logger
}

// New builds an Executor from options (see WithDegree, WithThreshold, WithLogger).
func New(opts ...Option) *Executor {
	o := gatherOptions(opts...)
	e := &Executor{log: o.logger}
	e.degree.Store(int64(o.degree))
	e.threshold.Store(int64(o.threshold))

	return e
}

var (
	defaultOnce sync.Once
	defaultExec *Executor
)

// Default returns the process-wide executor used by matrices that were not
// bound to one explicitly. It is created lazily with default options.
func Default() *Executor {
	defaultOnce.Do(func() { defaultExec = New() })

	return defaultExec
}

// Settings snapshots the current configuration.
func (e *Executor) Settings() Settings {
	return Settings{
		Degree:    int(e.degree.Load()),
		Threshold: int(e.threshold.Load()),
	}
}

// SetDegree changes P for operations started afterwards.
// Values below 1 are clamped to 1.
func (e *Executor) SetDegree(p int) {
	if p < 1 {
		p = 1
	}
	e.degree.Store(int64(p))
}

// SetThreshold changes the split threshold for operations started afterwards.
// Negative values are clamped to 0.
func (e *Executor) SetThreshold(n int) {
	if n < 0 {
		n = 0
	}
	e.threshold.Store(int64(n))
}

// Logger returns the logger diagnostics are written to.
func (e *Executor) Logger() *logrus.Logger { return e.log }

// Run executes task once per range and blocks until every started task has
// returned.
//
// Implementation:
//   - Stage 1: a single range runs inline on the caller's goroutine.
//   - Stage 2: otherwise tasks are submitted in ascending chunk order to an
//     errgroup limited to s.Degree concurrent goroutines.
//   - Stage 3: the first failure cancels the group context; chunks not yet
//     started observe it and return without running.
//
// Errors:
//   - *TaskError (matches ErrTaskFailed) for the first failing chunk in
//     observation order; panics inside task are recovered and reported here.
func (e *Executor) Run(ctx context.Context, op string, s Settings, chunks []Range, task Task) error {
	if len(chunks) == 0 {
		return nil
	}
	if len(chunks) == 1 {
		return e.guard(ctx, op, 0, chunks[0], task)
	}

	e.log.WithFields(logrus.Fields{
		"op":     op,
		"chunks": len(chunks),
		"degree": s.Degree,
	}).Debug("parallel: dispatch")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Degree)
	for i, r := range chunks {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil // a sibling already failed; skip unstarted work
			}

			return e.guard(gctx, op, i, r, task)
		})
	}

	return g.Wait()
}

// For is Run over s.Chunks(n, work).
func (e *Executor) For(ctx context.Context, op string, s Settings, n, work int, task Task) error {
	return e.Run(ctx, op, s, s.Chunks(n, work), task)
}

// guard runs one chunk, converting errors and panics into *TaskError.
func (e *Executor) guard(ctx context.Context, op string, chunk int, r Range, task Task) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = e.fail(op, chunk, r, recovered(v))
		}
	}()
	if cause := task(ctx, chunk, r); cause != nil {
		return e.fail(op, chunk, r, cause)
	}

	return nil
}

func (e *Executor) fail(op string, chunk int, r Range, cause error) error {
	e.log.WithFields(logrus.Fields{
		"op":    op,
		"chunk": chunk,
		"lo":    r.Lo,
		"hi":    r.Hi,
	}).WithError(cause).Warn("parallel: task failed")

	return &TaskError{Op: op, Chunk: chunk, Range: r, Cause: cause}
}

// SPDX-License-Identifier: MIT

package parallel

import (
	"errors"
	"fmt"
)

// ErrTaskFailed reports that a chunk task failed or was interrupted while an
// operation was in flight. The destination of a mutating operation is left
// partially updated; see the operation's documentation.
var ErrTaskFailed = errors.New("parallel: task failed")

// errPanic marks a failure that was recovered from a panicking task.
var errPanic = errors.New("panic")

// TaskError carries the chunk that failed first and the cause.
// errors.Is(err, ErrTaskFailed) is true for every *TaskError.
type TaskError struct {
	Op    string // operation tag supplied by the caller
	Chunk int    // zero-based chunk index in creation order
	Range Range  // index range owned by the chunk
	Cause error  // returned error or recovered panic
}

// Error implements error.
func (e *TaskError) Error() string {
	return fmt.Sprintf("%s: chunk %d [%d,%d): %v: %v", e.Op, e.Chunk, e.Range.Lo, e.Range.Hi, ErrTaskFailed, e.Cause)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *TaskError) Unwrap() []error { return []error{ErrTaskFailed, e.Cause} }

// recovered converts a recovered panic value into an error.
func recovered(v any) error {
	if err, ok := v.(error); ok {
		return fmt.Errorf("%w: %w", errPanic, err)
	}

	return fmt.Errorf("%w: %v", errPanic, v)
}

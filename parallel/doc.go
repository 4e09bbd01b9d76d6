// SPDX-License-Identifier: MIT

// Package parallel is the execution scheduler shared by every matrix kernel.
//
// What & Why:
//
//	Kernels in package matrix never spawn goroutines themselves. They ask an
//	*Executor to split a 1-D index range (rows, or output columns for products)
//	into contiguous chunks, run one task per chunk, and block until all tasks
//	are done. The Executor is explicitly sized (degree P) and injected into the
//	matrices that use it, so tests can pin P=1 or P=4 deterministically.
//
// Policy:
//
//   - Settings are snapshotted once at the start of an operation (Settings()).
//   - Split only when P>1 and the operation's work ≥ threshold.
//   - Chunks are created in ascending order; the last chunk absorbs the remainder.
//   - At most P chunks run concurrently (errgroup limit).
//   - Fail-fast: the first failure (error or recovered panic) is returned as a
//     *TaskError matching ErrTaskFailed; chunks that have not started yet are
//     skipped, chunks already running finish. There is no rollback.
//   - Partial results are combined by the caller in ascending chunk order (Fold).
//
// Complexity:
//
//	Split is O(parts). For dispatches O(parts) tasks plus the task bodies.
package parallel

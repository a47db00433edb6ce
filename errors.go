// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcpsort

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates a queue operation cannot proceed immediately
// (the queue's internal non-blocking enqueue found it full, or its dequeue
// found it empty; the public Enqueue retries instead). This is an alias for
// [iox.ErrWouldBlock] for ecosystem consistency with the queue this package
// is built on; callers of [Sort] never see it directly.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates an operation would block.
func IsWouldBlock(err error) bool { return iox.IsWouldBlock(err) }

// ErrUnsupportedWidth is returned by [Sort] when the bucket-splitter would
// need to emit a K-way merge wider than the largest supported width (64).
// This is fatal: the sort aborts and the caller's string array is left in
// an indeterminate state.
var ErrUnsupportedWidth = errors.New("lcpsort: merge width exceeds maximum supported K=64")

// ErrOutOfMemory is returned by [Sort] when an allocation panics on the
// goroutine that called Sort, such as the merge's output buffer or the job
// queue. Fatal, same as [ErrUnsupportedWidth]. Allocations made on the
// partition-sorting and worker goroutines (per-partition LCP arrays, loser
// trees, range lists) are not recovered and are not turned into this error.
var ErrOutOfMemory = errors.New("lcpsort: out of memory")

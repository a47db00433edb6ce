// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcpsort

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// pad is cache-line padding to prevent false sharing between hot fields.
type pad [64]byte

// JobQueue is the multi-producer, multi-consumer job queue every merge
// invocation runs its jobs through.
//
// It is an FAA-based SCQ queue (Nikolaev, DISC 2019) exactly like the
// teacher's MPMC[T], generalized from an arbitrary payload type to [Job] and
// fused with an idle-worker consensus driver: workers never dequeue
// directly, they participate through [JobQueue.Loop].
type JobQueue struct {
	_         pad
	tail      atomix.Uint64 // producer index (FAA)
	_         pad
	head      atomix.Uint64 // consumer index (FAA)
	_         pad
	threshold atomix.Int64 // livelock prevention for dequeue
	_         pad
	idleCount atomix.Int64 // workers currently blocked waiting on the queue
	_         pad
	aborted   atomix.Bool // set once a fatal error has been reported
	_         pad
	buffer    []jobSlot
	capacity  uint64
	size      uint64
	mask      uint64
}

type jobSlot struct {
	cycle atomix.Uint64
	job   Job
}

// newJobQueue creates a queue with room for at least capacity pending jobs
// (rounded up to the next power of two; SCQ needs 2n physical slots for
// capacity n).
func newJobQueue(capacity int) *JobQueue {
	n := uint64(nextPowerOfTwo(capacity))
	if n < 2 {
		n = 2
	}
	size := n * 2

	q := &JobQueue{
		buffer:   make([]jobSlot, size),
		capacity: n,
		size:     size,
		mask:     size - 1,
	}
	q.threshold.StoreRelaxed(3*int64(n) - 1)

	for i := uint64(0); i < size; i++ {
		q.buffer[i].cycle.StoreRelaxed(i / n)
	}

	return q
}

// tryEnqueue attempts a single non-blocking enqueue.
func (q *JobQueue) tryEnqueue(job Job) error {
	sw := spin.Wait{}
	for {
		tail := q.tail.LoadAcquire()
		head := q.head.LoadAcquire()
		if tail >= head+q.capacity {
			return ErrWouldBlock
		}

		myTail := q.tail.AddAcqRel(1) - 1
		slot := &q.buffer[myTail&q.mask]
		expectedCycle := myTail / q.capacity

		slotCycle := slot.cycle.LoadAcquire()
		if slotCycle == expectedCycle {
			slot.job = job
			slot.cycle.StoreRelease(expectedCycle + 1)
			q.threshold.StoreRelaxed(3*int64(q.capacity) - 1)
			return nil
		}
		if int64(slotCycle) < int64(expectedCycle) {
			return ErrWouldBlock
		}
		sw.Once()
	}
}

// Enqueue adds job to the queue, retrying with backoff if it is
// (transiently) full. The bucket-splitter can fan a sub-merge out into many
// child jobs at once; a full queue here means peers haven't drained yet, not
// a real failure.
func (q *JobQueue) Enqueue(job Job) {
	sw := spin.Wait{}
	for q.tryEnqueue(job) != nil {
		sw.Once()
	}
}

func (q *JobQueue) tryDequeue() (Job, error) {
	if q.threshold.LoadRelaxed() < 0 {
		return nil, ErrWouldBlock
	}

	sw := spin.Wait{}
	for {
		myHead := q.head.AddAcqRel(1) - 1
		slot := &q.buffer[myHead&q.mask]
		expectedCycle := myHead/q.capacity + 1
		slotCycle := slot.cycle.LoadAcquire()

		if slotCycle == expectedCycle {
			job := slot.job
			slot.job = nil
			nextEnqCycle := (myHead + q.size) / q.capacity
			slot.cycle.StoreRelease(nextEnqCycle)
			return job, nil
		}

		if int64(slotCycle) < int64(expectedCycle) {
			nextEnqCycle := (myHead + q.size) / q.capacity
			slot.cycle.CompareAndSwapAcqRel(slotCycle, nextEnqCycle)

			tail := q.tail.LoadAcquire()
			if tail <= myHead+1 {
				q.catchup(tail, myHead+1)
				q.threshold.AddAcqRel(-1)
				return nil, ErrWouldBlock
			}
			if q.threshold.AddAcqRel(-1) <= 0 {
				return nil, ErrWouldBlock
			}
		}
		sw.Once()
	}
}

func (q *JobQueue) catchup(tail, head uint64) {
	for tail < head {
		if q.tail.CompareAndSwapRelaxed(tail, head) {
			break
		}
		tail = q.tail.LoadRelaxed()
		head = q.head.LoadRelaxed()
	}
}

// HasIdle reports whether at least one worker is currently idle. Consulted
// by the work-sharing controller; a stale read is fine, it only affects
// throughput, never correctness.
func (q *JobQueue) HasIdle() bool {
	return q.idleCount.LoadAcquire() != 0
}

// abort marks the queue so that every worker stops picking up new jobs at
// its next opportunity. Jobs already running are allowed to finish.
func (q *JobQueue) abort() {
	q.aborted.StoreRelease(true)
}

// Loop spawns numWorkers goroutines that drain the queue until every worker
// is simultaneously idle with the queue empty, or the queue has been
// aborted. It returns once all workers have returned.
func (q *JobQueue) Loop(ctx *Context, numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func(workerIndex int) {
			defer wg.Done()
			if ctx.cfg.threadPool != nil {
				ctx.cfg.threadPool.BindWorker(workerIndex)
			}
			q.workerLoop(ctx, numWorkers)
		}(i)
	}
	wg.Wait()
}

func (q *JobQueue) workerLoop(ctx *Context, numWorkers int) {
	sw := spin.Wait{}
	for {
		if q.aborted.LoadAcquire() {
			return
		}

		for {
			job, err := q.tryDequeue()
			if err != nil {
				break
			}
			job.Run(ctx)
			if q.aborted.LoadAcquire() {
				return
			}
		}

		idle := q.idleCount.AddAcqRel(1)
		if int(idle) == numWorkers {
			return
		}

		for {
			job, err := q.tryDequeue()
			if err == nil {
				q.idleCount.AddAcqRel(-1)
				job.Run(ctx)
				break
			}
			if q.aborted.LoadAcquire() || int(q.idleCount.LoadAcquire()) == numWorkers {
				return
			}
			sw.Once()
		}
	}
}

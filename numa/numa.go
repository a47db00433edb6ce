// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package numa provides the NUMA/CPU-affinity collaborator a merge's
// worker pool can bind against: the seam for pinning worker goroutines to
// CPUs, plus a best-effort Linux implementation.
package numa

import "runtime"

// ThreadPool binds the calling goroutine, which is about to spend its
// lifetime driving the job queue, to a CPU or node. BindWorker is called
// once per worker goroutine, before it enters its drain loop.
type ThreadPool interface {
	BindWorker(workerIndex int) error
}

// RoundRobin is a ThreadPool that pins worker i to CPU (i mod NumCPU) via
// [runtime.LockOSThread] plus platform affinity (Linux only; a no-op stub
// elsewhere).
type RoundRobin struct{}

func (RoundRobin) BindWorker(workerIndex int) error {
	runtime.LockOSThread()
	cpu := workerIndex % runtime.NumCPU()
	return setAffinity(cpu)
}

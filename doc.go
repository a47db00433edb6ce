// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lcpsort sorts a large array of byte strings in lexicographic order
// by exploiting per-string LCP (longest-common-prefix) annotations and the
// topology of a multi-socket machine.
//
// Each partition of the input is sorted independently by a caller-supplied
// [LocalSorter] (sample sort, radix sort, whatever the caller has), producing
// a contiguous run of strings together with each string's LCP against its
// predecessor within the run. lcpsort then merges the resulting K runs in
// parallel: an adaptive bucket-splitter carves the runs into independent
// sub-merges by shared key prefix, and each sub-merge streams its output
// through an LCP-aware loser tree that reuses cached prefix lengths instead
// of re-scanning common bytes on every comparison.
//
// # Quick Start
//
//	strings := [][]byte{[]byte("banana"), []byte("apple"), []byte("apricot")}
//	if err := lcpsort.Sort(strings, nil); err != nil {
//	    // handle fatal error (unsupported bucket width, out of memory)
//	}
//	// strings is now ["apple", "apricot", "banana"]
//
// # Collaborators
//
// lcpsort's core (the parallel top-level merge) treats the per-partition
// local sort and the NUMA/thread-pool topology as external collaborators,
// supplied through [Config]:
//
//	cfg := lcpsort.NewConfig().
//	    LocalSorter(localsort.Comparison{}).
//	    ThreadPool(numa.RoundRobin{})
//	lcpsort.Sort(strings, cfg)
//
// # Performance Knobs
//
// MergeBulkSize controls emission granularity and self-split cadence;
// ShareWorkThreshold and UseWorkSharing control when a long-running merge
// voluntarily decomposes itself for idle peers; InitialKeyWidth controls how
// many leading bytes the bucket-splitter keys on before it adaptively
// narrows. See [Config] for defaults.
//
// # Error Handling
//
// Sort returns [ErrUnsupportedWidth] if the bucket-splitter would need to
// spawn a merge wider than the supported K=64, and [ErrOutOfMemory] if
// scratch allocation fails. Both are fatal: the caller gets no guarantee
// about the state of its string array. There are no recoverable errors —
// malformed input (an internal NUL byte before the logical end of a string)
// is treated as if the string ended there, exactly like a C string.
//
// # Concurrency
//
// Sort blocks until the merge completes. Internally it runs NumWorkers
// worker goroutines (GOMAXPROCS by default), draining a lock-free job queue
// until every worker is simultaneously idle and the queue is empty.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit memory
// ordering, [code.hybscloud.com/spin] for CPU pause backoff, and
// [github.com/rs/zerolog] for optional structured diagnostic logging.
package lcpsort

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcpsort

import "runtime"

// Sort sorts strings in place, ascending lexicographic order, comparing a
// NUL byte as the end of a string's comparable key. cfg may be nil, in
// which case [NewConfig] defaults are used.
//
// strings is first split into contiguous partitions (the worker count
// rounded up to a power of two, halved until it does not exceed
// len(strings)), each sorted in place within strings via cfg's
// [LocalSorter], then merged by a parallel LCP-aware K-way merge. The merge
// writes its result into a scratch buffer and copies it back over strings on
// success. If Sort returns a non-nil error, strings holds its original
// elements with each partition already sorted, but not the merged order.
// The sort is not stable.
func Sort(strings [][]byte, cfg *Config) error {
	if cfg == nil {
		cfg = NewConfig()
	}
	n := len(strings)
	if n < 2 {
		return nil
	}

	numWorkers := cfg.numWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	numPartitions := nextPowerOfTwo(numWorkers)
	for numPartitions > n {
		numPartitions /= 2
	}
	if numPartitions < 1 {
		numPartitions = 1
	}

	output, err := runSort(strings, *cfg, numWorkers, numPartitions)
	if err != nil {
		return err
	}

	copy(strings, output)
	return nil
}

// runSort does the actual work of Sort, isolated so OOM panics triggered by
// make() can be recovered and translated into [ErrOutOfMemory] at a single
// boundary, rather than letting an allocation failure propagate as a panic.
func runSort(strings [][]byte, cfg Config, numWorkers, numPartitions int) (output [][]byte, err error) {
	defer func() {
		if recover() != nil {
			output, err = nil, ErrOutOfMemory
		}
	}()

	n := len(strings)
	streams := partitionAndSort(strings, cfg, numPartitions)

	output = make([][]byte, n)
	queue := newJobQueue(cfg.queueCapacity)
	ctx := newContext(cfg, queue)

	// Primed with the full input length, not any single partition's length,
	// so no top-level bucket job can spuriously equal the priming value and
	// claim the "longest job" title before real work has happened.
	ctx.shared.lengthOfLongestJob.StoreRelease(int64(n))

	queue.Enqueue(&InitialSplitJob{Output: output, Streams: streams})
	queue.Loop(ctx, numWorkers)

	if ferr := ctx.Err(); ferr != nil {
		return nil, ferr
	}
	return output, nil
}

// partitionAndSort splits strings into numPartitions contiguous ranges,
// locally sorts each range in parallel via cfg's LocalSorter, and wraps
// each as an LCP-annotated [Stream].
func partitionAndSort(strings [][]byte, cfg Config, numPartitions int) []Stream {
	n := len(strings)
	base, extra := n/numPartitions, n%numPartitions

	bounds := make([]int, numPartitions+1)
	for i := 0; i < numPartitions; i++ {
		size := base
		if i < extra {
			size++
		}
		bounds[i+1] = bounds[i] + size
	}

	streams := make([]Stream, numPartitions)
	done := make(chan struct{}, numPartitions)
	for i := 0; i < numPartitions; i++ {
		lo, hi := bounds[i], bounds[i+1]
		go func(i, lo, hi int) {
			part := strings[lo:hi]
			cfg.localSorter.Sort(part)
			streams[i] = annotate(part)
			done <- struct{}{}
		}(i, lo, hi)
	}
	for i := 0; i < numPartitions; i++ {
		<-done
	}

	return streams
}

// annotate builds a [Stream] over an already-sorted partition, computing
// each element's LCP against its predecessor.
func annotate(part [][]byte) Stream {
	s := make(Stream, len(part))
	var lcp uint32
	for i, text := range part {
		if i == 0 {
			lcp = 0
		} else {
			lcp = commonPrefix(part[i-1], text)
		}
		s[i] = AS{Text: text, LCP: lcp}
	}
	return s
}

func commonPrefix(a, b []byte) uint32 {
	var n uint32
	for int(n) < len(a) && int(n) < len(b) && a[n] != 0 && a[n] == b[n] {
		n++
	}
	return n
}

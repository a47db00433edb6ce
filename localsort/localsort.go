// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package localsort provides the per-partition sort collaborator that runs
// before a parallel LCP merge begins. This package supplies a default
// implementation and the seam a caller can replace with a
// radix/multikey-quicksort tuned for their workload.
package localsort

import "bytes"

// Sorter sorts a slice of byte strings in place, ascending lexicographic
// order with the same NUL-terminator semantics the merge uses: a NUL byte
// inside a string acts as the end of the comparable key.
type Sorter interface {
	Sort(strings [][]byte)
}

// Comparison is a Sorter backed by a hand-rolled quicksort-with-insertion-
// sort-cutoff (see quickInsertSort), avoiding sort.Interface boxing for a
// type this hot. It is not the fastest local sort available, only the
// simplest one that satisfies the Sorter contract without pulling in a
// radix-sort dependency this package has no other use for.
type Comparison struct{}

func (Comparison) Sort(strings [][]byte) {
	sortSlice(strings)
}

func sortSlice(strings [][]byte) {
	quickInsertSort(strings, 0, len(strings))
}

// quickInsertSort is a textbook introsort-lite: quicksort down to a small
// cutoff, then insertion sort, avoiding a dependency on sort.Interface
// boxing for a type this hot. Ties are broken by truncating comparison at
// the first NUL byte, matching the merge's own prefix semantics.
func quickInsertSort(a [][]byte, lo, hi int) {
	for hi-lo > 12 {
		p := partition(a, lo, hi)
		if p-lo < hi-p {
			quickInsertSort(a, lo, p)
			lo = p
		} else {
			quickInsertSort(a, p, hi)
			hi = p
		}
	}
	insertionSort(a, lo, hi)
}

func partition(a [][]byte, lo, hi int) int {
	mid := lo + (hi-lo)/2
	if less(a[mid], a[lo]) {
		a[mid], a[lo] = a[lo], a[mid]
	}
	if less(a[hi-1], a[lo]) {
		a[hi-1], a[lo] = a[lo], a[hi-1]
	}
	if less(a[hi-1], a[mid]) {
		a[hi-1], a[mid] = a[mid], a[hi-1]
	}
	pivot := a[mid]
	i, j := lo, hi-1
	for i <= j {
		for less(a[i], pivot) {
			i++
		}
		for less(pivot, a[j]) {
			j--
		}
		if i <= j {
			a[i], a[j] = a[j], a[i]
			i++
			j--
		}
	}
	return i
}

func insertionSort(a [][]byte, lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && less(a[j], a[j-1]); j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}

func less(a, b []byte) bool {
	return bytes.Compare(terminate(a), terminate(b)) < 0
}

func terminate(s []byte) []byte {
	if n := bytes.IndexByte(s, 0); n >= 0 {
		return s[:n]
	}
	return s
}

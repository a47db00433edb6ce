// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcpsort

// loserTree is a K-way tournament tree over K Streams. K must be a power
// of two: the "leaf index = K+i, halve while odd" construction in init
// only visits every internal node exactly once when K is a power of two,
// so callers pad with empty Streams rather than constructing one over an
// arbitrary K. Internal nodes store the index of the losing stream at
// that position; node 0 holds the index of the current overall winner.
// Comparisons reuse each stream's cached head LCP instead of rescanning
// the shared prefix, only walking actual bytes when two heads currently
// tie on LCP.
//
// K is not a compile-time parameter: the tree is sized to len(streams) at
// construction, dispatched at run time by the bucket-splitter rather than
// templated over K at compile time.
type loserTree struct {
	streams []Stream
	nodes   []int
	lcps    []uint32
}

// newLoserTree builds the tournament over streams. Every non-empty stream's
// head element must already carry the LCP the caller wants it compared
// with (the bucket-splitter's baseLcp convention); newLoserTree only seeds
// its internal cache from stream[0].LCP, it does not assign it.
func newLoserTree(streams []Stream) *loserTree {
	t := &loserTree{
		streams: append([]Stream(nil), streams...),
		nodes:   make([]int, len(streams)),
		lcps:    make([]uint32, len(streams)),
	}
	t.init()
	return t
}

func (t *loserTree) init() {
	k := len(t.streams)
	for i := range t.streams {
		t.lcps[i] = t.streams[i].head()

		nodeIdx := k + i
		contender := i
		for nodeIdx%2 == 1 && nodeIdx > 1 {
			nodeIdx >>= 1
			contender = t.updateNode(nodeIdx, contender)
		}
		t.nodes[nodeIdx>>1] = contender
	}
}

// updateNode plays the stream parked at nodes[nodeIdx] (the "defender")
// against contender, leaves the loser parked at nodes[nodeIdx], and returns
// the winner to continue up the tree.
func (t *loserTree) updateNode(nodeIdx, contender int) int {
	defender := &t.nodes[nodeIdx]

	if t.streams[*defender].empty() {
		return contender
	}

	switch {
	case t.streams[contender].empty(), t.lcps[*defender] > t.lcps[contender]:
		*defender, contender = contender, *defender

	case t.lcps[*defender] == t.lcps[contender]:
		lcp := t.lcps[*defender]
		a := t.streams[*defender][0].Text
		b := t.streams[contender][0].Text

		for int(lcp) < len(a) && int(lcp) < len(b) && a[lcp] != 0 && a[lcp] == b[lcp] {
			lcp++
		}

		var byteA, byteB byte
		if int(lcp) < len(a) {
			byteA = a[lcp]
		}
		if int(lcp) < len(b) {
			byteB = b[lcp]
		}

		if byteA < byteB {
			t.lcps[contender] = lcp
			*defender, contender = contender, *defender
		} else {
			t.lcps[*defender] = lcp
		}

	default:
		// defender's LCP is smaller: defender is already known larger,
		// stays parked as the loser, contender continues up unchanged.
	}

	return contender
}

func (t *loserTree) removeTop(streamIdx int) AS {
	top := t.streams[streamIdx][0]
	top.LCP = t.lcps[streamIdx]

	t.streams[streamIdx] = t.streams[streamIdx][1:]
	if !t.streams[streamIdx].empty() {
		t.lcps[streamIdx] = t.streams[streamIdx].head()
	}

	return top
}

// deleteMin removes and returns the globally smallest head, with its LCP
// field updated to the true LCP against the previously returned element.
func (t *loserTree) deleteMin() AS {
	contender := t.nodes[0]
	min := t.removeTop(contender)

	k := len(t.streams)
	for nodeIdx := (k + contender) >> 1; nodeIdx >= 1; nodeIdx >>= 1 {
		contender = t.updateNode(nodeIdx, contender)
	}
	t.nodes[0] = contender

	return min
}

// writeElementsToStream is a fused loop of n deleteMin results, writing only
// the text handles (the merge output is a string-pointer array, not AS).
func (t *loserTree) writeElementsToStream(dst [][]byte, n int) {
	contender := t.nodes[0]
	k := len(t.streams)

	for i := 0; i < n; i++ {
		dst[i] = t.removeTop(contender).Text

		for nodeIdx := (k + contender) >> 1; nodeIdx >= 1; nodeIdx >>= 1 {
			contender = t.updateNode(nodeIdx, contender)
		}
	}

	t.nodes[0] = contender
}

// remainingStreams snapshots each stream's current (unconsumed) range. The
// returned Streams alias the same backing arrays as the tree's internal
// cursors, so they remain valid after the tree itself is discarded.
func (t *loserTree) remainingStreams() []Stream {
	out := make([]Stream, len(t.streams))
	copy(out, t.streams)
	return out
}

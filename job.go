// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcpsort

// Job is one unit of work enqueued into a [JobQueue]. Run returns true if
// the job is done and may be discarded. Every job defined in this package
// always returns true, including a [KWayMergeJob] that self-split (it has
// already enqueued the jobs that finish its work). The queue's worker loop
// does not act on the result.
type Job interface {
	Run(ctx *Context) bool
}

// CopyJob verbatim-moves a single stream's string handles to the output.
// The bucket-splitter only ever creates a CopyJob for a bucket that is the
// unique contents of one stream, so the output is already globally sorted —
// no comparison work is needed.
type CopyJob struct {
	Input  Stream
	Output [][]byte
}

func (j *CopyJob) Run(ctx *Context) bool {
	for i := range j.Input {
		j.Output[i] = j.Input[i].Text
	}
	return true
}

// BinaryMergeJob two-way LCP-merges the sub-ranges that two distinct input
// streams contribute to one bucket. Both heads have their LCP reset to 0
// before merging, so no LCP from a head's former predecessor carries over.
type BinaryMergeJob struct {
	A, B   Stream
	Output [][]byte
}

func (j *BinaryMergeJob) Run(ctx *Context) bool {
	if !j.A.empty() {
		j.A[0].LCP = 0
	}
	if !j.B.empty() {
		j.B[0].LCP = 0
	}
	mergeTwoWay(j.Output, j.A, j.B)
	return true
}

// mergeTwoWay performs a standard LCP-aware two-way merge: the same
// case analysis the loser tree uses for two contenders, specialized to a
// pair of streams instead of a tournament. Output is text handles only.
func mergeTwoWay(dst [][]byte, a, b Stream) {
	var lcpA, lcpB uint32
	i, j, o := 0, 0, 0

	for i < len(a) && j < len(b) {
		var aWins bool

		switch {
		case lcpA > lcpB:
			aWins = true
		case lcpA < lcpB:
			aWins = false
		default:
			lcp := lcpA
			ta, tb := a[i].Text, b[j].Text
			for int(lcp) < len(ta) && int(lcp) < len(tb) && ta[lcp] != 0 && ta[lcp] == tb[lcp] {
				lcp++
			}
			var byteA, byteB byte
			if int(lcp) < len(ta) {
				byteA = ta[lcp]
			}
			if int(lcp) < len(tb) {
				byteB = tb[lcp]
			}
			if byteA < byteB {
				aWins = true
				lcpB = lcp
			} else {
				aWins = false
				lcpA = lcp
			}
		}

		if aWins {
			dst[o] = a[i].Text
			o++
			i++
			if i < len(a) {
				lcpA = a[i].LCP
			}
		} else {
			dst[o] = b[j].Text
			o++
			j++
			if j < len(b) {
				lcpB = b[j].LCP
			}
		}
	}

	for ; i < len(a); i++ {
		dst[o] = a[i].Text
		o++
	}
	for ; j < len(b); j++ {
		dst[o] = b[j].Text
		o++
	}
}

// KWayMergeJob streams a K-way LCP merge (K a power of two, 4 <= K <= 64,
// padded with empty streams by the bucket-splitter as needed) through a
// loser tree in chunks of Config.MergeBulkSize elements, consulting the
// work-sharing controller at each chunk boundary.
type KWayMergeJob struct {
	Streams     []Stream
	Output      [][]byte
	Length      int
	BaseLcp     uint32
	NextBaseLcp uint32
}

func (j *KWayMergeJob) Run(ctx *Context) bool {
	for k := range j.Streams {
		if !j.Streams[k].empty() {
			j.Streams[k][0].LCP = j.BaseLcp
		}
	}

	tree := newLoserTree(j.Streams)

	if !j.mergeToOutput(ctx, tree) {
		remaining := tree.remainingStreams()
		createJobs(ctx, j.Output, remaining, j.NextBaseLcp)
		ctx.shared.releaseLongest(len(j.Output))
	}

	return true
}

// mergeToOutput writes the merge's entire output in MergeBulkSize chunks,
// stopping early (returning false) if the work-sharing controller decides
// this job should self-split instead of continuing.
func (j *KWayMergeJob) mergeToOutput(ctx *Context, tree *loserTree) bool {
	bulk := ctx.cfg.mergeBulkSize
	length := j.Length
	lastLength := length

	for length >= bulk {
		if ctx.shared.chunkBoundary(ctx.cfg, ctx.Queue, lastLength, length) {
			return false
		}
		tree.writeElementsToStream(j.Output, bulk)
		j.Output = j.Output[bulk:]
		lastLength = length
		length -= bulk
	}

	tree.writeElementsToStream(j.Output, length)
	return true
}

// InitialSplitJob is the one-shot seed that kicks off a merge: it invokes
// the bucket-splitter at depth 0 over the K partition ranges.
type InitialSplitJob struct {
	Output  [][]byte
	Streams []Stream
}

func (j *InitialSplitJob) Run(ctx *Context) bool {
	createJobs(ctx, j.Output, j.Streams, 0)
	return true
}

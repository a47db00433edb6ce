// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcpsort

import "bytes"

// maxMergeWidth is the largest K a single [KWayMergeJob] may merge in one
// loser tree. A bucket contains at most one sub-range per input stream, so
// this is only exceeded with more than 64 input streams; emitBucket then
// fails the sort with [ErrUnsupportedWidth].
const maxMergeWidth = 64

// minSampledBuckets is how many buckets createJobs samples before it is
// willing to shrink keyWidth: below this, one unlucky bucket skews the
// decision.
const minSampledBuckets = 30

// createJobs is the adaptive bucket-splitter. It scans the
// given streams in lockstep, grouping their fronts by a keyWidth-byte packed
// key read at byte offset baseLcp, and enqueues one child job per bucket:
// a [CopyJob] if the bucket came from a single stream, a [BinaryMergeJob] if
// from exactly two, otherwise a [KWayMergeJob].
//
// output must have exactly as many slots as the combined length of streams;
// createJobs partitions it across buckets in ascending key order.
func createJobs(ctx *Context, output [][]byte, streams []Stream, baseLcp uint32) {
	keyWidth := ctx.cfg.initialKeyWidth
	if keyWidth < 1 {
		keyWidth = 1
	}

	var sampled, small int

	for {
		rem := make([]Stream, len(streams))
		copy(rem, streams)

		anyLeft := false
		for _, s := range rem {
			if !s.empty() {
				anyLeft = true
				break
			}
		}
		if !anyLeft {
			return
		}

		key, ok := leadKey(rem, baseLcp, keyWidth)
		if !ok {
			// Every remaining stream is exhausted at this depth: nothing
			// left to bucket at this level. Shouldn't happen given anyLeft,
			// kept as a defensive stop to avoid an infinite loop.
			return
		}

		bucket := make([]Stream, len(rem))
		length := 0
		for i, s := range rem {
			n := matchRun(s, baseLcp, keyWidth, key)
			bucket[i] = s[:n]
			rem[i] = s[n:]
			length += n
		}

		emitBucket(ctx, output[:length], bucket, baseLcp, keyWidth)
		output = output[length:]
		streams = rem

		sampled++
		if length < ctx.cfg.mergeBulkSize {
			small++
		}
		if sampled >= minSampledBuckets && 2*small > sampled && keyWidth > 1 {
			keyWidth--
			sampled, small = 0, 0
		}
	}
}

// leadKey returns the smallest packed key among the non-empty streams'
// heads, each read as keyWidth bytes starting at baseLcp, and whether any
// stream had a head to read.
func leadKey(streams []Stream, baseLcp uint32, keyWidth int) ([]byte, bool) {
	var min []byte
	for _, s := range streams {
		if s.empty() {
			continue
		}
		if k := packWord(s[0].Text, baseLcp, keyWidth); min == nil || bytes.Compare(k, min) < 0 {
			min = k
		}
	}
	return min, min != nil
}

// matchRun returns how many leading elements of s share key as their
// keyWidth-byte packed key at offset baseLcp. Because s is itself locally
// sorted and LCP-annotated, the run is always a prefix of s.
func matchRun(s Stream, baseLcp uint32, keyWidth int, key []byte) int {
	n := 0
	for n < len(s) {
		if n > 0 && int(s[n].LCP) >= int(baseLcp)+keyWidth {
			// LCP against the previous element already covers this whole
			// key window, so it is guaranteed equal without re-reading it.
			n++
			continue
		}
		if !bytes.Equal(packWord(s[n].Text, baseLcp, keyWidth), key) {
			break
		}
		n++
	}
	return n
}

// emitBucket enqueues the job for a single bucket, given the per-stream
// sub-ranges that compose it (some possibly empty).
func emitBucket(ctx *Context, output [][]byte, bucket []Stream, baseLcp uint32, keyWidth int) {
	var nonEmpty []int
	for i, s := range bucket {
		if !s.empty() {
			nonEmpty = append(nonEmpty, i)
		}
	}

	switch len(nonEmpty) {
	case 0:
		return
	case 1:
		ctx.Queue.Enqueue(&CopyJob{Input: bucket[nonEmpty[0]], Output: output})
	case 2:
		ctx.Queue.Enqueue(&BinaryMergeJob{A: bucket[nonEmpty[0]], B: bucket[nonEmpty[1]], Output: output})
	default:
		if len(nonEmpty) > maxMergeWidth {
			ctx.fail(ErrUnsupportedWidth)
			return
		}
		padded := nextPowerOfTwo(len(nonEmpty))
		streams := make([]Stream, padded)
		for i, idx := range nonEmpty {
			streams[i] = bucket[idx]
		}
		// loserTree.init's leaf-halving construction requires K to be a
		// power of two; pad with empty streams rather than shrinking K.
		length := len(output)
		if int64(length) > ctx.shared.lengthOfLongestJob.LoadAcquire() {
			ctx.shared.lengthOfLongestJob.StoreRelease(int64(length))
		}
		ctx.Queue.Enqueue(&KWayMergeJob{
			Streams:     streams,
			Output:      output,
			Length:      length,
			BaseLcp:     baseLcp,
			NextBaseLcp: baseLcp + uint32(keyWidth),
		})
	}
}

// packWord reads up to width bytes of text starting at offset, treating a
// NUL byte or the end of text as an implicit terminator: bytes at or past
// the terminator pack as zero, matching NUL-terminated string comparison
// semantics.
func packWord(text []byte, offset uint32, width int) []byte {
	key := make([]byte, width)
	for i := 0; i < width; i++ {
		pos := int(offset) + i
		if pos >= len(text) || text[pos] == 0 {
			break
		}
		key[i] = text[pos]
	}
	return key
}

// nextPowerOfTwo returns the smallest power of two >= n (or 1 if n <= 1).
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

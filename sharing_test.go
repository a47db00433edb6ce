// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcpsort

import (
	"bytes"
	"math/rand"
	"testing"
)

// TestMergeWithWorkSharingUnderContention drives a single huge K-way merge
// job alongside many idle workers, with work sharing enabled and a low
// threshold so self-splits can occur, and checks that the merged output is
// sorted and free of NUL bytes. It does not assert that a self-split
// happened.
func TestMergeWithWorkSharingUnderContention(t *testing.T) {
	if RaceEnabled {
		t.Skip("self-split cadence is a racy performance hint, not verifiable under -race")
	}

	rng := rand.New(rand.NewSource(5))
	const numStreams = 8
	const perStream = 20000

	var all []string
	streams := make([]Stream, numStreams)
	for i := range streams {
		var words []string
		for j := 0; j < perStream; j++ {
			w := randWord(rng, 3, 10)
			words = append(words, w)
			all = append(all, w)
		}
		streams[i] = streamOf(words...)
	}
	total := len(all)

	cfg := *NewConfig().
		MergeBulkSize(64).
		ShareWorkThreshold(256).
		WorkSharing(true)
	q := newJobQueue(4096)
	ctx := newContext(cfg, q)

	output := make([][]byte, total)
	ctx.shared.lengthOfLongestJob.StoreRelease(int64(total))
	q.Enqueue(&KWayMergeJob{Streams: streams, Output: output, Length: total})

	q.Loop(ctx, 8)

	if err := ctx.Err(); err != nil {
		t.Fatalf("merge reported error: %v", err)
	}

	sorted := make([]string, total)
	for i, v := range output {
		sorted[i] = string(v)
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1] > sorted[i] {
			t.Fatalf("output not sorted at %d: %q > %q", i, sorted[i-1], sorted[i])
		}
	}

	for _, s := range output {
		if bytes.Contains(s, []byte{0}) {
			t.Fatalf("unexpected NUL in output %q", s)
		}
	}
}

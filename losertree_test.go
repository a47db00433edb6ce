// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcpsort

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"
)

func streamOf(words ...string) Stream {
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	s := make(Stream, len(sorted))
	for i, w := range sorted {
		var lcp uint32
		if i > 0 {
			lcp = commonPrefix([]byte(sorted[i-1]), []byte(w))
		}
		s[i] = AS{Text: []byte(w), LCP: lcp}
	}
	return s
}

func drainAll(t *testing.T, tree *loserTree, total int) [][]byte {
	t.Helper()
	out := make([][]byte, total)
	tree.writeElementsToStream(out, total)
	return out
}

func TestLoserTreeMergesSortedOrder(t *testing.T) {
	streams := []Stream{
		streamOf("apple", "banana", "cherry"),
		streamOf("avocado", "blueberry"),
		streamOf("apricot"),
		streamOf(),
	}
	total := 0
	for _, s := range streams {
		total += len(s)
	}

	tree := newLoserTree(streams)
	out := drainAll(t, tree, total)

	for i := 1; i < len(out); i++ {
		if bytes.Compare(out[i-1], out[i]) > 0 {
			t.Fatalf("output not sorted at %d: %q > %q", i, out[i-1], out[i])
		}
	}
	if len(out) != total {
		t.Fatalf("got %d elements, want %d", len(out), total)
	}
}

func TestLoserTreePartialDrainLeavesRemainder(t *testing.T) {
	streams := []Stream{
		streamOf("a", "c", "e"),
		streamOf("b", "d", "f"),
	}
	tree := newLoserTree(streams)

	out := make([][]byte, 3)
	tree.writeElementsToStream(out, 3)

	want := []string{"a", "b", "c"}
	for i, w := range want {
		if string(out[i]) != w {
			t.Fatalf("out[%d] = %q, want %q", i, out[i], w)
		}
	}

	remaining := tree.remainingStreams()
	var left []string
	for _, s := range remaining {
		for _, as := range s {
			left = append(left, string(as.Text))
		}
	}
	sort.Strings(left)
	wantLeft := []string{"d", "e", "f"}
	if len(left) != len(wantLeft) {
		t.Fatalf("remaining = %v, want %v", left, wantLeft)
	}
	for i := range left {
		if left[i] != wantLeft[i] {
			t.Fatalf("remaining = %v, want %v", left, wantLeft)
		}
	}
}

func TestLoserTreeRandomizedAgainstSort(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const numStreams = 8
	const perStream = 40

	var all []string
	streams := make([]Stream, numStreams)
	for i := range streams {
		var words []string
		for j := 0; j < perStream; j++ {
			w := randWord(rng, 1, 6)
			words = append(words, w)
			all = append(all, w)
		}
		streams[i] = streamOf(words...)
	}
	sort.Strings(all)

	tree := newLoserTree(streams)
	out := drainAll(t, tree, len(all))

	for i, w := range all {
		if string(out[i]) != w {
			t.Fatalf("mismatch at %d: got %q want %q", i, out[i], w)
		}
	}
}

func randWord(rng *rand.Rand, min, max int) string {
	n := min + rng.Intn(max-min+1)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + rng.Intn(4))
	}
	return string(b)
}

func TestLoserTreeSingleStream(t *testing.T) {
	streams := []Stream{streamOf("x", "y", "z")}
	tree := newLoserTree(streams)
	out := drainAll(t, tree, 3)
	want := []string{"x", "y", "z"}
	for i, w := range want {
		if string(out[i]) != w {
			t.Fatalf("out[%d] = %q, want %q", i, out[i], w)
		}
	}
}

func TestLoserTreeAllEmptyStreams(t *testing.T) {
	streams := []Stream{streamOf(), streamOf(), streamOf(), streamOf()}
	tree := newLoserTree(streams)
	out := drainAll(t, tree, 0)
	if len(out) != 0 {
		t.Fatalf("expected no output, got %v", out)
	}
}

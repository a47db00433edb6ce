// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcpsort_test

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"

	"code.hybscloud.com/lcpsort"
)

func isSorted(strings [][]byte) bool {
	for i := 1; i < len(strings); i++ {
		if bytes.Compare(strings[i-1], strings[i]) > 0 {
			return false
		}
	}
	return true
}

func randomStrings(n int, rng *rand.Rand) [][]byte {
	out := make([][]byte, n)
	for i := range out {
		l := 1 + rng.Intn(12)
		b := make([]byte, l)
		for j := range b {
			b[j] = byte('a' + rng.Intn(6))
		}
		out[i] = b
	}
	return out
}

func cloneStrings(in [][]byte) [][]byte {
	out := make([][]byte, len(in))
	for i, s := range in {
		out[i] = append([]byte(nil), s...)
	}
	return out
}

func TestSortMatchesStandardLibrary(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{0, 1, 2, 3, 10, 137, 5000} {
		in := randomStrings(n, rng)
		want := cloneStrings(in)
		sort.Slice(want, func(i, j int) bool { return bytes.Compare(want[i], want[j]) < 0 })

		got := cloneStrings(in)
		if err := lcpsort.Sort(got, nil); err != nil {
			t.Fatalf("n=%d: Sort returned %v", n, err)
		}
		if !isSorted(got) {
			t.Fatalf("n=%d: result not sorted: %q", n, got)
		}
		for i := range want {
			if !bytes.Equal(got[i], want[i]) {
				t.Fatalf("n=%d index %d: got %q want %q", n, i, got[i], want[i])
			}
		}
	}
}

func TestSortManyWorkersManyPartitions(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	in := randomStrings(20000, rng)
	want := cloneStrings(in)
	sort.Slice(want, func(i, j int) bool { return bytes.Compare(want[i], want[j]) < 0 })

	cfg := lcpsort.NewConfig().NumWorkers(16).MergeBulkSize(64).ShareWorkThreshold(32)
	got := cloneStrings(in)
	if err := lcpsort.Sort(got, cfg); err != nil {
		t.Fatalf("Sort returned %v", err)
	}
	for i := range want {
		if !bytes.Equal(got[i], want[i]) {
			t.Fatalf("index %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestSortAllEqualStrings(t *testing.T) {
	in := make([][]byte, 500)
	for i := range in {
		in[i] = []byte("identical")
	}
	if err := lcpsort.Sort(in, nil); err != nil {
		t.Fatalf("Sort returned %v", err)
	}
	for _, s := range in {
		if string(s) != "identical" {
			t.Fatalf("got %q, want identical", s)
		}
	}
}

func TestSortSharedPrefixLongerThanKeyWidth(t *testing.T) {
	var in [][]byte
	for i := 0; i < 200; i++ {
		in = append(in, []byte("prefix-shared-across-every-entry-"+string(rune('a'+i%26))))
	}
	want := cloneStrings(in)
	sort.Slice(want, func(i, j int) bool { return bytes.Compare(want[i], want[j]) < 0 })

	cfg := lcpsort.NewConfig().InitialKeyWidth(2)
	if err := lcpsort.Sort(in, cfg); err != nil {
		t.Fatalf("Sort returned %v", err)
	}
	for i := range want {
		if !bytes.Equal(in[i], want[i]) {
			t.Fatalf("index %d: got %q want %q", i, in[i], want[i])
		}
	}
}

func TestSortInternalNULByte(t *testing.T) {
	in := [][]byte{
		{'a', 'b', 0, 'z'},
		{'a', 'b', 0, 'a'},
		{'a', 'a'},
	}
	if err := lcpsort.Sort(in, nil); err != nil {
		t.Fatalf("Sort returned %v", err)
	}
	if string(in[0]) != "aa" {
		t.Fatalf("first = %q, want \"aa\"", in[0])
	}
}

func TestSortOneAndZero(t *testing.T) {
	if err := lcpsort.Sort(nil, nil); err != nil {
		t.Fatalf("Sort(nil) = %v", err)
	}
	one := [][]byte{[]byte("solo")}
	if err := lcpsort.Sort(one, nil); err != nil {
		t.Fatalf("Sort(one) = %v", err)
	}
	if string(one[0]) != "solo" {
		t.Fatalf("one = %q", one)
	}
}

func TestSortSinglePartitionEmptyOthers(t *testing.T) {
	in := randomStrings(10, rand.New(rand.NewSource(3)))
	cfg := lcpsort.NewConfig().NumWorkers(1)
	want := cloneStrings(in)
	sort.Slice(want, func(i, j int) bool { return bytes.Compare(want[i], want[j]) < 0 })

	if err := lcpsort.Sort(in, cfg); err != nil {
		t.Fatalf("Sort returned %v", err)
	}
	for i := range want {
		if !bytes.Equal(in[i], want[i]) {
			t.Fatalf("index %d: got %q want %q", i, in[i], want[i])
		}
	}
}

func TestSortIdempotentOnAlreadySorted(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	in := randomStrings(1000, rng)
	if err := lcpsort.Sort(in, nil); err != nil {
		t.Fatalf("first Sort: %v", err)
	}
	again := cloneStrings(in)
	if err := lcpsort.Sort(again, nil); err != nil {
		t.Fatalf("second Sort: %v", err)
	}
	for i := range in {
		if !bytes.Equal(in[i], again[i]) {
			t.Fatalf("index %d changed on re-sort: %q vs %q", i, in[i], again[i])
		}
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command lcpsortbench generates a batch of random byte strings and times
// lcpsort.Sort against them, for ad hoc tuning of merge bulk size, key
// width, and worker count.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"code.hybscloud.com/lcpsort"
)

func main() {
	n := flag.Int("n", 1_000_000, "number of strings to sort")
	minLen := flag.Int("min-len", 4, "minimum string length")
	maxLen := flag.Int("max-len", 64, "maximum string length")
	alphabet := flag.Int("alphabet", 26, "number of distinct bytes used, starting at 'a'")
	workers := flag.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	bulkSize := flag.Int("bulk-size", 0, "merge bulk size (0 = default)")
	keyWidth := flag.Int("key-width", 0, "initial bucket key width in bytes (0 = default)")
	seed := flag.Int64("seed", 1, "PRNG seed")
	flag.Parse()

	if *alphabet < 1 || *alphabet > 256 {
		fmt.Fprintln(os.Stderr, "lcpsortbench: alphabet must be between 1 and 256")
		os.Exit(2)
	}

	rng := rand.New(rand.NewSource(*seed))
	strings := make([][]byte, *n)
	for i := range strings {
		l := *minLen
		if *maxLen > *minLen {
			l += rng.Intn(*maxLen - *minLen + 1)
		}
		b := make([]byte, l)
		for j := range b {
			b[j] = byte('a' + rng.Intn(*alphabet))
		}
		strings[i] = b
	}

	cfg := lcpsort.NewConfig()
	if *workers > 0 {
		cfg.NumWorkers(*workers)
	}
	if *bulkSize > 0 {
		cfg.MergeBulkSize(*bulkSize)
	}
	if *keyWidth > 0 {
		cfg.InitialKeyWidth(*keyWidth)
	}

	start := time.Now()
	if err := lcpsort.Sort(strings, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "lcpsortbench: sort failed: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	fmt.Printf("sorted %d strings in %s (%.2f Melem/s)\n", *n, elapsed, float64(*n)/elapsed.Seconds()/1e6)
}

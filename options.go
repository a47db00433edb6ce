// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcpsort

import (
	"os"

	"github.com/rs/zerolog"
)

// Default tuning constants.
const (
	defaultMergeBulkSize   = 3000
	defaultInitialKeyWidth = 8
	defaultShareThreshold  = 3 * defaultMergeBulkSize
	defaultQueueCapacity   = 4096
	defaultUseWorkSharing  = true
)

// Config configures a call to [Sort]. Use [NewConfig] to obtain one with
// defaults filled in, then chain setters.
type Config struct {
	threadPool ThreadPool
	localSorter LocalSorter
	logger zerolog.Logger

	useWorkSharing     bool
	shareWorkThreshold int
	mergeBulkSize      int
	initialKeyWidth    int
	queueCapacity      int
	numWorkers         int
}

// NewConfig returns a Config with reasonable defaults: no thread pool
// (workers are plain goroutines left to the Go scheduler), the default
// comparison-sort local sorter, a logger writing to stderr, work-sharing
// enabled, and moderate bulk/key-width defaults.
func NewConfig() *Config {
	return &Config{
		localSorter:        DefaultLocalSorter{},
		logger:             zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
		useWorkSharing:     defaultUseWorkSharing,
		shareWorkThreshold: defaultShareThreshold,
		mergeBulkSize:      defaultMergeBulkSize,
		initialKeyWidth:    defaultInitialKeyWidth,
		queueCapacity:      defaultQueueCapacity,
		numWorkers:         0,
	}
}

// ThreadPool binds workers to a [ThreadPool] (for NUMA-aware affinity
// pinning). Passing nil (the default) leaves worker placement to the Go
// runtime scheduler.
func (c *Config) ThreadPool(p ThreadPool) *Config {
	c.threadPool = p
	return c
}

// LocalSorter overrides the per-partition comparison sort used before the
// merge begins.
func (c *Config) LocalSorter(s LocalSorter) *Config {
	c.localSorter = s
	return c
}

// Logger overrides the structured logger used for fatal-error reporting.
func (c *Config) Logger(l zerolog.Logger) *Config {
	c.logger = l
	return c
}

// WorkSharing toggles the self-split work-sharing controller. Disabling it
// trades load balance for a simpler, more predictable execution trace;
// useful when diagnosing a merge bug.
func (c *Config) WorkSharing(enabled bool) *Config {
	c.useWorkSharing = enabled
	return c
}

// ShareWorkThreshold sets the remaining length a running K-way merge job
// must exceed before it is eligible to self-split.
func (c *Config) ShareWorkThreshold(n int) *Config {
	c.shareWorkThreshold = n
	return c
}

// MergeBulkSize sets how many elements a [KWayMergeJob] writes per chunk
// before consulting the work-sharing controller again.
func (c *Config) MergeBulkSize(n int) *Config {
	c.mergeBulkSize = n
	return c
}

// InitialKeyWidth sets the bucket key width, in bytes, that every run of
// the splitter starts from (the initial split and each self-split). Within
// one run it adapts downward; it never adapts upward.
func (c *Config) InitialKeyWidth(n int) *Config {
	c.initialKeyWidth = n
	return c
}

// QueueCapacity sets the job queue's requested capacity (rounded up to the
// next power of two).
func (c *Config) QueueCapacity(n int) *Config {
	c.queueCapacity = n
	return c
}

// NumWorkers sets how many worker goroutines drive the job queue. Zero (the
// default) uses [runtime.GOMAXPROCS](0).
func (c *Config) NumWorkers(n int) *Config {
	c.numWorkers = n
	return c
}

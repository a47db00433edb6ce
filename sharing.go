// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcpsort

// chunkBoundary implements the work-sharing controller's policy, consulted
// by a running K-way merge job at every bulk-emission boundary.
//
// lastLength is the remaining output length as of the previous boundary (or
// the job's total length, on the first boundary); length is the remaining
// output length now, before this chunk is written. It returns true iff the
// job should stop and self-split instead of writing the next chunk.
//
// lengthOfLongestJob is a racy hint by design: concurrent
// updates from sibling merge jobs never corrupt state, they only affect
// which job gets to claim the "longest" title and therefore the right to
// self-split, which affects throughput, not correctness.
func (s *sharedState) chunkBoundary(cfg Config, queue *JobQueue, lastLength, length int) bool {
	if s.lengthOfLongestJob.LoadAcquire() == int64(lastLength) {
		s.lengthOfLongestJob.StoreRelease(int64(length))
	}

	if s.lengthOfLongestJob.LoadAcquire() < int64(length) {
		s.lengthOfLongestJob.StoreRelease(int64(length))
		return false
	}

	return cfg.useWorkSharing &&
		queue.HasIdle() &&
		length > cfg.shareWorkThreshold &&
		s.lengthOfLongestJob.LoadAcquire() == int64(length)
}

// releaseLongest hands back the "longest job" title if this job still held
// it when it self-split, so some other running job can claim it next.
func (s *sharedState) releaseLongest(length int) {
	if s.lengthOfLongestJob.LoadAcquire() == int64(length) {
		s.lengthOfLongestJob.StoreRelease(0)
	}
}

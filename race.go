// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package lcpsort

// RaceEnabled is true when the race detector is active. Tests use it to
// skip the timing-sensitive work-sharing stress test: the self-split decision
// is deliberately racy by design, and the race detector's instrumentation
// slows goroutines enough to change which job wins the "longest" title.
const RaceEnabled = true

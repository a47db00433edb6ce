// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package numa

// setAffinity is a stub for platforms without sched_setaffinity; CPU
// pinning is a best-effort optimization, never a correctness requirement.
func setAffinity(cpu int) error {
	return nil
}

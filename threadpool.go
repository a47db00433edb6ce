// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcpsort

import "code.hybscloud.com/lcpsort/numa"

// ThreadPool is the worker-placement collaborator; see [numa.ThreadPool].
type ThreadPool = numa.ThreadPool

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcpsort

import "code.hybscloud.com/lcpsort/localsort"

// LocalSorter is the per-partition sort collaborator run before the merge
// begins; see [localsort.Sorter].
type LocalSorter = localsort.Sorter

// DefaultLocalSorter is the Sorter [NewConfig] uses when none is supplied.
type DefaultLocalSorter = localsort.Comparison

// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oases

import "sort"

// N50 returns the N50 of the given sequence lengths: the length of the
// sequence at which the cumulative length of the sequences sorted in
// descending order of length first exceeds half the total length. N50
// returns zero for an empty or zero-length set of sequences. The lengths
// slice is not altered.
func N50(lengths []int) int {
	l := append([]int(nil), lengths...)
	sort.Sort(sort.Reverse(sort.IntSlice(l)))
	var total int
	for _, v := range l {
		total += v
	}
	var csum int
	for _, v := range l {
		csum += v
		if 2*csum > total {
			return v
		}
	}
	return 0
}

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "sort"

// Locate returns the index of the rightmost element of xs that is
// less than or equal to v. xs must be sorted in increasing order.
// If v is less than every element of xs, Locate returns -1.
func Locate[F Float](xs []F, v F) int {
	// sort.Search finds the leftmost index where xs[i] > v; its
	// predecessor is the rightmost index where xs[i] <= v.
	return sort.Search(len(xs), func(i int) bool { return xs[i] > v }) - 1
}

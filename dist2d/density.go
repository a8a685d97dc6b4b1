// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist2d

import "github.com/aclements/go-gridstats/grid"

// Density returns the normalized density at (x, y), interpolated
// bilinearly between the grid nodes. Query points outside the grid
// domain fail with ErrOutOfBounds.
func (d *Distribution[F]) Density(x, y F) (F, error) {
	if !d.normalized {
		return 0, ErrNotNormalized
	}
	surf := grid.Bilinear[F]{Xs: d.xs, Ys: d.ys, Z: d.prob}
	return surf.At(x, y)
}

// DensityFill is Density with the soft out-of-bounds policy: query
// points outside the grid domain return fill instead of an error.
func (d *Distribution[F]) DensityFill(x, y, fill F) (F, error) {
	if !d.normalized {
		return 0, ErrNotNormalized
	}
	surf := grid.Bilinear[F]{Xs: d.xs, Ys: d.ys, Z: d.prob, AllowOutOfBounds: true, Fill: fill}
	return surf.At(x, y)
}

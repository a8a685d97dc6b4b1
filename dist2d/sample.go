// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist2d

import (
	"fmt"
	"math"

	"github.com/aclements/go-gridstats/grid"
)

// Sample draws a point from the distribution using four uniform
// variates from src. The point always lies within Bounds.
func (d *Distribution[F]) Sample(src Source) (x, y F, err error) {
	var xi [4]F
	for i := range xi {
		xi[i] = F(src.Float64())
	}
	return d.SampleUniforms(xi)
}

// SampleUniforms draws the point determined by the four uniform
// variates in xi, each in [0, 1). Fixed variates always produce the
// same point, which makes sampling reproducible without a Source.
//
// The first two variates select a grid cell by inverting the marginal
// CDF over y and then the conditional CDF over x. The last two place
// the point within the cell by analytically inverting the bilinear
// density surface restricted to it.
func (d *Distribution[F]) SampleUniforms(xi [4]F) (x, y F, err error) {
	if !d.normalized {
		return 0, 0, ErrNotNormalized
	}

	// Variates below the first CDF entry belong to bin 0, where
	// Locate would report -1.
	ybin := 0
	if xi[0] >= d.cdfy[0] {
		ybin = grid.Locate(d.cdfy, xi[0]) + 1
	}
	xbin := 0
	if xi[1] >= d.cdf[ybin][0] {
		xbin = grid.Locate(d.cdf[ybin], xi[1]) + 1
	}

	// Density over the selected cell in unit coordinates,
	// z(u, v) = b1 + b2·u + b3·v + b4·u·v.
	b1 := d.prob[xbin][ybin]
	b2 := d.prob[xbin+1][ybin] - b1
	b3 := d.prob[xbin][ybin+1] - b1
	b4 := d.prob[xbin+1][ybin+1] - b2 - b3 - b1

	// v from the cell density integrated over u, then u from the
	// density along the line at that v.
	v, err := invertCellCDF(0.5*(b3+0.5*b4), b1+0.5*b2, xi[2])
	if err != nil {
		return 0, 0, err
	}
	u, err := invertCellCDF(0.5*(b2+b4*v), b1+b3*v, xi[3])
	if err != nil {
		return 0, 0, err
	}

	x = u*(d.xs[xbin+1]-d.xs[xbin]) + d.xs[xbin]
	y = v*(d.ys[ybin+1]-d.ys[ybin]) + d.ys[ybin]
	return x, y, nil
}

// invertCellCDF solves for t ∈ [0, 1] such that the integral of the
// linear density a·2t + b from 0 to t equals the fraction xi of its
// integral over [0, 1]; that is, the root of a·t² + b·t − xi·(a+b).
// The root on the unit interval is selected by the sign of a, using
// the subtraction-free form of the quadratic formula in each case.
func invertCellCDF[F Float](a, b, xi F) (F, error) {
	c := -xi * (a + b)
	if a == 0 {
		// Constant density along this axis.
		return -c / b, nil
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, fmt.Errorf("discriminant %v with a=%v b=%v c=%v: %w", disc, a, b, c, ErrNumericInstability)
	}
	delta := F(math.Sqrt(float64(disc)))
	if a < 0 {
		if b > delta {
			return (-b + delta) / (2 * a), nil
		}
		return (-b - delta) / (2 * a), nil
	}
	if -b < delta {
		return (-b + delta) / (2 * a), nil
	}
	return (-b - delta) / (2 * a), nil
}

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist2d

import (
	"fmt"
	"math"
	"slices"
)

// A Distribution is a continuous probability distribution over a
// rectangular domain, tabulated on a rectilinear grid of density
// samples.
//
// A Distribution is immutable once built and is safe for concurrent
// sampling and evaluation from multiple goroutines.
type Distribution[F Float] struct {
	nx, ny int
	xs, ys []F // node coordinates, strictly increasing

	// prob[i][j] is the density at node (xs[i], ys[j]), scaled by
	// the same factor that normalizes pdf.
	prob [][]F

	// pdf[i][j] is the probability mass of cell (i, j); the masses
	// sum to 1.
	pdf [][]F

	// cdf[j][i] is the cumulative mass along x within y-column j,
	// normalized so cdf[j][nx-2] == 1. Stored column-major so each
	// column is a contiguous searchable sequence.
	cdf [][]F

	// pdfy[j] is the total mass of y-column j before cdfy's own
	// normalization. cdfy is the running sum of pdfy scaled so its
	// last entry is 1.
	pdfy []F
	cdfy []F

	normalized bool
}

// New builds a Distribution from node coordinates and density
// samples. xs and ys must each hold at least two strictly increasing
// values, and prob must be a len(xs)×len(ys) grid of nonnegative
// finite densities with nonzero total mass. The densities need not be
// normalized; New rescales them so the binned mass over the domain
// is 1.
//
// New copies its arguments, so the caller may reuse them.
//
// The mass of each cell is estimated as the mean of its four corner
// densities times the cell area, which is the exact integral of the
// bilinear surface through the corners. Sampling inverts that same
// surface, so the two agree exactly.
func New[F Float](xs, ys []F, prob [][]F) (*Distribution[F], error) {
	nx, ny := len(xs), len(ys)
	if len(prob) != nx {
		return nil, fmt.Errorf("density grid has %d rows for %d x nodes: %w", len(prob), nx, ErrDimensionMismatch)
	}
	for i, row := range prob {
		if len(row) != ny {
			return nil, fmt.Errorf("density grid row %d has %d entries for %d y nodes: %w", i, len(row), ny, ErrDimensionMismatch)
		}
	}
	if nx < 2 || ny < 2 {
		return nil, fmt.Errorf("%d×%d grid has no cells: %w", nx, ny, ErrDegenerateDistribution)
	}
	if err := checkAxis("x", xs); err != nil {
		return nil, err
	}
	if err := checkAxis("y", ys); err != nil {
		return nil, err
	}
	for i, row := range prob {
		for j, p := range row {
			if p < 0 || math.IsNaN(float64(p)) || math.IsInf(float64(p), 0) {
				return nil, fmt.Errorf("density %v at node (%d, %d): %w", p, i, j, ErrDegenerateDistribution)
			}
		}
	}

	d := &Distribution[F]{
		nx: nx, ny: ny,
		xs: slices.Clone(xs), ys: slices.Clone(ys),
	}
	d.prob = make([][]F, nx)
	for i, row := range prob {
		d.prob[i] = slices.Clone(row)
	}

	// Bin the node densities into cell masses.
	d.pdf = make([][]F, nx-1)
	var norm F
	for i := 0; i < nx-1; i++ {
		d.pdf[i] = make([]F, ny-1)
		for j := 0; j < ny-1; j++ {
			area := (xs[i+1] - xs[i]) * (ys[j+1] - ys[j])
			mass := (prob[i][j] + prob[i+1][j] + prob[i][j+1] + prob[i+1][j+1]) / 4 * area
			d.pdf[i][j] = mass
			norm += mass
		}
	}
	if norm == 0 || math.IsNaN(float64(norm)) || math.IsInf(float64(norm), 0) {
		return nil, fmt.Errorf("total mass %v: %w", norm, ErrDegenerateDistribution)
	}
	for _, row := range d.prob {
		for j := range row {
			row[j] /= norm
		}
	}
	for _, row := range d.pdf {
		for j := range row {
			row[j] /= norm
		}
	}

	// Accumulate cell masses along x within each y-column. The
	// running totals are the unnormalized per-column CDFs; the
	// final total of each column is the column's marginal mass.
	d.cdf = make([][]F, ny-1)
	d.pdfy = make([]F, ny-1)
	for j := 0; j < ny-1; j++ {
		col := make([]F, nx-1)
		var sum F
		for i := 0; i < nx-1; i++ {
			sum += d.pdf[i][j]
			col[i] = sum
		}
		d.cdf[j] = col
		d.pdfy[j] = sum
	}

	// Marginal CDF over y, normalized to end at 1.
	d.cdfy = make([]F, ny-1)
	var sum F
	for j, mass := range d.pdfy {
		sum += mass
		d.cdfy[j] = sum
	}
	last := d.cdfy[ny-2]
	for j := range d.cdfy {
		d.cdfy[j] /= last
	}

	// Normalize each column's CDF by that column's own marginal
	// mass. This must divide by pdfy, not cdfy: cdfy has already
	// been rescaled above and would double-normalize.
	for j, col := range d.cdf {
		for i := range col {
			col[i] /= d.pdfy[j]
		}
	}

	d.normalized = true
	return d, nil
}

func checkAxis[F Float](name string, axis []F) error {
	for i := 1; i < len(axis); i++ {
		if !(axis[i] > axis[i-1]) {
			return fmt.Errorf("%s axis is not strictly increasing at index %d: %w", name, i, ErrDegenerateDistribution)
		}
	}
	return nil
}

// Dims returns the number of grid nodes along each axis.
func (d *Distribution[F]) Dims() (nx, ny int) {
	return d.nx, d.ny
}

// Bounds returns the rectangular domain of the distribution. Sampled
// points always lie within it.
func (d *Distribution[F]) Bounds() (xmin, xmax, ymin, ymax F) {
	return d.xs[0], d.xs[d.nx-1], d.ys[0], d.ys[d.ny-1]
}

// CellMass returns the probability mass of cell (i, j), the rectangle
// between nodes i and i+1 along x and j and j+1 along y. The masses
// over all cells sum to 1.
func (d *Distribution[F]) CellMass(i, j int) F {
	return d.pdf[i][j]
}

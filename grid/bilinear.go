// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned by Bilinear.At for queries outside the
// grid domain when the surface does not allow out-of-bounds queries.
var ErrOutOfBounds = errors.New("grid: query point outside grid domain")

// A Bilinear is a piecewise-bilinear surface tabulated on a
// rectilinear grid.
//
// Xs and Ys give the node coordinates along each axis and must be
// strictly increasing with at least two nodes each. Z[i][j] is the
// surface value at (Xs[i], Ys[j]).
//
// The zero value of the policy fields reports ErrOutOfBounds for
// queries outside the grid domain. Setting AllowOutOfBounds makes At
// return Fill for such queries instead.
type Bilinear[F Float] struct {
	Xs, Ys []F
	Z      [][]F

	// AllowOutOfBounds, if set, substitutes Fill for queries
	// outside [Xs[0], Xs[len-1]] × [Ys[0], Ys[len-1]] instead of
	// returning ErrOutOfBounds.
	AllowOutOfBounds bool

	// Fill is the value returned for out-of-bounds queries when
	// AllowOutOfBounds is set.
	Fill F
}

// At evaluates the surface at (x, y).
//
// Queries on the domain boundary are in bounds; the top and right
// edges evaluate in the last cell of their row or column.
func (s *Bilinear[F]) At(x, y F) (F, error) {
	nx, ny := len(s.Xs), len(s.Ys)
	if nx < 2 || ny < 2 {
		return 0, fmt.Errorf("grid: %d×%d surface has no cells", nx, ny)
	}
	if len(s.Z) != nx {
		return 0, fmt.Errorf("grid: surface has %d rows for %d x nodes", len(s.Z), nx)
	}
	if x < s.Xs[0] || x > s.Xs[nx-1] || y < s.Ys[0] || y > s.Ys[ny-1] {
		if s.AllowOutOfBounds {
			return s.Fill, nil
		}
		return 0, fmt.Errorf("(%v, %v) not in [%v, %v] × [%v, %v]: %w",
			x, y, s.Xs[0], s.Xs[nx-1], s.Ys[0], s.Ys[ny-1], ErrOutOfBounds)
	}

	i := Locate(s.Xs, x)
	if i == nx-1 {
		i-- // right edge, clamp to the last cell
	}
	j := Locate(s.Ys, y)
	if j == ny-1 {
		j--
	}
	if len(s.Z[i]) != ny || len(s.Z[i+1]) != ny {
		return 0, fmt.Errorf("grid: surface row has %d entries for %d y nodes", len(s.Z[i]), ny)
	}

	u := (x - s.Xs[i]) / (s.Xs[i+1] - s.Xs[i])
	v := (y - s.Ys[j]) / (s.Ys[j+1] - s.Ys[j])
	z00, z10 := s.Z[i][j], s.Z[i+1][j]
	z01, z11 := s.Z[i][j+1], s.Z[i+1][j+1]
	return z00*(1-u)*(1-v) + z10*u*(1-v) + z01*(1-u)*v + z11*u*v, nil
}

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist2d

import (
	"errors"

	"github.com/aclements/go-gridstats/grid"
)

var (
	// ErrDimensionMismatch is returned by New when the density
	// grid's shape does not match the axis lengths.
	ErrDimensionMismatch = errors.New("dist2d: density grid shape does not match axes")

	// ErrDegenerateDistribution is returned by New when no valid
	// distribution exists: an axis with fewer than two nodes, a
	// non-increasing axis, a negative or non-finite density, or
	// zero total mass.
	ErrDegenerateDistribution = errors.New("dist2d: degenerate distribution")

	// ErrNotNormalized is returned when sampling or evaluating a
	// Distribution that was not produced by New. It indicates a
	// caller bug, not a recoverable condition.
	ErrNotNormalized = errors.New("dist2d: distribution is not normalized")

	// ErrNumericInstability is returned by the sampler when root
	// extraction encounters a negative discriminant. This cannot
	// happen for a nonnegative density grid; it indicates a
	// floating-point edge case that would otherwise surface as NaN
	// coordinates.
	ErrNumericInstability = errors.New("dist2d: numeric instability inverting cell distribution")

	// ErrOutOfBounds is returned by Density for query points
	// outside the grid domain.
	ErrOutOfBounds = grid.ErrOutOfBounds
)

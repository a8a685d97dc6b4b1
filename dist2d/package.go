// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist2d builds continuous two-dimensional probability
// distributions from tabulated density grids.
//
// A Distribution is constructed by New from raw axis coordinates and a
// grid of (possibly unnormalized) nonnegative density samples at the
// grid nodes. Construction normalizes the samples and precomputes the
// per-cell probability masses and cumulative distributions needed for
// exact inverse-transform sampling.
//
// Once built, a Distribution is immutable. Sample draws continuous
// (x, y) points whose density follows the piecewise-bilinear surface
// through the node samples; Density evaluates that surface at a query
// point.
package dist2d // import "github.com/aclements/go-gridstats/dist2d"

import "github.com/aclements/go-gridstats/grid"

// Float is the set of floating-point element types a Distribution can
// be built over.
type Float = grid.Float

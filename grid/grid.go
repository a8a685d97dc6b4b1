// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// grid provides search and interpolation primitives over
// rectilinear grids.
package grid // import "github.com/aclements/go-gridstats/grid"

// Float is the set of floating-point element types the grid
// primitives operate over.
type Float interface {
	~float32 | ~float64
}

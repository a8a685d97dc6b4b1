// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist2d

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// uniform3x3 is a 3×3 unit-spaced grid with constant density. Its
// four cells each carry mass 0.25.
func uniform3x3(t *testing.T) *Distribution[float64] {
	t.Helper()
	d, err := New(
		[]float64{0, 1, 2},
		[]float64{0, 1, 2},
		[][]float64{
			{1, 1, 1},
			{1, 1, 1},
			{1, 1, 1},
		})
	if err != nil {
		t.Fatal(err)
	}
	return d
}

// ramp is a 4×3 grid with uneven spacing and a density that grows
// along both axes.
func ramp(t *testing.T) *Distribution[float64] {
	t.Helper()
	d, err := New(
		[]float64{0, 1, 2.5, 4},
		[]float64{-1, 0, 3},
		[][]float64{
			{0.5, 1, 2},
			{1, 2, 4},
			{2, 3, 6},
			{4, 5, 8},
		})
	if err != nil {
		t.Fatal(err)
	}
	return d
}

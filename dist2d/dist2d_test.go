// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist2d

import (
	"errors"
	"testing"
)

func TestNewUniform(t *testing.T) {
	d := uniform3x3(t)

	if nx, ny := d.Dims(); nx != 3 || ny != 3 {
		t.Fatalf("Dims = (%d, %d), want (3, 3)", nx, ny)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if !aeq(0.25, d.CellMass(i, j)) {
				t.Errorf("CellMass(%d, %d) = %v, want 0.25", i, j, d.CellMass(i, j))
			}
		}
	}
	if !aeq(0.5, d.cdfy[0]) || !aeq(1, d.cdfy[1]) {
		t.Errorf("cdfy = %v, want [0.5 1]", d.cdfy)
	}
	for j := 0; j < 2; j++ {
		if !aeq(0.5, d.cdf[j][0]) || !aeq(1, d.cdf[j][1]) {
			t.Errorf("cdf column %d = %v, want [0.5 1]", j, d.cdf[j])
		}
	}
}

func TestNewProperties(t *testing.T) {
	d := ramp(t)

	var total float64
	for i := 0; i < d.nx-1; i++ {
		for j := 0; j < d.ny-1; j++ {
			if d.CellMass(i, j) < 0 {
				t.Errorf("CellMass(%d, %d) = %v < 0", i, j, d.CellMass(i, j))
			}
			total += d.CellMass(i, j)
		}
	}
	if !aeq(1, total) {
		t.Errorf("sum of cell masses = %v, want 1", total)
	}

	for j, col := range d.cdf {
		prev := 0.0
		for i, c := range col {
			if c < prev {
				t.Errorf("cdf column %d decreases at %d: %v", j, i, col)
			}
			prev = c
		}
		if !aeq(1, col[len(col)-1]) {
			t.Errorf("cdf column %d ends at %v, want 1", j, col[len(col)-1])
		}
	}
	prev := 0.0
	for j, c := range d.cdfy {
		if c < prev {
			t.Errorf("cdfy decreases at %d: %v", j, d.cdfy)
		}
		prev = c
	}
	if !aeq(1, d.cdfy[len(d.cdfy)-1]) {
		t.Errorf("cdfy ends at %v, want 1", d.cdfy[len(d.cdfy)-1])
	}
}

func TestNewImmutable(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 1, 2}
	prob := [][]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}
	d, err := New(xs, ys, prob)
	if err != nil {
		t.Fatal(err)
	}
	// Mutating the inputs must not affect the built object.
	xs[2] = 100
	prob[0][0] = 1e9
	if _, xmax, _, _ := d.Bounds(); !aeq(2, xmax) {
		t.Errorf("xmax = %v after caller mutation, want 2", xmax)
	}
	if !aeq(0.25, d.CellMass(0, 0)) {
		t.Errorf("CellMass(0, 0) = %v after caller mutation, want 0.25", d.CellMass(0, 0))
	}
}

func TestNewErrors(t *testing.T) {
	x3 := []float64{0, 1, 2}
	ones := func(nx, ny int) [][]float64 {
		g := make([][]float64, nx)
		for i := range g {
			g[i] = make([]float64, ny)
			for j := range g[i] {
				g[i][j] = 1
			}
		}
		return g
	}

	for _, test := range []struct {
		name   string
		xs, ys []float64
		prob   [][]float64
		want   error
	}{
		{"row count", x3, x3, ones(2, 3), ErrDimensionMismatch},
		{"column count", x3, x3, ones(3, 2), ErrDimensionMismatch},
		{"short x axis", []float64{0}, x3, ones(1, 3), ErrDegenerateDistribution},
		{"short y axis", x3, []float64{0}, ones(3, 1), ErrDegenerateDistribution},
		{"all-zero density", x3, x3, [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, ErrDegenerateDistribution},
		{"negative density", x3, x3, [][]float64{{1, 1, 1}, {1, -1, 1}, {1, 1, 1}}, ErrDegenerateDistribution},
		{"non-increasing axis", []float64{0, 2, 1}, x3, ones(3, 3), ErrDegenerateDistribution},
		{"repeated axis value", x3, []float64{0, 0, 1}, ones(3, 3), ErrDegenerateDistribution},
	} {
		d, err := New(test.xs, test.ys, test.prob)
		if !errors.Is(err, test.want) {
			t.Errorf("%s: error = %v, want %v", test.name, err, test.want)
		}
		if d != nil {
			t.Errorf("%s: got a partial Distribution on failure", test.name)
		}
	}
}

func TestDensityAtNodes(t *testing.T) {
	d := ramp(t)
	for i, x := range d.xs {
		for j, y := range d.ys {
			got, err := d.Density(x, y)
			if err != nil {
				t.Fatalf("Density(%v, %v): %v", x, y, err)
			}
			if !aeq(d.prob[i][j], got) {
				t.Errorf("Density(%v, %v) = %v, want node value %v", x, y, got, d.prob[i][j])
			}
		}
	}
}

func TestDensityOutOfBounds(t *testing.T) {
	d := uniform3x3(t)

	if _, err := d.Density(-0.5, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Density(-0.5, 1) error = %v, want ErrOutOfBounds", err)
	}
	if _, err := d.Density(1, 3); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Density(1, 3) error = %v, want ErrOutOfBounds", err)
	}

	got, err := d.DensityFill(-0.5, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("DensityFill(-0.5, 1, 0) = %v, want 0", got)
	}

	// In-bounds queries are unaffected by the fill policy.
	got, err = d.DensityFill(1, 1, -1)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(0.25, got) {
		t.Errorf("DensityFill(1, 1, -1) = %v, want 0.25", got)
	}
}

func TestNotNormalized(t *testing.T) {
	var d Distribution[float64]
	if _, err := d.Density(0, 0); !errors.Is(err, ErrNotNormalized) {
		t.Errorf("Density on zero Distribution: error = %v, want ErrNotNormalized", err)
	}
	if _, _, err := d.SampleUniforms([4]float64{0.5, 0.5, 0.5, 0.5}); !errors.Is(err, ErrNotNormalized) {
		t.Errorf("SampleUniforms on zero Distribution: error = %v, want ErrNotNormalized", err)
	}
}

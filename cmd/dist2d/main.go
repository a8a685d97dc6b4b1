// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist2d reads a tabulated 2-D density grid from stdin and samples
// points from the distribution it describes.
//
// The input is whitespace-separated: the first line holds the x axis
// coordinates, the second line the y axis coordinates, and each
// following line one row of node densities (one row per x node, one
// column per y node). Densities need not be normalized.
//
// Sampled points are written to stdout as "x y" lines; diagnostics go
// to stderr.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-gridstats/dist2d"
	"gonum.org/v1/gonum/floats"
)

var (
	nSamples = flag.Int("n", 1000, "number of points to sample")
	seed     = flag.Uint64("seed", 1, "random seed")
)

func main() {
	flag.Parse()

	xs, ys, prob, err := readGrid(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	d, err := dist2d.New(xs, ys, prob)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	run(d)
}

func run(d *dist2d.Distribution[float64]) {
	nx, ny := d.Dims()
	xmin, xmax, ymin, ymax := d.Bounds()
	fmt.Fprintf(os.Stderr, "%d×%d nodes  domain [%g, %g] × [%g, %g]\n", nx, ny, xmin, xmax, ymin, ymax)

	rng := rand.New(rand.NewPCG(*seed, *seed))
	sx := make([]float64, 0, *nSamples)
	sy := make([]float64, 0, *nSamples)

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for i := 0; i < *nSamples; i++ {
		x, y, err := d.Sample(rng)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Fprintf(w, "%g %g\n", x, y)
		sx = append(sx, x)
		sy = append(sy, y)
	}

	if len(sx) > 0 {
		fmt.Fprintf(os.Stderr, "sample mean (%.6g, %.6g)\n",
			floats.Sum(sx)/float64(len(sx)), floats.Sum(sy)/float64(len(sy)))
	}
}

func readGrid(r io.Reader) (xs, ys []float64, prob [][]float64, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1<<16), 1<<24)
	line := 0
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for i, f := range fields {
			row[i], err = strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("line %d: %v", line+1, err)
			}
		}
		switch line {
		case 0:
			xs = row
		case 1:
			ys = row
		default:
			prob = append(prob, row)
		}
		line++
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, nil, err
	}
	if line < 2 {
		return nil, nil, nil, fmt.Errorf("input ended before both axes were read")
	}
	return xs, ys, prob, nil
}

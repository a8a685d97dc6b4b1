// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist2d

// A Source yields independent uniform draws in [0, 1). *rand.Rand
// from both math/rand and math/rand/v2 satisfy Source.
//
// A Source is the only mutable state sampling touches. Concurrent
// samplers must use independent Sources or synchronize a shared one.
type Source interface {
	Float64() float64
}

// Copyright 2026 The gridspline Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package grid provides dense row-major float64 arrays of arbitrary rank,
// the sample and coefficient containers of the gridspline interpolation
// engine.
//
// Example:
//
//	xs := grid.Linspace(0, 1, 6)
//	a, _ := grid.New(grid.Shape{6, 6})
//	a.Fill(func(idx []int) float64 { return xs[idx[0]] * xs[idx[1]] })
package grid

import "github.com/grid-ml/gridspline/internal/grid"

// Shape represents the dimensions of a grid array.
type Shape = grid.Shape

// Array is a dense row-major float64 array of arbitrary rank.
type Array = grid.Array

// New creates a zero-filled array of the given shape.
func New(shape Shape) (*Array, error) {
	return grid.New(shape)
}

// FromSlice wraps an existing slice as an array of the given shape. The
// array aliases data; it does not copy.
func FromSlice(shape Shape, data []float64) (*Array, error) {
	return grid.FromSlice(shape, data)
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	return grid.Linspace(lo, hi, n)
}

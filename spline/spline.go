// Copyright 2026 The gridspline Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package spline

import (
	"github.com/grid-ml/gridspline/grid"
	"github.com/grid-ml/gridspline/internal/spline"
)

// Axis describes one dimension of the interpolation grid: strictly
// increasing abscissae, the spline order (degree + 1), and an optional
// caller-supplied knot vector. A nil Knots field selects the default
// not-a-knot sequence.
type Axis = spline.Axis

// Spline is a fitted tensor-product B-spline representation.
type Spline = spline.Spline

// EvalState carries the knot-interval hints and scratch buffers of one
// evaluation stream. States are cheap; use one per goroutine.
type EvalState = spline.EvalState

// ValidationError reports the first failing fit-input check with its
// stable numeric code.
type ValidationError = spline.ValidationError

// Sentinel errors reported by fit and by EvalState.LastError.
var (
	ErrInvalidArgument = spline.ErrInvalidArgument
	ErrNonMonotone     = spline.ErrNonMonotone
	ErrSingular        = spline.ErrSingular
	ErrOutOfDomain     = spline.ErrOutOfDomain
	ErrLeftLimit       = spline.ErrLeftLimit
)

// Fit interpolates samples on the grid described by axes (between 2 and 6
// of them) and returns the spline. The samples are left untouched.
func Fit(samples *grid.Array, axes ...Axis) (*Spline, error) {
	return spline.Fit(samples, axes...)
}

// FitInto is Fit writing the coefficients into dst. dst may share backing
// storage with samples; the sample values are then destroyed by the fit.
func FitInto(dst, samples *grid.Array, axes ...Axis) (*Spline, error) {
	return spline.FitInto(dst, samples, axes...)
}

// UniformAxis returns an axis of n evenly spaced abscissae on [lo, hi]
// with spline order k and default knots.
func UniformAxis(lo, hi float64, n, k int) Axis {
	return Axis{X: grid.Linspace(lo, hi, n), Order: k}
}

// Fixed-rank wrappers over Fit, one per supported dimension.

// Fit2D fits a bivariate tensor-product spline.
func Fit2D(samples *grid.Array, a0, a1 Axis) (*Spline, error) {
	return Fit(samples, a0, a1)
}

// Fit3D fits a trivariate tensor-product spline.
func Fit3D(samples *grid.Array, a0, a1, a2 Axis) (*Spline, error) {
	return Fit(samples, a0, a1, a2)
}

// Fit4D fits a 4-dimensional tensor-product spline.
func Fit4D(samples *grid.Array, a0, a1, a2, a3 Axis) (*Spline, error) {
	return Fit(samples, a0, a1, a2, a3)
}

// Fit5D fits a 5-dimensional tensor-product spline.
func Fit5D(samples *grid.Array, a0, a1, a2, a3, a4 Axis) (*Spline, error) {
	return Fit(samples, a0, a1, a2, a3, a4)
}

// Fit6D fits a 6-dimensional tensor-product spline.
func Fit6D(samples *grid.Array, a0, a1, a2, a3, a4, a5 Axis) (*Spline, error) {
	return Fit(samples, a0, a1, a2, a3, a4, a5)
}

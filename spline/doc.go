// Copyright 2026 The gridspline Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package spline provides tensor-product B-spline interpolation of scalar
// functions sampled on regular rectilinear grids of 2 to 6 dimensions.
//
// A fit produces the coefficients of a spline that passes exactly through
// every sample; evaluation returns the spline value, or any mixed partial
// derivative, at a query point. Queries outside the fitted domain return
// zero.
//
// Example:
//
//	xs := grid.Linspace(0, 1, 6)
//	samples, _ := grid.New(grid.Shape{6, 6})
//	samples.Fill(func(idx []int) float64 {
//		return math.Sin(xs[idx[0]]) * math.Exp(xs[idx[1]])
//	})
//	sp, err := spline.Fit(samples,
//		spline.Axis{X: xs, Order: 4},
//		spline.Axis{X: xs, Order: 4},
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	v := sp.At(0.3, 0.7)
//
// A Spline is immutable after Fit and may be shared across goroutines;
// concurrent evaluators must each hold their own EvalState:
//
//	st := sp.NewState()
//	v := sp.Eval(st, 0.3, 0.7)
//	dx := sp.PartialAt(st, []int{1, 0}, 0.3, 0.7)
package spline

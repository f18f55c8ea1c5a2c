package spline

import (
	"fmt"

	"github.com/grid-ml/gridspline/internal/grid"
)

// tensorFit runs the d-dimensional fit as d sweeps of the 1D multi-RHS
// fitter, one per axis. Each sweep collapses the memory-contiguous axis:
// the array is read as nf lines of n samples, each line is solved against
// the shared collocation factorization, and the coefficients are written
// transposed, which cyclically rotates the axis order. After d sweeps the
// layout is back in the original order and every axis has been fitted.
//
// The sweeps therefore run last axis first, the row-major mirror of the
// classic column-major first-axis order; the axis order of the sweeps does
// not affect the result.
//
// Two scratch buffers of the full array size alternate between sweeps and
// the final sweep writes dst directly, so dst may alias src: the first
// sweep only reads src, and by the time dst is written the samples are no
// longer needed.
func tensorFit(dst, src *grid.Array, axes []Axis, reps []axisRep) error {
	d := len(reps)
	total := src.Shape().NumElements()

	nmax, kmax := 0, 0
	for _, r := range reps {
		if r.n > nmax {
			nmax = r.n
		}
		if r.k > kmax {
			kmax = r.k
		}
	}
	ws := newFitWorkspace(nmax, kmax)
	scratch := [2][]float64{
		make([]float64, total),
		make([]float64, total),
	}

	cur := src.Data()
	shape := src.Shape()
	for s := 0; s < d; s++ {
		a := d - 1 - s
		out := scratch[s%2]
		if s == d-1 {
			out = dst.Data()
		}
		n := shape[d-1]
		if err := fitLines(axes[a].X, reps[a].knots, reps[a].k, total/n, cur, out, ws); err != nil {
			return fmt.Errorf("axis %d: %w", a, err)
		}
		cur = out
		shape = shape.Rotate()
	}
	return nil
}

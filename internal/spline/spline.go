package spline

import (
	"fmt"

	"github.com/grid-ml/gridspline/internal/grid"
)

// Axis describes one dimension of the interpolation grid.
type Axis struct {
	// X holds the strictly increasing sample abscissae, at least 3.
	X []float64
	// Order is the spline order k (polynomial degree + 1), 2 <= k <= len(X)-1.
	Order int
	// Knots optionally supplies the len(X)+Order nondecreasing knot vector.
	// When nil, the default not-a-knot sequence is generated from X.
	Knots []float64
}

type axisRep struct {
	n, k  int
	knots []float64
}

// Spline is a fitted tensor-product B-spline: per-axis knot vectors and
// orders plus the coefficient array. It is immutable after Fit; Eval,
// PartialAt and Gradient never modify it, so a Spline may be shared across
// goroutines as long as each holds its own EvalState. At and Partial
// create the internal default state on first use.
type Spline struct {
	axes []axisRep
	coef *grid.Array
	def  *EvalState
}

const (
	minDims = 2
	maxDims = 6
)

// Fit interpolates the samples on the grid described by axes and returns
// the spline. The coefficient array is freshly allocated; samples are left
// untouched.
func Fit(samples *grid.Array, axes ...Axis) (*Spline, error) {
	out, err := grid.New(samples.Shape())
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}
	sp, err := fitInto(out, samples, axes)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}
	return sp, nil
}

// FitInto is Fit writing the coefficients into dst, which must have the
// sample shape. dst may share backing storage with samples, in which case
// the sample values are destroyed by the axis sweeps.
func FitInto(dst, samples *grid.Array, axes ...Axis) (*Spline, error) {
	sp, err := fitInto(dst, samples, axes)
	if err != nil {
		return nil, fmt.Errorf("FitInto: %w", err)
	}
	return sp, nil
}

func fitInto(dst, samples *grid.Array, axes []Axis) (*Spline, error) {
	d := len(axes)
	if d < minDims || d > maxDims {
		return nil, fmt.Errorf("need between %d and %d axes, got %d: %w", minDims, maxDims, d, ErrInvalidArgument)
	}
	shape := samples.Shape()
	if len(shape) != d {
		return nil, fmt.Errorf("sample rank %d does not match %d axes: %w", len(shape), d, ErrInvalidArgument)
	}
	if !dst.Shape().Equal(shape) {
		return nil, fmt.Errorf("output shape %v does not match sample shape %v: %w", dst.Shape(), shape, ErrInvalidArgument)
	}
	for a, ax := range axes {
		if len(ax.X) != shape[a] {
			return nil, fmt.Errorf("axis %d has %d abscissae for grid extent %d: %w",
				a, len(ax.X), shape[a], ErrInvalidArgument)
		}
		if err := validateAxis(a, ax.X, ax.Order, ax.Knots); err != nil {
			return nil, err
		}
	}

	reps := make([]axisRep, d)
	for a, ax := range axes {
		n, k := len(ax.X), ax.Order
		knots := make([]float64, n+k)
		if ax.Knots != nil {
			copy(knots, ax.Knots)
		} else {
			defaultKnots(ax.X, k, knots)
		}
		reps[a] = axisRep{n: n, k: k, knots: knots}
	}

	if err := tensorFit(dst, samples, axes, reps); err != nil {
		return nil, err
	}
	return &Spline{axes: reps, coef: dst}, nil
}

// Dims returns the number of axes.
func (sp *Spline) Dims() int { return len(sp.axes) }

// Len returns the number of sample points along the given axis.
func (sp *Spline) Len(axis int) int { return sp.axes[axis].n }

// Order returns the spline order along the given axis.
func (sp *Spline) Order(axis int) int { return sp.axes[axis].k }

// Knots returns a copy of the knot vector along the given axis.
func (sp *Spline) Knots(axis int) []float64 {
	t := make([]float64, len(sp.axes[axis].knots))
	copy(t, sp.axes[axis].knots)
	return t
}

// Coefficients returns the tensor-product coefficient array. The caller
// must not modify it; mutation invalidates evaluation.
func (sp *Spline) Coefficients() *grid.Array { return sp.coef }

// EvalState carries the per-axis knot-interval hints and scratch buffers
// of one evaluation stream. Hints persist across calls so that query
// sequences with temporal locality locate their intervals in amortized
// constant time. A state must not be shared between goroutines; distinct
// states over one Spline are independent.
type EvalState struct {
	span  []int
	inner []int
	idx   []int
	jdx   []int
	ws    []float64
	stair []float64
	deriv []int
	err   error
}

// NewState returns a fresh evaluation state sized for this spline.
func (sp *Spline) NewState() *EvalState {
	d := len(sp.axes)
	kmax := 0
	window := 1
	for a, ax := range sp.axes {
		if ax.k > kmax {
			kmax = ax.k
		}
		if a < d-1 {
			window *= ax.k
		}
	}
	return &EvalState{
		span:  make([]int, d),
		inner: make([]int, d),
		idx:   make([]int, d),
		jdx:   make([]int, d),
		ws:    make([]float64, 3*kmax),
		stair: make([]float64, window),
		deriv: make([]int, d),
	}
}

// LastError reports the 1D-level condition swallowed behind the most
// recent zero return of an evaluation through this state: out-of-domain,
// a left limit requested at the left endpoint, or an invalid derivative
// order. It returns nil when the last evaluation was in-domain.
func (st *EvalState) LastError() error { return st.err }

func (sp *Spline) state() *EvalState {
	if sp.def == nil {
		sp.def = sp.NewState()
	}
	return sp.def
}

// Eval returns the spline value at the query point, or 0 when any
// coordinate is outside its knot span.
func (sp *Spline) Eval(st *EvalState, x ...float64) float64 {
	for i := range st.deriv {
		st.deriv[i] = 0
	}
	return evalTensor(sp, st, x, st.deriv)
}

// PartialAt returns the mixed partial derivative of the given per-axis
// orders at the query point, or 0 when any coordinate is outside its knot
// span. Each order must be below the axis order.
func (sp *Spline) PartialAt(st *EvalState, deriv []int, x ...float64) float64 {
	return evalTensor(sp, st, x, deriv)
}

// At is Eval through the spline's internal default state. It is the
// convenient form for single-goroutine use; concurrent evaluators must
// use Eval with distinct states.
func (sp *Spline) At(x ...float64) float64 {
	return sp.Eval(sp.state(), x...)
}

// Partial is PartialAt through the spline's internal default state.
func (sp *Spline) Partial(deriv []int, x ...float64) float64 {
	return evalTensor(sp, sp.state(), x, deriv)
}

// Gradient returns the value and all first partial derivatives at the
// query point in one pass. The located-interval hints in st carry between
// the component evaluations, so the d+1 collapses share their searches.
func (sp *Spline) Gradient(st *EvalState, x ...float64) (float64, []float64) {
	for i := range st.deriv {
		st.deriv[i] = 0
	}
	val := evalTensor(sp, st, x, st.deriv)
	grad := make([]float64, len(sp.axes))
	for a := range grad {
		st.deriv[a] = 1
		grad[a] = evalTensor(sp, st, x, st.deriv)
		st.deriv[a] = 0
	}
	return val, grad
}
